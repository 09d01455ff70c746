package di

import (
	"time"

	exportadapters "thumblytics/internal/feature/export/adapters"
	"thumblytics/internal/feature/export/usecase"
	infrahttp "thumblytics/internal/platform/http"
)

const thumbnailFetchTimeout = 15 * time.Second

// NewThumbnailFetcher はYouTubeサムネイルの取得クライアントを生成します。
func NewThumbnailFetcher() usecase.ImageFetcher {
	return exportadapters.NewThumbnailFetcher(infrahttp.NewHTTPClient(thumbnailFetchTimeout))
}

package adapters

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"thumblytics/internal/feature/export/usecase"
)

// maxThumbnailBytes はダウンロードする画像の最大サイズ（10MB）です。
const maxThumbnailBytes = 10 * 1024 * 1024

// thumbnailFetcher はHTTPでサムネイル画像を取得します。再試行はしません。
type thumbnailFetcher struct {
	client *http.Client
}

var _ usecase.ImageFetcher = (*thumbnailFetcher)(nil)

// NewThumbnailFetcher は指定されたHTTPクライアントでthumbnailFetcherを生成します。
func NewThumbnailFetcher(client *http.Client) *thumbnailFetcher {
	return &thumbnailFetcher{client: client}
}

func (f *thumbnailFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}
	req.Header.Set("Accept", "image/jpeg, image/png, image/webp, */*")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxThumbnailBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	if len(data) > maxThumbnailBytes {
		return nil, fmt.Errorf("image exceeds %d bytes", maxThumbnailBytes)
	}
	return data, nil
}

// Package di はアプリケーションのコンポーネントを組み立てるファクトリーを提供します。
package di

import (
	"thumblytics/internal/platform/externalapi/thumblytics"
	infrahttp "thumblytics/internal/platform/http"
)

// NewAnalyzer は環境変数の設定とHTTPクライアントを持つ解析APIクライアントを生成します。
func NewAnalyzer() *thumblytics.Client {
	cfg := thumblytics.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return thumblytics.NewClient(cfg, httpClient)
}

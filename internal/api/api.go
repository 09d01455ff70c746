// Package api はHTTP層で共有するリクエスト・レスポンス型とヘルパーを定義します。
package api

import (
	"errors"
	"net/http"

	"thumblytics/internal/feature/analysis/domain"
)

// ErrorResponse はエラー時のレスポンスボディです。
type ErrorResponse struct {
	Error string `json:"error"`
}

// ErrorStatus は解析エラーをHTTPステータスコードに変換します。
//   - 入力不正: 400
//   - 解析APIの通信・サーバー・パースエラー: 502
//   - それ以外: 500
func ErrorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case domain.IsUpstream(err):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

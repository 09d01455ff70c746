// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ServiceName はヘルスチェックのレスポンスに含めるサービス名です。
const ServiceName = "thumblytics"

// Health は /healthz の生存確認を処理します。
// 依存先（解析API、Redis、DB）の状態は見ません。プロセスが応答できれば200です。
func Health(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case http.MethodHead:
		c.Status(http.StatusOK)
	case http.MethodOptions:
		c.Header("Allow", "GET, HEAD, OPTIONS")
		c.Status(http.StatusNoContent)
	default:
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": ServiceName})
	}
}

// Package router はHTTPルーティングを組み立てます。
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	analysishandler "thumblytics/internal/feature/analysis/transport/handler"
	comparisonhandler "thumblytics/internal/feature/comparison/transport/handler"
	exporthandler "thumblytics/internal/feature/export/transport/handler"
	historyhandler "thumblytics/internal/feature/history/transport/handler"
	"thumblytics/internal/platform/http/handler"
	"thumblytics/internal/shared/ratelimiter"
)

// Handlers はルーターに登録するフィーチャーごとのハンドラーです。
type Handlers struct {
	Analysis   *analysishandler.AnalysisHandler
	Comparison *comparisonhandler.ComparisonHandler
	History    *historyhandler.HistoryHandler
	Export     *exporthandler.ExportHandler
}

// NewRouter はgin.Engineを生成します。
// 外部解析APIを呼び出すエンドポイントにのみレート制限をかけます。
// corsOriginsが空の場合はすべてのオリジンを許可します。
func NewRouter(h Handlers, limiter *ratelimiter.RateLimiter, corsOrigins []string) *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(corsConfig(corsOrigins)))

	// 導通確認用
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)
	r.OPTIONS("/healthz", handler.Health)

	v1 := r.Group("/v1")
	{
		limited := v1.Group("")
		limited.Use(limiter.Middleware())
		limited.POST("/analyze", h.Analysis.Analyze)
		limited.POST("/compare/analyze", h.Comparison.CompareAnalyze)
		// YouTube URLの場合はサムネイルを取得しに行く
		limited.POST("/export/png", h.Export.PNG)

		v1.POST("/compare", h.Comparison.Compare)
		v1.POST("/export/json", h.Export.JSON)

		v1.GET("/history", h.History.List)
		v1.DELETE("/history", h.History.Clear)
		v1.DELETE("/history/:id", h.History.Delete)
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Disposition", "Retry-After"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"thumblytics/internal/app/di"
	"thumblytics/internal/app/router"
	analysishandler "thumblytics/internal/feature/analysis/transport/handler"
	analysisusecase "thumblytics/internal/feature/analysis/usecase"
	comparisonhandler "thumblytics/internal/feature/comparison/transport/handler"
	comparisonusecase "thumblytics/internal/feature/comparison/usecase"
	exporthandler "thumblytics/internal/feature/export/transport/handler"
	exportusecase "thumblytics/internal/feature/export/usecase"
	historyadapters "thumblytics/internal/feature/history/adapters"
	historyhandler "thumblytics/internal/feature/history/transport/handler"
	historyusecase "thumblytics/internal/feature/history/usecase"
	"thumblytics/internal/platform/config"
	infradb "thumblytics/internal/platform/db"
	"thumblytics/internal/platform/logger"
	infraredis "thumblytics/internal/platform/redis"
	"thumblytics/internal/shared/ratelimiter"
)

const shutdownTimeout = 10 * time.Second

func main() {
	config.LoadDotEnv()

	log, closeLog := logger.Setup(logger.LoadConfig())
	defer func() { _ = closeLog() }()

	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// db
	db, err := infradb.OpenDB(infradb.LoadConfigFromEnv(), &historyadapters.HistoryModel{})
	if err != nil {
		log.Error("failed to open database", "error", err)
		os.Exit(1)
	}

	// Redis（設定されていて到達できる場合のみ履歴に使う）
	var rdb *redisv9.Client
	if rcfg := infraredis.LoadConfig(); rcfg.Enabled() {
		if tmp, err := infraredis.NewRedisClient(ctx, rcfg); err != nil {
			log.Warn("redis unavailable; storing history in database", "addr", rcfg.Addr(), "error", err)
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					log.Error("failed to close redis client", "error", err)
				}
			}()
		}
	}

	// Repository
	historyRepo := di.NewHistoryRepository(rdb, db, cfg.HistoryKey)

	// Usecase
	historyUC := historyusecase.NewHistoryUsecase(historyRepo)
	analysisUC := analysisusecase.NewAnalysisUsecase(di.NewAnalyzer(), historyUC)
	comparisonUC := comparisonusecase.NewComparisonUsecase(analysisUC)
	exportUC := exportusecase.NewExportUsecase(di.NewThumbnailFetcher())

	// ルータ生成
	r := router.NewRouter(router.Handlers{
		Analysis:   analysishandler.NewAnalysisHandler(analysisUC),
		Comparison: comparisonhandler.NewComparisonHandler(comparisonUC),
		History:    historyhandler.NewHistoryHandler(historyUC),
		Export:     exporthandler.NewExportHandler(exportUC),
	}, ratelimiter.NewRateLimiter(cfg.RateLimitPerMinute), cfg.CORSAllowedOrigins)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server started", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped unexpectedly", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
}

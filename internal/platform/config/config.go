// Package config はサーバー全体の設定を環境変数から読み込みます。
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultPort               = "8080"
	DefaultRateLimitPerMinute = 30
	DefaultHistoryKey         = "thumblytics:history"
)

// Config はHTTPサーバーの設定です。
type Config struct {
	Port               string
	RateLimitPerMinute int      // 解析エンドポイントの1分あたりの上限。0以下で無制限
	CORSAllowedOrigins []string // 空の場合はすべて許可
	HistoryKey         string   // 履歴を保存するRedisのキー
}

// LoadDotEnv は.envがあれば読み込みます。既に設定されている環境変数は上書きしません。
func LoadDotEnv(paths ...string) {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	if err := godotenv.Load(paths...); err != nil {
		slog.Info(".env not found; using system environment variables")
	}
}

// Load は環境変数からConfigを生成します。
func Load() Config {
	cfg := Config{
		Port:               getenv("PORT", DefaultPort),
		RateLimitPerMinute: DefaultRateLimitPerMinute,
		HistoryKey:         getenv("HISTORY_REDIS_KEY", DefaultHistoryKey),
	}

	if v := os.Getenv("RATE_LIMIT_PER_MINUTE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.RateLimitPerMinute = n
		} else {
			slog.Warn("invalid RATE_LIMIT_PER_MINUTE; using default", "value", v, "default", DefaultRateLimitPerMinute)
		}
	}

	for _, o := range strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
		}
	}
	return cfg
}

// Addr はgin.Runに渡すアドレスを返します。
func (c Config) Addr() string {
	return ":" + c.Port
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

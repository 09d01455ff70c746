// Package logger はアプリケーション全体で使うslogのロガーを構築します。
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Config はロガーの設定です。
type Config struct {
	Level string // debug, info, warn, error
	File  string // 空の場合は標準出力
}

// LoadConfig は環境変数LOG_LEVEL、LOG_FILEから設定を読み込みます。
func LoadConfig() Config {
	return Config{
		Level: os.Getenv("LOG_LEVEL"),
		File:  os.Getenv("LOG_FILE"),
	}
}

// ParseLevel はレベル名をslog.Levelに変換します。不明な値はInfoです。
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Writer は出力先を返します。Fileが設定されている場合はlumberjackでローテーションします。
func (c Config) Writer() io.Writer {
	if c.File == "" {
		return os.Stdout
	}
	return &lumberjack.Logger{
		Filename:   c.File,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}
}

// New はJSON形式のロガーを生成します。
func New(cfg Config, w io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}))
}

// Setup はロガーを生成してslogのデフォルトに設定します。
// 戻り値の関数でファイル出力をクローズします。
func Setup(cfg Config) (*slog.Logger, func() error) {
	w := cfg.Writer()
	l := New(cfg, w)
	slog.SetDefault(l)

	closeFn := func() error { return nil }
	if lj, ok := w.(*lumberjack.Logger); ok {
		closeFn = lj.Close
	}
	return l, closeFn
}

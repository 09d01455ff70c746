// Package ratelimiter は解析エンドポイントなどの呼び出し頻度を制限します。
package ratelimiter

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"thumblytics/internal/api"
)

// RateLimiter は1分あたりの上限をトークンバケットで制限します。
// バースト幅は1分あたりの上限と同じです。
type RateLimiter struct {
	limiter *rate.Limiter
	limit   int
}

// NewRateLimiter は新しいRateLimiterのインスタンスを生成します。
// perMinuteが0以下の場合は無制限です。
func NewRateLimiter(perMinute int) *RateLimiter {
	if perMinute <= 0 {
		return &RateLimiter{limiter: rate.NewLimiter(rate.Inf, 0)}
	}
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute),
		limit:   perMinute,
	}
}

// Allow は今すぐ1回の呼び出しが許可されるかを返します。
func (rl *RateLimiter) Allow() bool {
	return rl.limiter.Allow()
}

// retryAfter は次のトークンが補充されるまでの秒数です。
func (rl *RateLimiter) retryAfter() int {
	if rl.limit <= 0 {
		return 0
	}
	return max(1, int((time.Minute/time.Duration(rl.limit)).Seconds()))
}

// Middleware は上限を超えたリクエストに429を返すginミドルウェアです。
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow() {
			slog.Warn("rate limit exceeded", "path", c.FullPath(), "remote_addr", c.ClientIP(), "limit_per_minute", rl.limit)
			c.Header("Retry-After", strconv.Itoa(rl.retryAfter()))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, api.ErrorResponse{Error: "rate limit exceeded"})
			return
		}
		c.Next()
	}
}

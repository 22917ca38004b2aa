package middleware

import (
	"errors"
	"lovedj/config"
	"lovedj/internal/core"
	"lovedj/internal/database/redis/repository"
	cErr "lovedj/internal/pkg/error"
	"lovedj/internal/pkg/response"
	"lovedj/internal/telemetry"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RateLimit 以來源 IP 限制約會建立次數
type RateLimit struct {
	logger                *zap.Logger
	trace                 *telemetry.Trace
	metric                *telemetry.Metric
	config                *config.Configuration
	rateLimiterRepository *repository.RateLimiterRepository
}

func NewRateLimit(
	logger *zap.Logger,
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	config *config.Configuration,
	rateLimiterRepository *repository.RateLimiterRepository,
) *RateLimit {
	return &RateLimit{
		logger:                logger,
		trace:                 trace,
		metric:                metric,
		config:                config,
		rateLimiterRepository: rateLimiterRepository,
	}
}

func (middleware *RateLimit) Guard() gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := middleware.config.Date.RateLimit.Limit
		window := middleware.config.Date.RateLimit.Window
		// 未設定額度或 Redis 停用時不限流
		if limit <= 0 || window <= 0 || !middleware.rateLimiterRepository.Enabled() {
			c.Next()
			return
		}

		ctx, span, end := middleware.trace.WithSpan(middleware.trace.GetTraceContext(c), string(core.SpanRateLimitMiddleware))
		remaining, ttlSec, err := middleware.rateLimiterRepository.Consume(ctx, core.RedisKeyDateRateLimit, c.ClientIP(), window, limit)
		blocked := errors.Is(err, repository.ErrRateLimitExceeded)
		if err != nil && !blocked {
			// 風險控制：Redis 錯誤不阻斷主流程
			middleware.logger.Warn("rate limiter unavailable", zap.Error(err))
			end(err)
			c.Next()
			return
		}

		middleware.trace.ApplyTraceAttributes(span, core.TraceRateLimitMeta{
			Key:       c.ClientIP(),
			Limit:     limit,
			WindowSec: window,
			Remaining: remaining,
			TTL:       ttlSec,
			Blocked:   blocked,
			Op:        "guard",
		})

		// 寫入回應標頭，方便呼叫端與排錯
		c.Header("X-RateLimit-Limit", strconv.FormatInt(limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))
		if ttlSec > 0 {
			c.Header("X-RateLimit-Reset", strconv.FormatInt(ttlSec, 10))
		}

		if blocked {
			c.Header("Retry-After", strconv.FormatInt(ttlSec, 10))
			middleware.metric.ObserveRateLimited(c.FullPath())
			end(nil)
			response.AbortWithError(c, cErr.RateLimitExceeded("too many dates from this address, try again later"))
			return
		}
		end(nil)
		c.Next()
	}
}

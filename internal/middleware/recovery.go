package middleware

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"lovedj/config"
	"lovedj/internal/core"
	"lovedj/internal/database/fluentd/model"
	"lovedj/internal/database/fluentd/repository"
	cErr "lovedj/internal/pkg/error"
	res "lovedj/internal/pkg/response"
	"lovedj/internal/telemetry"
	"net/http"
	"runtime/debug"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Recovery struct {
	logger            *zap.Logger
	trace             *telemetry.Trace
	config            *config.Configuration
	fluentdRepository *repository.LogRepository
}

func NewRecovery(
	logger *zap.Logger,
	trace *telemetry.Trace,
	config *config.Configuration,
	fluentdRepository *repository.LogRepository,
) *Recovery {
	return &Recovery{
		logger:            logger,
		trace:             trace,
		config:            config,
		fluentdRepository: fluentdRepository,
	}
}

func (middleware *Recovery) ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestTime := time.Now()
		if startTime, exists := c.Get("requestDuration"); exists {
			if t, ok := startTime.(time.Time); ok {
				requestTime = t
			}
		}
		requestID := RequestID(c)

		// ---- panic recover 必須在 c.Next() 之前註冊 ----
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			duration := time.Since(requestTime)
			ctx, span, end := middleware.trace.WithSpan(middleware.trace.GetTraceContext(c), string(core.SpanRecoveryMiddleware))

			meta := core.TracePanicMeta{
				Path:       c.Request.URL.Path,
				Method:     c.Request.Method,
				ClientIP:   c.ClientIP(),
				UserAgent:  c.Request.UserAgent(),
				DurationMs: float64(duration.Milliseconds()),
				Message:    toSafeString(fmt.Sprint(rec)),
				Stack:      toSafeStack(debug.Stack()),
				Status:     http.StatusInternalServerError,
			}
			middleware.trace.ApplyTraceAttributes(span, meta)

			middleware.logger.Error("[PANIC] Recovered",
				zap.String("path", meta.Path),
				zap.String("method", meta.Method),
				zap.String("client_ip", meta.ClientIP),
				zap.Duration("duration", duration),
				zap.String("panic", meta.Message),
				zap.String("stacktrace", meta.Stack),
				zap.String("requestId", requestID),
			)

			err := cErr.InternalServer("unexpected panic")
			end(err)
			// 尚未回寫才輸出
			if !c.Writer.Written() {
				res.FailByErr(c, requestID, err)
			}
			middleware.logResponse(ctx, requestID, c.FullPath(), cErr.INTERNAL_ERROR, http.StatusInternalServerError, meta.Message)
			c.Abort()
		}()

		// 執行下游
		c.Next()

		// ---- 統一處理非 panic 的 gin errors（若尚未回寫）----
		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		duration := time.Since(requestTime)
		ctx, span, end := middleware.trace.WithSpan(middleware.trace.GetTraceContext(c), string(core.SpanRecoveryMiddleware))

		// 找第一個可轉成 *cErr.Error 的錯誤
		var appErr *cErr.Error
		for _, e := range c.Errors {
			if errors.As(e.Err, &appErr) {
				break
			}
		}
		if appErr == nil {
			// 其餘未知錯誤
			appErr = cErr.New(http.StatusInternalServerError, cErr.INTERNAL_ERROR, "unknown-error", toSafeString(c.Errors.String()))
		}

		middleware.trace.ApplyTraceAttributes(span, core.TraceErrorMeta{
			Code:       appErr.ErrorCode(),
			Message:    appErr.Error(),
			Detail:     appErr.ErrorDesc(),
			DurationMs: float64(duration.Milliseconds()),
			Status:     appErr.HttpCode(),
		})
		fields := []zap.Field{
			zap.Int("code", appErr.ErrorCode()),
			zap.Int("status", appErr.HttpCode()),
			zap.String("data", appErr.ErrorDesc()),
			zap.String("path", c.Request.URL.Path),
			zap.Duration("duration", duration),
			zap.String("requestId", requestID),
		}
		if appErr.HttpCode() >= http.StatusInternalServerError {
			middleware.logger.Error(appErr.Error(), fields...)
		} else {
			middleware.logger.Warn(appErr.Error(), fields...)
		}
		end(appErr)

		res.FailByErr(c, requestID, appErr)
		middleware.logResponse(ctx, requestID, c.FullPath(), appErr.ErrorCode(), appErr.HttpCode(), appErr.Error())
		c.Abort()
	}
}

func (middleware *Recovery) logResponse(ctx context.Context, requestID, route string, code, status int, msg string) {
	if middleware.fluentdRepository == nil {
		return
	}
	err := middleware.fluentdRepository.LogResponse(ctx, model.ResponseLog{
		RequestID:   requestID,
		ProjectName: middleware.config.App.Name,
		Route:       route,
		Code:        code,
		StatusCode:  status,
		Error:       msg,
		ResponseTS:  time.Now().UTC().Format("2006-01-02 15:04:05.999999 UTC"),
		Version:     middleware.config.App.Version,
	})
	if err != nil {
		middleware.logger.Warn("post response log to fluentd failed", zap.Error(err))
	}
}

// ---- helpers ----

func toSafeString(s string) string {
	const max = 8000
	if utf8.ValidString(s) {
		if len(s) > max {
			return s[:max] + "…"
		}
		return s
	}
	b := []byte(s)
	if len(b) > max {
		b = b[:max]
	}
	return "b64:" + base64.StdEncoding.EncodeToString(b)
}

func toSafeStack(b []byte) string {
	const max = 16000
	if utf8.Valid(b) {
		if len(b) > max {
			return string(b[:max]) + "…"
		}
		return string(b)
	}
	if len(b) > max {
		b = b[:max]
	}
	return "b64:" + base64.StdEncoding.EncodeToString(b)
}

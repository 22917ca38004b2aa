package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"lovedj/config"
	"lovedj/internal/core"
	"lovedj/internal/database/fluentd/model"
	"lovedj/internal/database/fluentd/repository"
	"lovedj/internal/telemetry"
	"mime"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxBodyPreview = 2000

type Logger struct {
	logger            *zap.Logger
	trace             *telemetry.Trace
	config            *config.Configuration
	fluentdRepository *repository.LogRepository
}

func NewLogger(
	logger *zap.Logger,
	trace *telemetry.Trace,
	config *config.Configuration,
	fluentdRepository *repository.LogRepository,
) *Logger {
	return &Logger{
		logger:            logger,
		trace:             trace,
		config:            config,
		fluentdRepository: fluentdRepository,
	}
}

// LoggerHandler 記錄每個請求的詳細資訊（避免讀取二進位 body；文字 body 做安全截斷與 UTF-8 處理）
func (m *Logger) LoggerHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		endpoint := c.FullPath()
		if skipPath(endpoint) {
			c.Next()
			return
		}

		ctx, span, end := m.trace.WithSpan(m.trace.GetTraceContext(c), string(core.SpanLoggerMiddleware))

		requestTime := time.Now().UTC()
		if startTime, exists := c.Get("requestDuration"); exists {
			if t, ok := startTime.(time.Time); ok {
				requestTime = t
			}
		}

		// ===== 判斷 content-type，二進位不讀 body =====
		mediaType, _, _ := mime.ParseMediaType(c.GetHeader("Content-Type"))
		bodyRaw := ""
		if isBinaryContent(mediaType) {
			bodyRaw = fmt.Sprintf("(binary %s, %d bytes)", mediaType, c.Request.ContentLength)
		} else if c.Request.Body != nil && c.Request.ContentLength != 0 {
			// 讀完整 body 後回填，確保下游仍可讀取
			data, _ := io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewReader(data))
			bodyRaw = toSafePreview(data, maxBodyPreview)
		}

		method := c.Request.Method
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery
		requestID := RequestID(c)
		traceID := span.SpanContext().TraceID()
		spanID := span.SpanContext().SpanID()

		// headers → map[string]string（lowercase key）
		headerMap := make(map[string]string, len(c.Request.Header))
		for k, v := range c.Request.Header {
			headerMap[strings.ToLower(k)] = strings.Join(v, ",")
		}

		// path params
		paramsMap := make(map[string]string, len(c.Params))
		for _, p := range c.Params {
			paramsMap[p.Key] = p.Value
		}

		m.trace.ApplyTraceAttributes(span, core.LoggerRequestMeta{
			Method:     method,
			Path:       path,
			FullPath:   endpoint,
			Query:      query,
			Body:       bodyRaw,
			Scheme:     c.Request.URL.Scheme,
			Host:       c.Request.Host,
			UserAgent:  c.Request.UserAgent(),
			ContentLen: c.Request.ContentLength,
			Proto:      c.Request.Proto,
			ClientIP:   c.ClientIP(),
			Headers:    headerMap,
			Params:     paramsMap,
		})

		logFields := []zap.Field{
			zap.String("method", method),
			zap.String("path", path),
			zap.String("client_ip", c.ClientIP()),
		}
		if query != "" {
			logFields = append(logFields, zap.String("query", query))
		}
		if len(paramsMap) > 0 {
			logFields = append(logFields, zap.Any("params", paramsMap))
		}
		if bodyRaw != "" {
			logFields = append(logFields, zap.String("body", bodyRaw))
		}
		logFields = append(logFields,
			zap.String("requestId", requestID),
			zap.String("spanId", spanID.String()),
			zap.String("traceId", traceID.String()),
		)
		m.logger.Info("[Request] logging middleware message", logFields...)

		m.logRequest(ctx, model.RequestLog{
			RequestID:   requestID,
			Method:      method,
			Path:        path,
			Route:       c.FullPath(),
			ProjectName: m.config.App.Name,
			RequestTS:   requestTime.Format("2006-01-02 15:04:05.999999 UTC"),
			Body:        bodyRaw,
			IPHash:      hashIP(c.ClientIP()),
			UserAgent:   c.Request.UserAgent(),
			Version:     m.config.App.Version,
		})
		end(nil)
		c.Next()
	}
}

func (m *Logger) logRequest(ctx context.Context, rec model.RequestLog) {
	if m.fluentdRepository == nil {
		return
	}
	if err := m.fluentdRepository.LogRequest(ctx, rec); err != nil {
		m.logger.Warn("post request log to fluentd failed", zap.Error(err))
	}
}

// 不落地原始 IP
func hashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip))
	return hex.EncodeToString(sum[:8])
}

// 僅對文字內容做安全預覽：UTF-8 直接截斷；非 UTF-8 以 Base64 表示
func toSafePreview(b []byte, max int) string {
	if len(b) == 0 {
		return ""
	}
	if utf8.Valid(b) {
		if len(b) > max {
			return string(b[:max]) + "…"
		}
		return string(b)
	}
	// 非 UTF-8 -> base64（先截斷，避免輸出過大）
	if len(b) > max {
		b = b[:max]
	}
	return "b64:" + base64.StdEncoding.EncodeToString(b)
}

// 是否為二進位內容（不讀 body）
func isBinaryContent(mediaType string) bool {
	return strings.HasPrefix(mediaType, "multipart/") ||
		strings.HasPrefix(mediaType, "image/") ||
		strings.HasPrefix(mediaType, "audio/") ||
		strings.HasPrefix(mediaType, "video/") ||
		mediaType == "application/octet-stream"
}

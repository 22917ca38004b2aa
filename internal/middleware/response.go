package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"lovedj/config"
	"lovedj/internal/core"
	"lovedj/internal/database/fluentd/model"
	"lovedj/internal/database/fluentd/repository"
	cErr "lovedj/internal/pkg/error"
	"lovedj/internal/pkg/response"
	"lovedj/internal/telemetry"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PassthroughRaw handler 自行寫出回應（SSE、HTML）時設定，略過統一包裝
const PassthroughRaw = "passthrough_raw"

type Response struct {
	logger            *zap.Logger
	trace             *telemetry.Trace
	config            *config.Configuration
	fluentdRepository *repository.LogRepository
}

func NewResponse(
	logger *zap.Logger,
	trace *telemetry.Trace,
	config *config.Configuration,
	fluentdRepository *repository.LogRepository,
) *Response {
	return &Response{
		logger:            logger,
		trace:             trace,
		config:            config,
		fluentdRepository: fluentdRepository,
	}
}

func (middleware *Response) FormatHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if skipPath(c.FullPath()) {
			c.Next()
			return
		}

		requestTime := time.Now()
		if startTime, exists := c.Get("requestDuration"); exists {
			if t, ok := startTime.(time.Time); ok {
				requestTime = t
			}
		} else {
			c.Set("requestDuration", requestTime)
		}

		// 執行下游
		c.Next()

		skipWrap := c.GetBool(PassthroughRaw)
		// 若已經有錯誤交由 Recovery 處理，或已經寫出回應，就不要再動了
		if len(c.Errors) > 0 || (!skipWrap && c.Writer.Written()) {
			return
		}

		// 以「下游結束後」的狀態碼為準
		statusCode := c.Writer.Status()

		// 若 status >= 400：轉為應用錯誤交給 Recovery 統一輸出
		if statusCode >= http.StatusBadRequest && !c.Writer.Written() {
			response.AbortWithError(c, cErr.MapHttpStatusToError(statusCode, "request error"))
			return
		}

		// ---- 成功回應路徑 ----
		ctx, span, end := middleware.trace.WithSpan(middleware.trace.GetTraceContext(c), string(core.SpanResponseMiddleware))
		defer end(nil)

		// 組裝回應資料（由 handler 透過 c.Set 設定）
		data, _ := c.Get("data")
		if data == nil {
			data = map[string]any{}
		}
		message := "Request Success"
		if s := c.GetString("message"); s != "" {
			message = s
		}
		duration := time.Since(requestTime)
		requestID := RequestID(c)

		middleware.trace.ApplyTraceAttributes(span, core.TraceResponseMeta{
			Path:       c.Request.URL.Path,
			Method:     c.Request.Method,
			Status:     statusCode,
			Message:    message,
			Code:       cErr.SUCCESS,
			DurationMs: float64(duration.Milliseconds()),
			Data:       safePreviewJSON(data, 2000),
		})

		middleware.logger.Info("[Response] "+message,
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.Int("status", statusCode),
			zap.Duration("duration", duration),
			zap.Bool("passthrough", skipWrap),
			zap.String("requestId", requestID),
		)

		if skipWrap {
			middleware.logResponse(ctx, requestID, c.FullPath(), statusCode, "")
			return
		}

		// 封裝統一回應
		res := response.Response{
			RequestID:   requestID,
			Code:        cErr.SUCCESS,
			Data:        data,
			Message:     "OK",
			Description: message,
		}
		jsonBytes, err := json.Marshal(res)
		if err != nil {
			// Marshal 失敗視為 500，交給 Recovery 處理
			response.AbortWithError(c, cErr.InternalServer("marshal response failed"))
			return
		}
		middleware.logResponse(ctx, requestID, c.FullPath(), statusCode, safePreviewJSON(data, 2000))

		c.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
		c.Writer.WriteHeader(statusCode) // 例如 handler 可能設了 201
		if _, werr := c.Writer.Write(jsonBytes); werr != nil {
			middleware.logger.Warn("write response failed", zap.Error(werr), zap.String("requestId", requestID))
		}
	}
}

func (middleware *Response) logResponse(ctx context.Context, requestID, route string, status int, body string) {
	if middleware.fluentdRepository == nil {
		return
	}
	err := middleware.fluentdRepository.LogResponse(ctx, model.ResponseLog{
		RequestID:   requestID,
		ProjectName: middleware.config.App.Name,
		Route:       route,
		StatusCode:  status,
		Body:        body,
		ResponseTS:  time.Now().UTC().Format("2006-01-02 15:04:05.999999 UTC"),
		Version:     middleware.config.App.Version,
	})
	if err != nil {
		middleware.logger.Warn("post response log to fluentd failed", zap.Error(err))
	}
}

// safePreviewJSON 會把資料序列化為 JSON 字串（UTF-8），並限制長度。
func safePreviewJSON(data any, max int) string {
	var out string
	if s, ok := data.(string); ok {
		out = s
	} else {
		b, err := json.Marshal(data)
		if err != nil {
			return fmt.Sprintf("[marshal error: %v]", err)
		}
		out = string(b)
	}
	if len(out) > max {
		return out[:max] + "…"
	}
	return out
}

package handler

import (
	"lovedj/internal/core"
	"lovedj/internal/dto"
	"lovedj/internal/middleware"
	"lovedj/internal/pkg/response"
	"lovedj/internal/service"
	"lovedj/internal/telemetry"
	"lovedj/utils/validate"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

type DateHandler struct {
	trace       *telemetry.Trace
	logger      *zap.Logger
	dateService *service.DateService
}

func NewDateHandler(trace *telemetry.Trace, logger *zap.Logger, dateService *service.DateService) *DateHandler {
	return &DateHandler{trace: trace, logger: logger, dateService: dateService}
}

func toDateRequest(c *gin.Context, req dto.CreateDateDto) service.DateRequest {
	return service.DateRequest{
		ProfileA:  req.ProfileA.Profile(),
		ProfileB:  req.ProfileB.Profile(),
		Rounds:    req.Rounds,
		Model:     req.Model,
		Provider:  req.Provider,
		Theme:     req.Theme,
		RequestID: middleware.RequestID(c),
		ClientIP:  c.ClientIP(),
	}
}

// Create 執行一場約會，完成後一次回傳
// @Summary 執行一場約會
// @Description A 開場後每回合 B、A 各發言一次，最後雙方評分 1-10
// @Tags Date
// @Accept json
// @Produce json
// @Param body body dto.CreateDateDto true "約會設定"
// @Success 201 {object} response.Response{data=dto.DateResponseDto}
// @Failure 400 {object} response.Response
// @Failure 429 {object} response.Response
// @Failure 502 {object} response.Response
// @Router /api/dates [post]
func (h *DateHandler) Create(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var req dto.CreateDateDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	date, err := h.dateService.Run(ctx, toDateRequest(c, req), nil)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	c.Status(http.StatusCreated)
	response.Create(c, dto.NewDateResponseDto(date))
}

// Stream 以 SSE 逐句推送約會過程
// @Summary 執行一場約會（SSE）
// @Description 事件依序為 start、turn、rating、done；失敗時送出 error 後結束
// @Tags Date
// @Accept json
// @Produce text/event-stream
// @Param body body dto.CreateDateDto true "約會設定"
// @Success 200 {object} service.DateEvent
// @Failure 400 {object} response.Response
// @Failure 429 {object} response.Response
// @Router /api/dates/stream [post]
func (h *DateHandler) Stream(c *gin.Context) {
	ctx, span, end := h.trace.WithSpan(c)
	defer end(nil)

	var req dto.CreateDateDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	started := false
	emit := func(e service.DateEvent) {
		if !started {
			started = true
			c.Set(middleware.PassthroughRaw, true)
			c.Header("Cache-Control", "no-cache")
			c.Header("Connection", "keep-alive")
			c.Header("X-Accel-Buffering", "no")
		}
		c.SSEvent(string(e.Type), e)
		c.Writer.Flush()
	}

	date, err := h.dateService.Run(ctx, toDateRequest(c, req), emit)
	if date != nil {
		span.SetAttributes(attribute.String("date.id", date.ID), attribute.Int("date.turns", len(date.Turns)))
	}
	if err == nil {
		return
	}
	end(err)
	if !started {
		// 尚未開始串流，照一般錯誤格式回應
		response.AbortWithError(c, err)
		return
	}
	h.logger.Warn("date stream ended with error",
		zap.String("requestId", middleware.RequestID(c)),
		zap.Error(err),
	)
}

// Get 取得約會紀錄
// @Summary 取得約會紀錄
// @Tags Date
// @Produce json
// @Param dateID path string true "Date ID"
// @Success 200 {object} response.Response{data=dto.DateResponseDto}
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 503 {object} response.Response
// @Router /api/dates/{dateID} [get]
func (h *DateHandler) Get(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseUUID(c, "dateID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	date, err := h.dateService.Get(ctx, id)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, dto.NewDateResponseDto(date))
}

// List 最近的約會
// @Summary 最近的約會（不含對話內容）
// @Tags Date
// @Produce json
// @Param page query int false "頁碼，從 0 開始"
// @Param size query int false "每頁筆數，預設 20"
// @Success 200 {object} response.Response{data=[]dto.DateResponseDto}
// @Failure 400 {object} response.Response
// @Failure 503 {object} response.Response
// @Router /api/dates [get]
func (h *DateHandler) List(c *gin.Context) {
	ctx, span, end := h.trace.WithSpan(c)
	defer end(nil)

	var q dto.ListDatesQueryDto
	if cause, respErr := validate.BindQuery(c, &q); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	opts := core.ListOptions{Page: int64(q.Page), Size: int64(q.Size)}
	dates, err := h.dateService.List(ctx, opts)
	h.trace.ApplyTraceAttributes(span, core.TraceDateListMeta{
		Page:        opts.Page,
		Size:        opts.Size,
		ResultCount: len(dates),
	})
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, dto.NewDateResponseDtos(dates))
}

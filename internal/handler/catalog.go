package handler

import (
	"lovedj/internal/catalog"
	"lovedj/internal/dto"
	"lovedj/internal/pkg/response"
	"lovedj/internal/telemetry"
	"lovedj/utils/validate"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

type CatalogHandler struct {
	trace *telemetry.Trace
	store *catalog.Store
}

func NewCatalogHandler(trace *telemetry.Trace, store *catalog.Store) *CatalogHandler {
	return &CatalogHandler{trace: trace, store: store}
}

func catalogResponse(snap catalog.Snapshot) dto.CatalogResponseDto {
	return dto.CatalogResponseDto{
		Models:         snap.Catalog.Models,
		Providers:      snap.Catalog.Providers,
		Default:        snap.Catalog.Fallback().Model,
		FallbackReason: catalog.Reason(snap.Err),
		LoadedAt:       snap.LoadedAt,
	}
}

// Models 模型目錄
// @Summary 取得模型目錄
// @Description 模型依位元組序排序且不重複；列舉失敗時回傳只含保底模型的目錄，fallbackReason 說明原因
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Response{data=dto.CatalogResponseDto}
// @Router /api/catalog/models [get]
func (h *CatalogHandler) Models(c *gin.Context) {
	ctx, span, end := h.trace.WithSpan(c)
	defer end(nil)

	snap := h.store.Snapshot(ctx)
	span.SetAttributes(
		attribute.Int("catalog.models", snap.Catalog.Len()),
		attribute.String("catalog.fallback_reason", catalog.Reason(snap.Err)),
	)
	response.Success(c, catalogResponse(snap))
}

// Labels 下拉選單
// @Summary 取得下拉選單文字
// @Description "<model> [<provider>]"，保底模型固定在第一個
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Response{data=[]string}
// @Router /api/catalog/labels [get]
func (h *CatalogHandler) Labels(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	response.Success(c, h.store.Labels(ctx))
}

// Provider 查詢模型所屬 provider
// @Summary 查詢模型所屬 provider
// @Description 不在目錄中的模型回傳 "unknown"；model 也可以是下拉選單的 label
// @Tags Catalog
// @Produce json
// @Param model query string true "模型 id 或 label"
// @Success 200 {object} response.Response{data=dto.ModelProviderDto}
// @Failure 400 {object} response.Response
// @Router /api/catalog/provider [get]
func (h *CatalogHandler) Provider(c *gin.Context) {
	ctx, span, end := h.trace.WithSpan(c)
	defer end(nil)

	var q dto.ProviderQueryDto
	if cause, respErr := validate.BindQuery(c, &q); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	model := catalog.ModelFromLabel(q.Model)
	provider := h.store.ProviderOf(ctx, model)
	span.SetAttributes(attribute.String("ai.model", model), attribute.String("ai.provider", provider))

	response.Success(c, dto.ModelProviderDto{
		Model:    model,
		Provider: provider,
		Label:    catalog.Label(model, provider),
	})
}

// Refresh 重新列舉
// @Summary 重新列舉模型目錄
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Response{data=dto.CatalogResponseDto}
// @Router /api/catalog/refresh [post]
func (h *CatalogHandler) Refresh(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	response.Success(c, catalogResponse(h.store.Refresh(ctx)))
}

package handler

import (
	"bytes"
	"html/template"
	"net/http"

	"lovedj/config"
	"lovedj/internal/agent"
	"lovedj/internal/catalog"
	"lovedj/internal/middleware"
	cErr "lovedj/internal/pkg/error"
	"lovedj/internal/pkg/response"
	"lovedj/internal/service"
	"lovedj/internal/telemetry"
	"lovedj/internal/web"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type pageSide struct {
	Side    agent.Side
	Profile agent.Profile
}

type indexPage struct {
	Title          string
	Labels         []string
	FallbackReason string
	Sides          []pageSide
	Pronouns       []agent.Pronoun
	DefaultRounds  int
	MaxRounds      int
}

type PageHandler struct {
	trace  *telemetry.Trace
	logger *zap.Logger
	config *config.Configuration
	store  *catalog.Store
	tmpl   *template.Template

	dateService *service.DateService
}

func NewPageHandler(
	trace *telemetry.Trace,
	logger *zap.Logger,
	config *config.Configuration,
	store *catalog.Store,
	dateService *service.DateService,
) (*PageHandler, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}
	return &PageHandler{
		trace:       trace,
		logger:      logger,
		config:      config,
		store:       store,
		tmpl:        tmpl,
		dateService: dateService,
	}, nil
}

// Index 約會頁面
// @Summary 約會頁面
// @Tags Page
// @Produce html
// @Success 200 {string} string "HTML"
// @Router / [get]
func (h *PageHandler) Index(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	snap := h.store.Snapshot(ctx)
	title := h.config.App.Name
	if title == "" {
		title = "love.dj"
	}
	defaultRounds, maxRounds := h.dateService.RoundLimits()

	page := indexPage{
		Title:          title,
		Labels:         snap.Catalog.Labels(),
		FallbackReason: catalog.Reason(snap.Err),
		Sides: []pageSide{
			{Side: agent.SideA, Profile: agent.DefaultProfile(agent.SideA)},
			{Side: agent.SideB, Profile: agent.DefaultProfile(agent.SideB)},
		},
		Pronouns:      agent.Pronouns,
		DefaultRounds: defaultRounds,
		MaxRounds:     maxRounds,
	}

	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, "index.html", page); err != nil {
		end(err)
		h.logger.Error("render index page failed", zap.Error(err))
		response.AbortWithError(c, cErr.InternalServer("render page failed"))
		return
	}
	c.Set(middleware.PassthroughRaw, true)
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

package middleware

import (
	"lovedj/config"
	"lovedj/internal/core"
	"lovedj/internal/telemetry"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Cors struct {
	trace *telemetry.Trace
	conf  *config.Configuration
}

func NewCors(trace *telemetry.Trace, conf *config.Configuration) *Cors {
	return &Cors{trace: trace, conf: conf}
}

func (m *Cors) config() cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Cache-Control", "Last-Event-ID"},
		ExposeHeaders: []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset", "Retry-After"},
		MaxAge:        12 * time.Hour,
	}
	// 未設定來源時全部允許，但不帶 credentials
	if len(m.conf.App.AllowOrigins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = m.conf.App.AllowOrigins
		cfg.AllowCredentials = true
	}
	return cfg
}

// CorsHandler 設定 CORS，並以 WithSpan 紀錄設定（跳過特定路徑的 tracing，但仍套用 CORS）
func (m *Cors) CorsHandler() gin.HandlerFunc {
	cfg := m.config()
	corsHandler := cors.New(cfg)

	type corsMeta struct {
		AllowAll     bool     `trace:"http.cors.allow_all_origins"`
		AllowOrigins []string `trace:"http.cors.allow_origins"`
		AllowMethods []string `trace:"http.cors.allow_methods"`
		AllowHeaders []string `trace:"http.cors.allow_headers"`
		AllowCreds   bool     `trace:"http.cors.allow_credentials"`
	}

	return func(c *gin.Context) {
		// 這些路徑：不做 tracing，但仍需套用 CORS（避免 preflight 失敗）
		if skipPath(c.FullPath()) {
			corsHandler(c)
			return
		}

		_, span, end := m.trace.WithSpan(c.Request.Context(), string(core.SpanCorsMiddleware))
		m.trace.ApplyTraceAttributes(span, corsMeta{
			AllowAll:     cfg.AllowAllOrigins,
			AllowOrigins: cfg.AllowOrigins,
			AllowMethods: cfg.AllowMethods,
			AllowHeaders: cfg.AllowHeaders,
			AllowCreds:   cfg.AllowCredentials,
		})
		end(nil)

		corsHandler(c)
	}
}

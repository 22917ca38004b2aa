package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"lovedj/config"
	client "lovedj/internal/database/client"
	"lovedj/internal/database/redis/repository"
	cErr "lovedj/internal/pkg/error"
	"lovedj/internal/pkg/response"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestEngine(t *testing.T, limit int64) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	conf := &config.Configuration{}
	conf.App.Name = "lovedj-test"
	conf.App.Version = "test"
	conf.Date.RateLimit.Limit = limit
	conf.Date.RateLimit.Window = 60
	logger := zap.NewNop()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	limiter := repository.NewRateLimiterRepository(nil, client.NewRedisClientFrom(logger, rdb))

	r := gin.New()
	r.Use(NewTraceEntry(nil, nil, conf).Handler())
	r.Use(NewLogger(logger, nil, conf, nil).LoggerHandler())
	r.Use(NewCors(nil, conf).CorsHandler())
	r.Use(NewRecovery(logger, nil, conf, nil).ErrorHandler())
	r.Use(NewResponse(logger, nil, conf, nil).FormatHandler())

	guard := NewRateLimit(logger, nil, nil, conf, limiter).Guard()
	r.POST("/api/dates", guard, func(c *gin.Context) {
		c.Status(http.StatusCreated)
		response.Create(c, map[string]string{"id": "d1"})
	})
	r.GET("/ok", func(c *gin.Context) {
		response.Success(c, gin.H{"hello": "world"})
	})
	r.GET("/fail", func(c *gin.Context) {
		response.AbortWithError(c, cErr.DateNotFound("date d1 not found"))
	})
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})
	r.GET("/raw", func(c *gin.Context) {
		c.Set(PassthroughRaw, true)
		c.String(http.StatusOK, "plain")
	})
	return r
}

type envelope struct {
	RequestID   string          `json:"requestID"`
	Code        int             `json:"code"`
	Data        json.RawMessage `json:"data"`
	Message     string          `json:"message"`
	Description string          `json:"description"`
}

func serve(r http.Handler, method, target string) (*httptest.ResponseRecorder, envelope) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, nil)
	req.RemoteAddr = "10.1.2.3:5555"
	r.ServeHTTP(w, req)
	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestResponse_WrapsSuccess(t *testing.T) {
	r := newTestEngine(t, 0)

	w, env := serve(r, http.MethodGet, "/ok")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, env.Code)
	assert.Equal(t, "OK", env.Message)
	assert.JSONEq(t, `{"hello":"world"}`, string(env.Data))
	assert.NotEmpty(t, env.RequestID)
	assert.Equal(t, env.RequestID, w.Header().Get("X-Request-ID"))
}

func TestRecovery_AppError(t *testing.T) {
	r := newTestEngine(t, 0)

	w, env := serve(r, http.MethodGet, "/fail")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, cErr.DATE_NOT_FOUND, env.Code)
	assert.Equal(t, "date-not-found", env.Message)
	assert.Equal(t, "date d1 not found", env.Description)
}

func TestRecovery_Panic(t *testing.T) {
	r := newTestEngine(t, 0)

	w, env := serve(r, http.MethodGet, "/panic")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, cErr.INTERNAL_ERROR, env.Code)
}

func TestResponse_Passthrough(t *testing.T) {
	r := newTestEngine(t, 0)

	w, _ := serve(r, http.MethodGet, "/raw")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "plain", w.Body.String())
}

func TestRateLimit_BlocksAfterLimit(t *testing.T) {
	r := newTestEngine(t, 2)

	for i, want := range []string{"1", "0"} {
		w, env := serve(r, http.MethodPost, "/api/dates")
		require.Equal(t, http.StatusCreated, w.Code, "request %d", i)
		assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, want, w.Header().Get("X-RateLimit-Remaining"))
		assert.JSONEq(t, `{"id":"d1"}`, string(env.Data))
	}

	w, env := serve(r, http.MethodPost, "/api/dates")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, cErr.RATE_LIMIT_EXCEEDED, env.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimit_DisabledWithoutLimit(t *testing.T) {
	r := newTestEngine(t, 0)

	for i := 0; i < 5; i++ {
		w, _ := serve(r, http.MethodPost, "/api/dates")
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
	}
}

func TestSkipPath(t *testing.T) {
	assert.True(t, skipPath("/metrics"))
	assert.True(t, skipPath("/health/liveness"))
	assert.True(t, skipPath("/static/app.css"))
	assert.False(t, skipPath("/api/dates"))
	assert.False(t, skipPath("/"))
}

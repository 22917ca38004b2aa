package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/google/wire"
	"go.opentelemetry.io/otel/trace"
)

var ProviderSet = wire.NewSet(
	NewTraceEntry,
	NewCors,
	NewLogger,
	NewRecovery,
	NewRateLimit,
	NewResponse,
)

// 不追蹤、不包裝回應的路徑
var skipPrefixes = []string{"/swagger", "/metrics", "/version", "/health", "/debug/pprof", "/static"}

func skipPath(endpoint string) bool {
	for _, p := range skipPrefixes {
		if strings.HasPrefix(endpoint, p) {
			return true
		}
	}
	return false
}

const requestIDKey = "requestID"

// RequestID 同一請求共用的 id：有效的 trace id 優先，否則產生 uuid v7
func RequestID(c *gin.Context) string {
	if v, ok := c.Get(requestIDKey); ok {
		if id, _ := v.(string); id != "" {
			return id
		}
	}
	id := ""
	if sc := trace.SpanContextFromContext(c.Request.Context()); sc.HasTraceID() {
		id = sc.TraceID().String()
	} else if u, err := uuid.NewV7(); err == nil {
		id = u.String()
	} else {
		id = uuid.NewString()
	}
	c.Set(requestIDKey, id)
	return id
}

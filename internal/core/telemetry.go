package core

const ContextTraceKey = "telemetry_trace_ctx"

// ==== 型別安全 span name ====
// 專案全域建議都寫這裡，方便集中管理
type TraceSpanName string

const (
	SpanLoggerMiddleware    TraceSpanName = "logger_middleware"
	SpanRecoveryMiddleware  TraceSpanName = "recovery_middleware"
	SpanCorsMiddleware      TraceSpanName = "cors_middleware"
	SpanResponseMiddleware  TraceSpanName = "response_middleware"
	SpanRateLimitMiddleware TraceSpanName = "ratelimit_middleware"
	SpanCatalogFetch        TraceSpanName = "catalog_fetch"
	SpanDateRun             TraceSpanName = "date_run"
	SpanDateTurn            TraceSpanName = "date_turn"
	SpanLLMComplete         TraceSpanName = "llm_complete"
	SpanLLMListModels       TraceSpanName = "llm_list_models"
)

// 指標名稱常數
type MetricName string

const (
	MetricHttpRequestsTotal   MetricName = "requests_total"
	MetricHttpRequestDuration MetricName = "request_duration_seconds"
	MetricRateLimitTotal      MetricName = "rate_limited_total"
	MetricCatalogFallback     MetricName = "catalog_fallback_total"
	MetricCatalogModels       MetricName = "catalog_models"
	MetricDatesTotal          MetricName = "dates_total"
	MetricLLMRequestsTotal    MetricName = "llm_requests_total"
)

// label name 常數
type MetricLabelName string

const (
	MetricLabelEndpoint MetricLabelName = "endpoint"
	MetricLabelStatus   MetricLabelName = "status"
	MetricLabelReason   MetricLabelName = "reason"
	MetricLabelProvider MetricLabelName = "provider"
)

type LoggerRequestMeta struct {
	Method     string            `trace:"request.method"`
	Path       string            `trace:"request.path"`
	FullPath   string            `trace:"request.full_path"`
	Query      string            `trace:"request.query"`
	Body       string            `trace:"request.body"`
	Scheme     string            `trace:"http.scheme"`
	Host       string            `trace:"http.host"`
	UserAgent  string            `trace:"http.user_agent"`
	ContentLen int64             `trace:"http.request_content_length"`
	Proto      string            `trace:"http.flavor"`
	ClientIP   string            `trace:"net.peer.ip"`
	Headers    map[string]string `trace:"http.request.header"`
	Params     map[string]string `trace:"http.request.param"`
}

type TracePanicMeta struct {
	Path       string  `trace:"http.path"`
	Method     string  `trace:"http.method"`
	ClientIP   string  `trace:"net.peer.ip"`
	UserAgent  string  `trace:"http.user_agent"`
	DurationMs float64 `trace:"response.latency_ms"`
	Status     int     `trace:"http.status_code"`
	Message    string  `trace:"error.message"`
	Stack      string  `trace:"error.stack"`
}

type TraceErrorMeta struct {
	Code       int     `trace:"error.code"`
	Message    string  `trace:"error.message"`
	Detail     string  `trace:"error.detail"`
	Status     int     `trace:"http.status_code"`
	DurationMs float64 `trace:"response.latency_ms"`
}

type TraceResponseMeta struct {
	Path       string  `trace:"http.path"`
	Method     string  `trace:"http.method"`
	Status     int     `trace:"http.status_code"`
	Message    string  `trace:"response.message"`
	Code       int     `trace:"response.code"`
	DurationMs float64 `trace:"response.latency_ms"`
	Data       string  `trace:"response.data_preview"`
}
type TraceHttpServerMeta struct {
	// request side
	ClientAddr        string `trace:"client.address"`
	HttpRequestMethod string `trace:"http.request.method"`
	HttpRoute         string `trace:"http.route"`
	UrlPath           string `trace:"http.request.path"`
	UrlScheme         string `trace:"http.request.url.scheme"`
	UserAgent         string `trace:"user_agent.original"`
	ServerAddress     string `trace:"server.address"`
	NetworkPeerAddr   string `trace:"network.peer.address"`
	NetworkPeerPort   int    `trace:"network.peer.port"`
	NetworkProtoVer   string `trace:"network.protocol.version"`
	SpanKind          string `trace:"span.kind"`
	SpanTraceID       string `trace:"span.trace_id"`
	HttpStatusCode    int    `trace:"http.response.status_code"`
}

// 每次模型呼叫的用量，與 fluentd usage log 同一組欄位
type TraceUsageLogMeta struct {
	RequestID        string `trace:"http.request.request_id,omitempty"`
	DateID           string `trace:"date.id"`
	Speaker          string `trace:"date.speaker"`
	Turn             int    `trace:"date.turn"`
	ProjectName      string `trace:"project.name"`
	Provider         string `trace:"ai.provider"`
	Model            string `trace:"ai.model"`
	Endpoint         string `trace:"ai.endpoint"`
	TokensPrompt     int    `trace:"ai.tokens.prompt"`
	TokensCompletion int    `trace:"ai.tokens.completion"`
	TokensTotal      int    `trace:"ai.tokens.total"`
}

// 模型目錄抓取
type TraceCatalogMeta struct {
	Source   string  `trace:"catalog.source"`
	Shape    string  `trace:"catalog.shape,omitempty"`
	Models   int     `trace:"catalog.models"`
	Fallback bool    `trace:"catalog.fallback"`
	Error    *string `trace:"error,omitempty"`
}

// 供 Redis 限流使用
type TraceRateLimitMeta struct {
	Key       string `trace:"rl.key"`
	Limit     int64  `trace:"rl.limit_count"`
	WindowSec int64  `trace:"rl.window_sec"`
	Remaining int64  `trace:"rl.remaining,omitempty"`
	TTL       int64  `trace:"rl.ttl_sec,omitempty"`
	Blocked   bool   `trace:"rl.blocked"`
	Op        string `trace:"rl.op"` // "consume" / "reset" / "get"
}

type TraceDateMeta struct {
	DateID   string `trace:"date.id"`
	Model    string `trace:"ai.model"`
	Provider string `trace:"ai.provider"`
	Rounds   int    `trace:"date.rounds"`
	Theme    string `trace:"date.theme,omitempty"`
	Turns    int    `trace:"date.turns,omitempty"`
	Status   string `trace:"date.status,omitempty"`
}

type TraceDateListMeta struct {
	Page        int64 `trace:"list.page"`
	Size        int64 `trace:"list.size"`
	ResultCount int   `trace:"list.result_count"`
}

type TraceLLMMeta struct {
	Provider         string `trace:"ai.provider"`
	Model            string `trace:"ai.model"`
	PromptChars      int    `trace:"ai.prompt_chars"`
	TokensPrompt     int    `trace:"ai.tokens.prompt,omitempty"`
	TokensCompletion int    `trace:"ai.tokens.completion,omitempty"`
	Models           int    `trace:"ai.models,omitempty"`
}

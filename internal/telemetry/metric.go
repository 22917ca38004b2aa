package telemetry

import (
	"lovedj/config"
	"lovedj/internal/core"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric struct
type Metric struct {
	HttpRequestsTotal   *prometheus.CounterVec
	HttpRequestDuration *prometheus.HistogramVec
	RateLimitedTotal    *prometheus.CounterVec
	CatalogFallback     *prometheus.CounterVec
	CatalogModels       prometheus.Gauge
	DatesTotal          *prometheus.CounterVec
	LLMRequestsTotal    *prometheus.CounterVec
	config              *config.Configuration
}

// NewMetric 建立所有指標
func NewMetric(config *config.Configuration) *Metric {
	if config == nil || !config.Telemetry.Metric.Enabled {
		return &Metric{}
	}
	buckets := prometheus.DefBuckets
	if len(config.Telemetry.Metric.Buckets) > 0 {
		buckets = config.Telemetry.Metric.Buckets
	}
	prefix := metricPrefix(config)
	return &Metric{
		config: config,
		HttpRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + string(core.MetricHttpRequestsTotal),
				Help: "Total received API requests",
			},
			labelNames(core.MetricLabelEndpoint, core.MetricLabelStatus),
		),
		HttpRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + string(core.MetricHttpRequestDuration),
				Help:    "API request duration (seconds)",
				Buckets: buckets,
			},
			labelNames(core.MetricLabelEndpoint),
		),
		RateLimitedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + string(core.MetricRateLimitTotal),
				Help: "Requests rejected by the rate limiter",
			},
			labelNames(core.MetricLabelEndpoint),
		),
		CatalogFallback: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + string(core.MetricCatalogFallback),
				Help: "Times the model catalog fell back to the default entry",
			},
			labelNames(core.MetricLabelReason),
		),
		CatalogModels: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: prefix + string(core.MetricCatalogModels),
				Help: "Number of models in the cached catalog",
			},
		),
		DatesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + string(core.MetricDatesTotal),
				Help: "Simulated dates by final status",
			},
			labelNames(core.MetricLabelStatus),
		),
		LLMRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + string(core.MetricLLMRequestsTotal),
				Help: "Completion requests sent to model providers",
			},
			labelNames(core.MetricLabelProvider, core.MetricLabelStatus),
		),
	}
}

// ObserveCatalogFallback 目錄保底次數（reason = unsupported_shape / empty / unavailable）
func (m *Metric) ObserveCatalogFallback(reason string) {
	if m == nil || m.CatalogFallback == nil {
		return
	}
	m.CatalogFallback.WithLabelValues(reason).Inc()
}

func (m *Metric) SetCatalogModels(n int) {
	if m == nil || m.CatalogModels == nil {
		return
	}
	m.CatalogModels.Set(float64(n))
}

func (m *Metric) ObserveDate(status core.DateStatus) {
	if m == nil || m.DatesTotal == nil {
		return
	}
	m.DatesTotal.WithLabelValues(string(status)).Inc()
}

func (m *Metric) ObserveLLMRequest(provider string, err error) {
	if m == nil || m.LLMRequestsTotal == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.LLMRequestsTotal.WithLabelValues(provider, status).Inc()
}

func (m *Metric) ObserveRateLimited(endpoint string) {
	if m == nil || m.RateLimitedTotal == nil {
		return
	}
	m.RateLimitedTotal.WithLabelValues(endpoint).Inc()
}

func metricPrefix(config *config.Configuration) string {
	name := config.App.Name
	if name == "" {
		name = "lovedj"
	}
	return name + "_"
}

// labelNames helper: LabelName slice 轉成 []string
func labelNames(labels ...core.MetricLabelName) []string {
	strs := make([]string, len(labels))
	for i, l := range labels {
		strs[i] = string(l)
	}
	return strs
}

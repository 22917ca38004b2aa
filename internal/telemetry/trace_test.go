package telemetry

import (
	"context"
	"errors"
	"testing"

	"lovedj/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newRecordingTrace() (*Trace, *tracetest.SpanRecorder) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	return &Trace{TracerProvider: tp, ServiceName: "lovedj"}, rec
}

func attrs(span sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	out := map[attribute.Key]attribute.Value{}
	for _, kv := range span.Attributes() {
		out[kv.Key] = kv.Value
	}
	return out
}

func TestWithSpan_RecordsAttributesAndError(t *testing.T) {
	tr, rec := newRecordingTrace()

	msg := "enumeration timed out"
	_, span, end := tr.WithSpan(context.Background(), string(core.SpanCatalogFetch))
	tr.ApplyTraceAttributes(span, core.TraceCatalogMeta{
		Source:   "providers",
		Models:   1,
		Fallback: true,
		Error:    &msg,
	})
	end(errors.New("boom"))

	ended := rec.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, string(core.SpanCatalogFetch), ended[0].Name())
	assert.Equal(t, codes.Error, ended[0].Status().Code)

	got := attrs(ended[0])
	assert.Equal(t, "providers", got["catalog.source"].AsString())
	assert.Equal(t, int64(1), got["catalog.models"].AsInt64())
	assert.True(t, got["catalog.fallback"].AsBool())
	assert.Equal(t, msg, got["error"].AsString())
	// omitempty 的零值不寫入
	_, hasShape := got["catalog.shape"]
	assert.False(t, hasShape)
}

func TestApplyTraceAttributes_IgnoresNonStruct(t *testing.T) {
	tr, rec := newRecordingTrace()
	_, span, end := tr.WithSpan(context.Background(), "plain")
	assert.NotPanics(t, func() {
		tr.ApplyTraceAttributes(span, "not a struct")
		tr.ApplyTraceAttributes(span, (*core.TraceCatalogMeta)(nil))
	})
	end(nil)
	require.Len(t, rec.Ended(), 1)
	assert.Empty(t, rec.Ended()[0].Attributes())
	assert.Equal(t, codes.Unset, rec.Ended()[0].Status().Code)
}

func TestNilTraceIsNoop(t *testing.T) {
	var tr *Trace
	ctx, span, end := tr.WithSpan(context.Background(), "noop")
	require.NotNil(t, ctx)
	assert.False(t, span.SpanContext().IsValid())
	assert.NotPanics(t, func() { end(errors.New("ignored")) })
	assert.NoError(t, tr.Shutdown(context.Background()))
}

func TestSampler(t *testing.T) {
	assert.Contains(t, sampler(0).Description(), "AlwaysOnSampler")
	assert.Contains(t, sampler(1).Description(), "AlwaysOnSampler")
	assert.Contains(t, sampler(0.25).Description(), "TraceIDRatioBased{0.25}")
}

func TestNilMetricIsNoop(t *testing.T) {
	var m *Metric
	assert.NotPanics(t, func() {
		m.ObserveCatalogFallback("empty")
		m.SetCatalogModels(3)
		m.ObserveDate(core.DateStatusFinished)
		m.ObserveLLMRequest("openai", nil)
		m.ObserveRateLimited("/api/dates")
	})
	disabled := NewMetric(nil)
	assert.NotPanics(t, func() { disabled.ObserveDate(core.DateStatusFailed) })
}

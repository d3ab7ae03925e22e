package trace

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
)

func TestInitTracing_HTTP(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	cfg := &Config{
		Enabled:     true,
		ServiceName: "facilities-test",
		Protocol:    "http",
		Insecure:    true,
		SamplerRate: 0.5,
		Headers:     map[string]string{"Authorization": "Bearer token"},
	}
	shutdown, err := InitTracing(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	require.NotNil(t, shutdown)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = shutdown(ctx)
}

func TestInitTracing_ResourceError(t *testing.T) {
	orig := newResource
	t.Cleanup(func() { newResource = orig })
	newResource = func(ctx context.Context, options ...resource.Option) (*resource.Resource, error) {
		return nil, errors.New("boom")
	}

	shutdown, err := InitTracing(context.Background(), &Config{}, zap.NewNop())
	assert.Nil(t, shutdown)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create resource")
}

func TestInitTracing_ExporterError(t *testing.T) {
	orig := newOTLPTraceHTTP
	t.Cleanup(func() { newOTLPTraceHTTP = orig })
	newOTLPTraceHTTP = func(ctx context.Context, options ...otlptracehttp.Option) (*otlptrace.Exporter, error) {
		return nil, errors.New("no exporter")
	}

	shutdown, err := InitTracing(context.Background(), &Config{Protocol: "http"}, zap.NewNop())
	assert.Nil(t, shutdown)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create exporter")
}

func TestClampRate(t *testing.T) {
	assert.Equal(t, 0.0, clampRate(-1.5))
	assert.Equal(t, 0.7, clampRate(0.7))
	assert.Equal(t, 1.0, clampRate(3))
}

func TestSpanScope(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	sc := Tracer("test").Start(context.Background(), "db.create").
		WithAttrs(attribute.String("entity", "region"))
	sc.Fail(nil)
	sc.Fail(errors.New("conflict"))
	sc.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "db.create", spans[0].Name())
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Contains(t, spans[0].Attributes(), attribute.String("entity", "region"))

	var nilScope *SpanScope
	nilScope.End()
	nilScope.Fail(errors.New("x"))
}

package tracing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

// setupTestProvider installs an in-memory exporter for the duration of a test.
func setupTestProvider(t *testing.T) (*tracetest.InMemoryExporter, *sdktrace.TracerProvider) {
	t.Helper()
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))

	prevTP := otel.GetTracerProvider()
	prevProp := otel.GetTextMapPropagator()
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	t.Cleanup(func() {
		otel.SetTracerProvider(prevTP)
		otel.SetTextMapPropagator(prevProp)
	})
	return exporter, tp
}

func statusHandler(code int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(code)
	})
}

func TestMiddleware_CreatesSpan(t *testing.T) {
	exporter, tp := setupTestProvider(t)

	req := httptest.NewRequest(http.MethodGet, "/api/news/3", nil)
	rr := httptest.NewRecorder()
	Middleware(statusHandler(http.StatusOK)).ServeHTTP(rr, req)
	require.NoError(t, tp.ForceFlush(context.Background()))

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)

	span := spans[0]
	assert.Equal(t, "GET /api/news/:id", span.Name)
	assert.Equal(t, trace.SpanKindServer, span.SpanKind)

	attrs := map[string]any{}
	for _, kv := range span.Attributes {
		attrs[string(kv.Key)] = kv.Value.AsInterface()
	}
	assert.Equal(t, "GET", attrs["http.method"])
	assert.Equal(t, "/api/news/3", attrs["http.path"])
	assert.Equal(t, int64(200), attrs["http.status_code"])
}

func TestMiddleware_AddsTraceIDToResponse(t *testing.T) {
	exporter, tp := setupTestProvider(t)

	rr := httptest.NewRecorder()
	Middleware(statusHandler(http.StatusOK)).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.NoError(t, tp.ForceFlush(context.Background()))

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, spans[0].SpanContext.TraceID().String(), rr.Header().Get(TraceIDHeader))
}

func TestMiddleware_PropagatesTraceContext(t *testing.T) {
	exporter, tp := setupTestProvider(t)

	const parentTraceID = "4bf92f3577b34da6a3ce929d0e0e4736"
	req := httptest.NewRequest(http.MethodGet, "/api/news", nil)
	req.Header.Set("traceparent", "00-"+parentTraceID+"-00f067aa0ba902b7-01")

	var innerTraceID string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		innerTraceID = trace.SpanContextFromContext(r.Context()).TraceID().String()
	})

	Middleware(inner).ServeHTTP(httptest.NewRecorder(), req)
	require.NoError(t, tp.ForceFlush(context.Background()))

	assert.Equal(t, parentTraceID, innerTraceID)
	require.Len(t, exporter.GetSpans(), 1)
	assert.Equal(t, parentTraceID, exporter.GetSpans()[0].SpanContext.TraceID().String())
}

func TestMiddleware_SpanStatusByResponseCode(t *testing.T) {
	tests := []struct {
		name       string
		code       int
		wantStatus codes.Code
	}{
		{name: "2xx", code: http.StatusOK, wantStatus: codes.Unset},
		{name: "4xx is not an error", code: http.StatusNotFound, wantStatus: codes.Unset},
		{name: "5xx is an error", code: http.StatusInternalServerError, wantStatus: codes.Error},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exporter, tp := setupTestProvider(t)

			Middleware(statusHandler(tt.code)).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))
			require.NoError(t, tp.ForceFlush(context.Background()))

			spans := exporter.GetSpans()
			require.Len(t, spans, 1)
			assert.Equal(t, tt.wantStatus, spans[0].Status.Code)
		})
	}
}

func TestInitTracerProvider(t *testing.T) {
	prevTP := otel.GetTracerProvider()
	prevProp := otel.GetTextMapPropagator()
	t.Cleanup(func() {
		otel.SetTracerProvider(prevTP)
		otel.SetTextMapPropagator(prevProp)
	})

	shutdown := InitTracerProvider("news-app", "test")

	_, ok := otel.GetTracerProvider().(*sdktrace.TracerProvider)
	assert.True(t, ok, "global provider should be the SDK provider")

	_, span := GetTracer().Start(context.Background(), "probe")
	assert.True(t, span.SpanContext().IsValid())
	span.End()

	assert.NoError(t, shutdown(context.Background()))
}

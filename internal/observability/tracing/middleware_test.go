package tracing

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// The package-level tracer binds the OTel global delegate to the first
// SetTracerProvider call, so all tests must share one provider/exporter
// pair; each test gets a Reset() exporter instead of a fresh one.
var (
	sharedExporter *tracetest.InMemoryExporter
	setupOnce      sync.Once
)

func setupExporter(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()
	setupOnce.Do(func() {
		sharedExporter = tracetest.NewInMemoryExporter()
		otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSyncer(sharedExporter)))
	})
	sharedExporter.Reset()
	return sharedExporter
}

func attrValue(s tracetest.SpanStub, key attribute.Key) (attribute.Value, bool) {
	for _, attr := range s.Attributes {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestMiddleware_SpanPerRequest(t *testing.T) {
	exporter := setupExporter(t)

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/articles", nil))

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("spans=%d, want 1", len(spans))
	}
	span := spans[0]
	if span.Name != "GET /articles" {
		t.Errorf("span name=%q", span.Name)
	}
	if v, ok := attrValue(span, "http.status_code"); !ok || v.AsInt64() != http.StatusOK {
		t.Errorf("http.status_code attr=%v ok=%v", v, ok)
	}
	if v, ok := attrValue(span, "http.path"); !ok || v.AsString() != "/articles" {
		t.Errorf("http.path attr=%v ok=%v", v, ok)
	}
}

func TestMiddleware_TraceIDHeader(t *testing.T) {
	setupExporter(t)

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/categories", nil))

	if rec.Header().Get("X-Trace-Id") == "" {
		t.Fatal("X-Trace-Id header missing")
	}
}

func TestMiddleware_PropagatesIncomingContext(t *testing.T) {
	exporter := setupExporter(t)

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/articles/go-generics", nil)
	req.Header.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("spans=%d, want 1", len(spans))
	}
	if got := spans[0].SpanContext.TraceID().String(); got != "4bf92f3577b34da6a3ce929d0e0e4736" {
		t.Errorf("trace ID=%q, want the caller's", got)
	}
}

func TestMiddleware_ServerErrorMarksSpan(t *testing.T) {
	exporter := setupExporter(t)

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/admin/articles/create", nil))

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("spans=%d, want 1", len(spans))
	}
	if v, ok := attrValue(spans[0], "error"); !ok || !v.AsBool() {
		t.Error("5xx span missing error attribute")
	}
}

func TestMiddleware_ClientErrorDoesNotMarkSpan(t *testing.T) {
	exporter := setupExporter(t)

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/articles/no-such-slug", nil))

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("spans=%d, want 1", len(spans))
	}
	if _, ok := attrValue(spans[0], "error"); ok {
		t.Error("4xx span should not carry the error attribute")
	}
}

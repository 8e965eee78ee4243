package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/schedule-api/internal/logging"
	"github.com/preston-bernstein/schedule-api/internal/metrics"
	"github.com/preston-bernstein/schedule-api/internal/testutil"
)

func TestLoggingMiddlewareSetsRequestIDAndRecordsMetrics(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	rec := metrics.NewRecorder()
	nextCalled := false

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		if got := RequestIDFromContext(r.Context()); got == "" {
			t.Fatalf("expected request id in context")
		}
		time.Sleep(time.Millisecond)
		w.WriteHeader(http.StatusTeapot)
	})

	handler := LoggingMiddleware(logger, rec, next)
	rr := testutil.Serve(handler, http.MethodGet, "/games/final", nil)

	if !nextCalled {
		t.Fatalf("expected next handler to be called")
	}
	testutil.AssertStatus(t, rr, http.StatusTeapot)
	if rec.LastRequestLatency() <= 0 {
		t.Fatalf("expected request latency recorded")
	}
	if got := rec.Snapshot("games", "list").Calls; got != 0 {
		t.Fatalf("expected no store metrics recorded, got %d", got)
	}
}

func TestLoggingMiddlewareGeneratesRequestIDWhenMissing(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := RequestIDFromContext(r.Context()); got == "" {
			t.Fatalf("expected generated request id")
		}
		w.WriteHeader(http.StatusOK)
	})

	handler := LoggingMiddleware(logger, nil, next)
	rr := testutil.Serve(handler, http.MethodGet, "/games?foo=bar", nil)

	testutil.AssertStatus(t, rr, http.StatusOK)
	if got := rr.Header().Get(RequestIDHeader); got == "" {
		t.Fatalf("expected X-Request-ID header to be set")
	}
}

func TestLoggingMiddlewareEchoesValidRequestID(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := RequestIDFromContext(r.Context()); got != "abc-123" {
			t.Fatalf("expected incoming request id, got %s", got)
		}
	})

	req := httptest.NewRequest(http.MethodGet, "/teams", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rr := testutil.ServeRequest(LoggingMiddleware(logger, nil, next), req)

	if got := rr.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Fatalf("expected echoed request id, got %s", got)
	}
}

func TestLoggingMiddlewareStoresRequestLogger(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logging.FromContext(r.Context(), nil).Info("inside handler")
	})

	req := httptest.NewRequest(http.MethodGet, "/teams", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	req.Header.Set("X-Forwarded-For", "198.51.100.1")
	testutil.ServeRequest(LoggingMiddleware(logger, nil, next), req)

	out := buf.String()
	if !strings.Contains(out, "inside handler") || !strings.Contains(out, "request_id=req-42") {
		t.Fatalf("expected handler log with request id, got %s", out)
	}
	if !strings.Contains(out, "client_ip=198.51.100.1") {
		t.Fatalf("expected forwarded client ip in logs, got %s", out)
	}
	if !strings.Contains(out, "request complete") {
		t.Fatalf("expected completion log, got %s", out)
	}
}

func TestLoggingMiddlewareUsesChiRoutePattern(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	r := chi.NewRouter()
	r.Use(Logging(logger, metrics.NewRecorder()))
	r.Get("/games/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rr := testutil.Serve(r, http.MethodGet, "/games/17", nil)

	testutil.AssertStatus(t, rr, http.StatusOK)
	if !strings.Contains(buf.String(), "route=/games/{id}") {
		t.Fatalf("expected route pattern in logs, got %s", buf.String())
	}
}

func TestLoggingMiddlewareDefaultsLogger(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	rr := testutil.Serve(LoggingMiddleware(nil, nil, next), http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
}

func TestResponseWriterDefaultsStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}
	if w.status != 0 {
		t.Fatalf("expected zero status before write, got %d", w.status)
	}
	w.WriteHeader(http.StatusAccepted)
	if w.status != http.StatusAccepted {
		t.Fatalf("expected status set to 202, got %d", w.status)
	}
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "/games", want: "/games"},
		{in: "/games/final", want: "/games/final"},
		{in: "/games/123", want: "/games/{id}"},
		{in: "/teams/4", want: "/teams/{id}"},
		{in: "/teams/abc", want: "/teams/abc"},
		{in: "/health", want: "/health"},
	}

	for _, tt := range tests {
		if got := normalizePath(tt.in); got != tt.want {
			t.Fatalf("normalizePath(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestRequestIDHelpers(t *testing.T) {
	ctx := context.Background()
	if got := RequestIDFromContext(ctx); got != "" {
		t.Fatalf("expected empty id, got %s", got)
	}

	ctx = withRequestID(ctx, "abc123")
	if got := RequestIDFromContext(ctx); got != "abc123" {
		t.Fatalf("expected id from context, got %s", got)
	}

	if got := RequestIDFromContext(nil); got != "" {
		t.Fatalf("expected empty id for nil context, got %s", got)
	}
}

func TestCORSAllowsConfiguredOrigin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := CORS([]string{"https://schedule.example"})(next)

	req := httptest.NewRequest(http.MethodOptions, "/games/1", nil)
	req.Header.Set("Origin", "https://schedule.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
	rr := testutil.ServeRequest(handler, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "https://schedule.example" {
		t.Fatalf("expected allowed origin header, got %q", got)
	}
	if got := rr.Header().Get("Access-Control-Allow-Methods"); !strings.Contains(got, http.MethodPatch) {
		t.Fatalf("expected PATCH in allowed methods, got %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/games", nil)
	req.Header.Set("Origin", "https://other.example")
	rr = testutil.ServeRequest(handler, req)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("expected no allow-origin for unknown origin, got %q", got)
	}
}

func BenchmarkLoggingMiddleware(b *testing.B) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	rec := metrics.NewRecorder()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := LoggingMiddleware(logger, rec, next)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/games", nil)
		handler.ServeHTTP(rr, req)
	}
}

func TestCORSEmptyOriginListAllowsNone(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := CORS(nil)(next)

	req := httptest.NewRequest(http.MethodGet, "/games", nil)
	req.Header.Set("Origin", "https://schedule.example")
	rr := testutil.ServeRequest(handler, req)

	testutil.AssertStatus(t, rr, http.StatusOK)
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("expected no allow-origin with an empty list, got %q", got)
	}
}

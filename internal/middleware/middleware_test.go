package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pets-api/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestID_GeneratesAndPropagates(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = chimw.GetReqID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/pets", nil))

	if _, err := uuid.Parse(seen); err != nil {
		t.Fatalf("expected generated uuid in context, got %q", seen)
	}
	if got := rec.Header().Get(chimw.RequestIDHeader); got != seen {
		t.Fatalf("expected header %q, got %q", seen, got)
	}

	req := httptest.NewRequest("GET", "/pets", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if seen != "abc-123" || rec.Header().Get(chimw.RequestIDHeader) != "abc-123" {
		t.Fatalf("client id must be kept and echoed, got ctx=%q header=%q", seen, rec.Header().Get(chimw.RequestIDHeader))
	}

	req = httptest.NewRequest("GET", "/pets", nil)
	req.Header.Set("X-Request-ID", strings.Repeat("x", maxRequestIDLen+1))
	h.ServeHTTP(httptest.NewRecorder(), req)
	if _, err := uuid.Parse(seen); err != nil {
		t.Fatalf("oversized client id must be replaced, got %q", seen)
	}
}

func TestRecover_WritesJSON500AndLogs(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := logger.FromZap(zap.New(core))

	h := RequestID(Recover(log)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("POST", "/pets", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != `{"detail":"A server error occurred."}` {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}

	entries := logs.FilterMessage("panic recovered").All()
	if len(entries) != 1 {
		t.Fatalf("expected one panic log, got %d", len(entries))
	}
	if entries[0].ContextMap()["panic"] != "boom" {
		t.Fatalf("unexpected fields %v", entries[0].ContextMap())
	}
	if entries[0].ContextMap()["request_id"] == "" {
		t.Fatalf("panic log must carry the request id")
	}
}

func TestAccessLog_RecordsStatus(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := logger.FromZap(zap.New(core))

	h := AccessLog(log)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/health", nil))

	entries := logs.FilterMessage("request").All()
	if len(entries) != 1 {
		t.Fatalf("expected one access log, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["status"] != int64(http.StatusTeapot) || fields["path"] != "/health" || fields["component"] != "http" {
		t.Fatalf("unexpected fields %v", fields)
	}
}

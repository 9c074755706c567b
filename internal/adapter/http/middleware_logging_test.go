package adapthttp

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"fitness/internal/metrics"
)

func TestLoggingMiddleware(t *testing.T) {
	logger, hook := test.NewNullLogger()
	col := metrics.NewCollector("fitness", prometheus.NewRegistry())
	s := (&Server{log: logger}).WithMetrics(col, nil)

	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("OK"))
	})
	handler := s.loggingMiddleware(nextHandler)

	req := httptest.NewRequest(http.MethodGet, "/test-path", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusTeapot {
		t.Errorf("Expected status %d, got %d", http.StatusTeapot, w.Code)
	}

	entry := hook.LastEntry()
	if entry == nil {
		t.Fatal("expected a log entry")
	}
	if entry.Level != logrus.InfoLevel {
		t.Errorf("expected info level, got %v", entry.Level)
	}
	if entry.Data["method"] != http.MethodGet || entry.Data["path"] != "/test-path" || entry.Data["status"] != http.StatusTeapot {
		t.Errorf("log entry missing expected fields. Got: %v", entry.Data)
	}

	got := testutil.ToFloat64(col.APIRequestsTotal.WithLabelValues("/test-path", http.MethodGet, "418"))
	if got != 1 {
		t.Errorf("expected request counter 1, got %v", got)
	}
}

func TestLoggingMiddleware_ServerErrorWarns(t *testing.T) {
	logger, hook := test.NewNullLogger()
	s := &Server{log: logger}

	handler := s.loggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/tdee", nil))

	if entry := hook.LastEntry(); entry == nil || entry.Level != logrus.WarnLevel {
		t.Fatalf("expected a warn entry, got %v", entry)
	}
}

package server

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/agbru/fibdrv/internal/logging"
)

func TestNewMetrics(t *testing.T) {
	t.Parallel()
	m := NewMetrics()
	if m.handler == nil {
		t.Error("Metrics.handler should be initialized")
	}
	if m.Registry() == nil {
		t.Error("Metrics.Registry() should not be nil")
	}
}

func TestMetrics_ActiveRequests(t *testing.T) {
	t.Parallel()
	m := NewMetrics()

	m.IncrementActiveRequests()
	m.IncrementActiveRequests()
	m.DecrementActiveRequests()

	if got := testutil.ToFloat64(m.activeRequests); got != 1 {
		t.Errorf("active requests = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.requestsTotal); got != 2 {
		t.Errorf("requests total = %v, want 2", got)
	}
}

func TestMetrics_DeviceObserver(t *testing.T) {
	t.Parallel()
	m := NewMetrics()

	m.OnOpen("fib")
	m.OnBusy("fib")
	m.OnBusy("fib")
	m.OnRead("fib", 10, time.Millisecond, nil)
	m.OnRead("fib", 11, time.Millisecond, errors.New("overflow"))
	m.OnSeek("fib", 3)
	m.OnWrite("fib", 1)
	m.OnRelease("fib")

	if got := testutil.ToFloat64(m.deviceOpens); got != 1 {
		t.Errorf("opens = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.deviceBusy); got != 2 {
		t.Errorf("busy = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.deviceReads.WithLabelValues("ok")); got != 1 {
		t.Errorf("ok reads = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.deviceReads.WithLabelValues("error")); got != 1 {
		t.Errorf("failed reads = %v, want 1", got)
	}
	if got := testutil.CollectAndCount(m.computeDuration); got != 1 {
		t.Errorf("compute duration series = %d, want 1", got)
	}
}

func TestMetrics_WritePrometheus(t *testing.T) {
	t.Parallel()
	m := NewMetrics()
	m.IncrementActiveRequests()
	defer m.DecrementActiveRequests()

	req := httptest.NewRequest("GET", "/metrics", http.NoBody)
	rec := httptest.NewRecorder()
	m.WritePrometheus(rec, req)
	body := rec.Body.String()

	for _, name := range []string{
		"fibdrv_active_requests",
		"fibdrv_requests_total",
		"fibdrv_device_opens_total",
		"fibdrv_device_busy_total",
		`fibdrv_device_reads_total{result="ok"}`,
		"fibdrv_compute_duration_seconds",
		"go_goroutines",
	} {
		if !strings.Contains(body, name) {
			t.Errorf("metrics output should contain %s", name)
		}
	}
}

func TestServer_metricsMiddleware(t *testing.T) {
	t.Parallel()
	s := &Server{metrics: NewMetrics()}

	nextCalled := false
	handler := s.metricsMiddleware(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		if got := testutil.ToFloat64(s.metrics.activeRequests); got != 1 {
			t.Errorf("active requests inside handler = %v, want 1", got)
		}
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest("GET", "/test", http.NoBody))

	if !nextCalled {
		t.Fatal("next handler was not called")
	}
	if rec.Code != http.StatusTeapot {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusTeapot)
	}
	if got := testutil.ToFloat64(s.metrics.activeRequests); got != 0 {
		t.Errorf("active requests after handler = %v, want 0", got)
	}
	if got := testutil.ToFloat64(s.metrics.responsesTotal.WithLabelValues("418")); got != 1 {
		t.Errorf("418 responses = %v, want 1", got)
	}
}

func TestServer_handleMetrics(t *testing.T) {
	t.Parallel()
	tests := []struct {
		method string
		want   int
	}{
		{"GET", http.StatusOK},
		{"POST", http.StatusMethodNotAllowed},
		{"PUT", http.StatusMethodNotAllowed},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.method, func(t *testing.T) {
			t.Parallel()
			s := &Server{metrics: NewMetrics(), logger: logging.Nop()}
			rec := httptest.NewRecorder()
			s.handleMetrics(rec, httptest.NewRequest(tt.method, "/metrics", http.NoBody))
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
			if tt.want == http.StatusOK && !strings.Contains(rec.Body.String(), "fibdrv_") {
				t.Error("response should contain fibdrv metrics")
			}
		})
	}
}

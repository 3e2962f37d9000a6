package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridwanfathin/invoice-builder-service/internal/config"
	"github.com/ridwanfathin/invoice-builder-service/internal/metrics"
	"github.com/ridwanfathin/invoice-builder-service/internal/task"
)

func newTestServer() *Server {
	gin.SetMode(gin.TestMode)
	registry := prometheus.NewRegistry()
	return NewServer(&config.Config{Port: 0}, Options{
		Registry: registry,
		Metrics:  metrics.New(registry, metrics.Config{Environment: "test"}),
		Pool:     task.NewPool(1),
	})
}

func TestHealthAndMetrics(t *testing.T) {
	s := newTestServer()

	w := httptest.NewRecorder()
	s.GetRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))

	w = httptest.NewRecorder()
	s.GetRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "invoice_http_request_duration_seconds")
}

func TestShutdownRunsClosersInReverse(t *testing.T) {
	s := newTestServer()
	var order []string
	s.OnShutdown(func() { order = append(order, "db") })
	s.OnShutdown(func() { order = append(order, "redis") })

	assert.NoError(t, s.Shutdown())
	assert.Equal(t, []string{"redis", "db"}, order)
}

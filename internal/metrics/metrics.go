// Package metrics exposes Prometheus instrumentation for the invoice builder.
package metrics

import (
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Output modes counted by DocumentRendered
const (
	ModeDownload  = "download"
	ModePrint     = "print"
	ModePDFExport = "pdf_export"
	ModeArchive   = "archive"
)

// Save outcomes
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Config holds constant labels
type Config struct {
	ServiceName string
	Environment string
}

// Metrics groups the service's collectors. A nil *Metrics records nothing.
type Metrics struct {
	documentsRendered *prometheus.CounterVec
	invoicesSaved     *prometheus.CounterVec
	requestDuration   *prometheus.HistogramVec
}

// New creates the collectors and registers them with registerer
func New(registerer prometheus.Registerer, cfg Config) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	serviceName := strings.TrimSpace(cfg.ServiceName)
	if serviceName == "" {
		serviceName = "invoice-builder"
	}
	environment := strings.TrimSpace(cfg.Environment)
	if environment == "" {
		environment = "unknown"
	}
	constLabels := prometheus.Labels{
		"service": serviceName,
		"env":     environment,
	}

	m := &Metrics{
		documentsRendered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "invoice_documents_rendered_total",
			Help:        "Invoice documents rendered by output mode.",
			ConstLabels: constLabels,
		}, []string{"mode"}),
		invoicesSaved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "invoice_saves_total",
			Help:        "Invoice save attempts by outcome.",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "invoice_http_request_duration_seconds",
			Help:        "HTTP request latency by route and status.",
			Buckets:     []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
	}

	registerer.MustRegister(m.documentsRendered, m.invoicesSaved, m.requestDuration)
	return m
}

// DocumentRendered counts one rendered document for mode
func (m *Metrics) DocumentRendered(mode string) {
	if m == nil {
		return
	}
	m.documentsRendered.WithLabelValues(mode).Inc()
}

// InvoiceSaved counts a save attempt by its outcome
func (m *Metrics) InvoiceSaved(err error) {
	if m == nil {
		return
	}
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeFailure
	}
	m.invoicesSaved.WithLabelValues(outcome).Inc()
}

// ObserveRequest records one HTTP request's latency
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.requestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

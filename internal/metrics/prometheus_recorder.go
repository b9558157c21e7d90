package metrics

import (
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	registry        *prom.Registry
	renderDuration  *prom.HistogramVec
	renderOutcomes  *prom.CounterVec
	navLinkFailures prom.Counter
}

// NewPrometheusRecorder constructs and registers the composition metrics on
// reg (a fresh registry when nil).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{registry: reg}
	pr.renderDuration = prom.NewHistogramVec(prom.HistogramOpts{
		Namespace: "pagecompose",
		Name:      "render_duration_seconds",
		Help:      "Duration of individual page renders",
		Buckets:   prom.DefBuckets,
	}, []string{"page"})
	pr.renderOutcomes = prom.NewCounterVec(prom.CounterOpts{
		Namespace: "pagecompose",
		Name:      "render_outcomes_total",
		Help:      "Render outcomes by final status",
	}, []string{"outcome"})
	pr.navLinkFailures = prom.NewCounter(prom.CounterOpts{
		Namespace: "pagecompose",
		Name:      "nav_link_failures_total",
		Help:      "Navigation entries dropped due to resolution failures",
	})
	reg.MustRegister(pr.renderDuration, pr.renderOutcomes, pr.navLinkFailures)
	return pr
}

// Handler returns the HTTP handler exposing the registry.
func (pr *PrometheusRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(pr.registry, promhttp.HandlerOpts{})
}

func (pr *PrometheusRecorder) ObserveRenderDuration(pageID string, d time.Duration) {
	pr.renderDuration.WithLabelValues(pageID).Observe(d.Seconds())
}

func (pr *PrometheusRecorder) IncRenderOutcome(outcome string) {
	pr.renderOutcomes.WithLabelValues(outcome).Inc()
}

func (pr *PrometheusRecorder) IncNavLinkFailures(n int) {
	pr.navLinkFailures.Add(float64(n))
}

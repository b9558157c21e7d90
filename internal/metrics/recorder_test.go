package metrics

import (
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNoopRecorderIsSafe(t *testing.T) {
	var r Recorder = NoopRecorder{}
	r.ObserveRenderDuration("index", time.Millisecond)
	r.IncRenderOutcome("success")
	r.IncNavLinkFailures(2)
}

func TestPrometheusRecorderCounts(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)

	pr.IncRenderOutcome("success")
	pr.IncRenderOutcome("success")
	pr.IncRenderOutcome("failed")
	pr.IncNavLinkFailures(3)
	pr.ObserveRenderDuration("index", 25*time.Millisecond)

	if got := testutil.ToFloat64(pr.renderOutcomes.WithLabelValues("success")); got != 2 {
		t.Errorf("expected 2 successes, got %v", got)
	}
	if got := testutil.ToFloat64(pr.renderOutcomes.WithLabelValues("failed")); got != 1 {
		t.Errorf("expected 1 failure, got %v", got)
	}
	if got := testutil.ToFloat64(pr.navLinkFailures); got != 3 {
		t.Errorf("expected 3 nav failures, got %v", got)
	}
}

func TestPrometheusRecorderHandler(t *testing.T) {
	pr := NewPrometheusRecorder(nil)
	if pr.Handler() == nil {
		t.Fatal("expected a metrics handler")
	}
}

// Package metrics defines observability hooks for composition metrics.
package metrics

import "time"

// Recorder defines observability hooks for render metrics. Implementations
// may forward to Prometheus or drop everything (NoopRecorder), allowing
// optional injection.
type Recorder interface {
	ObserveRenderDuration(pageID string, d time.Duration)
	IncRenderOutcome(outcome string) // outcome: success|failed
	IncNavLinkFailures(n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics are
// not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveRenderDuration(string, time.Duration) {}
func (NoopRecorder) IncRenderOutcome(string)                     {}
func (NoopRecorder) IncNavLinkFailures(int)                      {}

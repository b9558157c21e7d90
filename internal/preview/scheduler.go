package preview

import (
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// scheduler wraps gocron for the periodic full rebuild. The watcher covers
// edits; the schedule covers drift the watcher cannot see (git pulls into
// watched-but-unchanged trees, last-updated metadata going stale).
type scheduler struct {
	sched gocron.Scheduler
}

func newScheduler(interval time.Duration, rebuild func()) (*scheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}
	_, err = s.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			slog.Debug("Scheduled full rebuild")
			rebuild()
		}),
	)
	if err != nil {
		_ = s.Shutdown()
		return nil, err
	}
	return &scheduler{sched: s}, nil
}

func (s *scheduler) Start() { s.sched.Start() }

func (s *scheduler) Stop() error { return s.sched.Shutdown() }

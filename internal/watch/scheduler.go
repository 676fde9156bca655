package watch

import (
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"

	ferrors "git.home.luguber.info/inful/moduledoc/internal/foundation/errors"
)

// Scheduler wraps a gocron scheduler firing a trigger at a fixed interval.
type Scheduler struct {
	scheduler gocron.Scheduler
}

// NewScheduler schedules trigger every interval. The scheduler is idle until
// Start.
func NewScheduler(interval time.Duration, trigger func()) (*Scheduler, error) {
	if interval <= 0 {
		return nil, ferrors.ValidationError("schedule interval must be positive").
			WithContext("interval", interval.String()).
			Build()
	}
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryInternal, "failed to create scheduler").Build()
	}
	if _, err := s.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(trigger),
		gocron.WithName("periodic-rerun"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	); err != nil {
		_ = s.Shutdown()
		return nil, ferrors.WrapError(err, ferrors.CategoryInternal, "failed to create periodic job").Build()
	}
	return &Scheduler{scheduler: s}, nil
}

// Start begins the scheduler.
func (s *Scheduler) Start() {
	slog.Info("Starting scheduler")
	s.scheduler.Start()
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() error {
	slog.Info("Stopping scheduler")
	return s.scheduler.Shutdown()
}

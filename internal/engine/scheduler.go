package engine

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultSweepSchedule runs the price sweep once a day at 09:00 UTC.
const DefaultSweepSchedule = "0 9 * * *"

// Scheduler runs the periodic price sweep.
type Scheduler struct {
	cron   *cron.Cron
	engine *Engine
	log    *slog.Logger
}

// NewScheduler creates a Scheduler that sweeps on schedule, a standard
// five-field cron expression or a descriptor such as "@every 6h". An empty
// schedule selects DefaultSweepSchedule.
func NewScheduler(eng *Engine, schedule string, log *slog.Logger) (*Scheduler, error) {
	if schedule == "" {
		schedule = DefaultSweepSchedule
	}
	if log == nil {
		log = slog.Default()
	}

	c := cron.New(cron.WithLocation(time.UTC))
	s := &Scheduler{
		cron:   c,
		engine: eng,
		log:    log,
	}

	if _, err := c.AddFunc(schedule, s.runSweep); err != nil {
		return nil, err
	}

	return s, nil
}

// Start begins running scheduled tasks.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started")
	s.cron.Start()
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

func (s *Scheduler) runSweep() {
	ctx := context.Background()
	s.log.Info("scheduled sweep starting")
	res, err := s.engine.RunSweep(ctx)
	switch {
	case errors.Is(err, ErrSweepInProgress):
		s.log.Info("scheduled sweep skipped, another sweep is running")
	case err != nil:
		s.log.Error("scheduled sweep failed", "error", err)
	default:
		s.log.Info("scheduled sweep finished", "updated", res.Updated, "failed", res.Failed)
	}
}

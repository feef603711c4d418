// Package scheduler runs the periodic catalog sync.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"gamesrank/backend/internal/catalog"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// syncTimeout bounds a single scheduled run.
const syncTimeout = 5 * time.Minute

// Syncer is the part of catalog.Service the scheduler needs.
type Syncer interface {
	Sync(ctx context.Context) (catalog.SyncResult, error)
}

// Scheduler wraps a cron runner.
type Scheduler struct {
	cron *cron.Cron
	log  *zap.Logger
}

// New creates a scheduler. Overlapping runs of the same job are skipped.
func New(log *zap.Logger) *Scheduler {
	log = log.Named("scheduler")
	logger := cron.PrintfLogger(zap.NewStdLog(log))
	return &Scheduler{
		cron: cron.New(cron.WithLogger(logger), cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger))),
		log:  log,
	}
}

// ScheduleSync registers a catalog sync on the standard five-field cron spec.
// after, when set, receives the outcome of every run, failed ones included.
func (s *Scheduler) ScheduleSync(spec string, syncer Syncer, after func(catalog.SyncResult, error)) error {
	_, err := s.cron.AddFunc(spec, func() { s.runSync(syncer, after) })
	if err != nil {
		return fmt.Errorf("invalid sync schedule %q: %w", spec, err)
	}
	s.log.Info("Catalog sync scheduled", zap.String("schedule", spec))
	return nil
}

func (s *Scheduler) runSync(syncer Syncer, after func(catalog.SyncResult, error)) {
	ctx, cancel := context.WithTimeout(context.Background(), syncTimeout)
	defer cancel()

	start := time.Now()
	result, err := syncer.Sync(ctx)
	if err != nil {
		s.log.Error("Scheduled catalog sync failed", zap.Error(err), zap.Duration("took", time.Since(start)))
	} else {
		s.log.Info("Scheduled catalog sync finished",
			zap.Int("inserted", result.Inserted),
			zap.Int("updated", result.Updated),
			zap.Duration("took", time.Since(start)))
	}
	if after != nil {
		after(result, err)
	}
}

// Jobs returns the number of registered jobs.
func (s *Scheduler) Jobs() int {
	return len(s.cron.Entries())
}

// Start runs the scheduler in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("Scheduler started")
}

// Stop stops the scheduler and waits for running jobs.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info("Scheduler stopped")
}

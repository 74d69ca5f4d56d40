package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const (
	jobTimeout         = 2 * time.Minute
	resetCodeSweepSpec = "@hourly"
)

type Reconciler interface {
	Reconcile(ctx context.Context) (int, error)
}

type ResetCodeCleaner interface {
	CleanupResetCodes(ctx context.Context) (int64, error)
}

// Scheduler runs background jobs on cron specs. A panicking job is recovered and a job still
// running when its next tick fires is skipped.
type Scheduler struct {
	cron *cron.Cron
	log  logrus.FieldLogger
}

func NewScheduler(log logrus.FieldLogger) *Scheduler {
	log = log.WithField("component", "jobs")
	cl := cron.PrintfLogger(log)
	return &Scheduler{
		cron: cron.New(
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
			cron.WithLogger(cl),
		),
		log: log,
	}
}

func (s *Scheduler) Add(name, spec string, job func(ctx context.Context) error) error {
	if _, err := s.cron.AddFunc(spec, s.wrap(name, job)); err != nil {
		return fmt.Errorf("schedule %s (%q): %w", name, spec, err)
	}
	s.log.WithFields(logrus.Fields{"job": name, "spec": spec}).Info("job scheduled")
	return nil
}

func (s *Scheduler) wrap(name string, job func(ctx context.Context) error) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()
		start := time.Now()
		entry := s.log.WithField("job", name)
		if err := job(ctx); err != nil {
			entry.WithError(err).Error("job failed")
			return
		}
		entry.WithField("took", time.Since(start).String()).Debug("job finished")
	}
}

func (s *Scheduler) Len() int {
	return len(s.cron.Entries())
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts scheduling and waits for running jobs until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		s.log.Warn("jobs still running at shutdown")
	}
}

// Register schedules Opay reconciliation on reconcileSpec and the hourly reset-code sweep.
func Register(s *Scheduler, reconcileSpec string, opay Reconciler, users ResetCodeCleaner) error {
	err := s.Add("opay-reconcile", reconcileSpec, func(ctx context.Context) error {
		applied, err := opay.Reconcile(ctx)
		if applied > 0 {
			s.log.WithField("applied", applied).Info("opay payments reconciled")
		}
		return err
	})
	if err != nil {
		return err
	}
	return s.Add("reset-code-sweep", resetCodeSweepSpec, func(ctx context.Context) error {
		cleared, err := users.CleanupResetCodes(ctx)
		if cleared > 0 {
			s.log.WithField("cleared", cleared).Debug("expired reset codes cleared")
		}
		return err
	})
}

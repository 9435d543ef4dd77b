// Package jobs runs the daemon's background tasks on a gocron scheduler.
package jobs

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/sirupsen/logrus"
)

// Scheduler owns the daemon's recurring and one-shot jobs.
type Scheduler struct {
	scheduler gocron.Scheduler
	log       logrus.FieldLogger
}

// New creates a stopped Scheduler.
func New(log logrus.FieldLogger) (*Scheduler, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	s, err := gocron.NewScheduler(gocron.WithLocation(time.Local))
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}
	return &Scheduler{scheduler: s, log: log}, nil
}

// Every runs fn every interval, starting immediately. A run that overlaps
// the previous one is skipped.
func (s *Scheduler) Every(name string, interval time.Duration, fn func()) error {
	_, err := s.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(fn),
		gocron.WithName(name),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule %s: %w", name, err)
	}
	s.log.WithFields(logrus.Fields{"job": name, "interval": interval}).Debug("scheduled recurring job")
	return nil
}

// After runs fn once, delay from now.
func (s *Scheduler) After(name string, delay time.Duration, fn func()) error {
	_, err := s.scheduler.NewJob(
		gocron.OneTimeJob(gocron.OneTimeJobStartDateTime(time.Now().Add(delay))),
		gocron.NewTask(fn),
		gocron.WithName(name),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule %s: %w", name, err)
	}
	s.log.WithFields(logrus.Fields{"job": name, "delay": delay}).Debug("scheduled one-time job")
	return nil
}

// Start begins running jobs.
func (s *Scheduler) Start() {
	s.scheduler.Start()
}

// Shutdown stops the scheduler and waits for running jobs.
func (s *Scheduler) Shutdown() error {
	return s.scheduler.Shutdown()
}

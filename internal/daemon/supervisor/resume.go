package supervisor

import (
	"context"
	"fmt"
)

// AutoResume restores the previous session from LastState. Only the first
// call does anything. Failures are logged and notified; the returned error
// is informational.
func (s *Supervisor) AutoResume(ctx context.Context) error {
	var err error
	s.resumeOnce.Do(func() {
		err = s.autoResume(ctx)
		if err != nil {
			s.log.WithError(err).Warn("auto-resume failed")
			s.notifier.Notify("ech-client", "Could not resume proxy: "+err.Error())
		}
	})
	return err
}

func (s *Supervisor) autoResume(ctx context.Context) error {
	ls := s.store.GetLastState()
	if !ls.WasRunning && !ls.SystemProxyEnabled {
		s.log.Debug("auto-resume: nothing to restore")
		return nil
	}

	if pids := s.externalWorkers(0); len(pids) > 0 {
		s.log.WithField("pids", pids).Info("auto-resume: worker already running, skipping")
		return nil
	}

	if ls.WasRunning {
		if _, err := s.Start(ctx, s.store.GetProxyConfig()); err != nil {
			return fmt.Errorf("start worker: %w", err)
		}
		s.log.Info("auto-resume: worker restarted")
		if !ls.SystemProxyEnabled {
			return nil
		}
	}

	if err := s.EnableSystemProxy(); err != nil {
		return fmt.Errorf("enable system proxy: %w", err)
	}
	s.log.Info("auto-resume: system proxy restored")
	return nil
}

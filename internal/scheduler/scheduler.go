// Package scheduler drives the periodic activation pass. The interval is
// configuration; the activation itself is idempotent, so the cadence only
// affects how quickly a scheduled advertisement turns active, never
// correctness.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"pulse-ads/internal/core/port"
)

// Scheduler invokes the scheduling tick on a fixed interval.
type Scheduler struct {
	svc      port.AdUseCase
	interval time.Duration
	logger   *slog.Logger
}

// New returns a scheduler ticking at the given interval.
func New(svc port.AdUseCase, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{svc: svc, interval: interval, logger: logger}
}

// Run blocks until ctx is cancelled, running one tick per interval. Tick
// failures are logged and the loop keeps going.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started", slog.Duration("interval", s.interval))
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case now := <-ticker.C:
			ads, err := s.svc.RunSchedulingTick(ctx, now)
			if err != nil {
				s.logger.Error("scheduling tick failed", slog.Any("error", err))
				continue
			}
			if len(ads) > 0 {
				s.logger.Info("scheduling tick", slog.Int("selected", len(ads)))
			}
		}
	}
}

package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/quantwatch/quantwatch/internal/log"
)

// Runner is one monitoring pass.
type Runner interface {
	Run(ctx context.Context) RunSummary
}

// Schedule fires a Runner once per day at a fixed wall-clock time.
type Schedule struct {
	runner Runner
	logger *log.Logger
	now    func() time.Time
}

// NewSchedule creates a Schedule.
func NewSchedule(runner Runner, logger *log.Logger) *Schedule {
	return &Schedule{runner: runner, logger: logger, now: time.Now}
}

// Run blocks, firing the runner daily at the given HH:MM local time,
// until ctx is cancelled. With runOnStart a pass also fires
// immediately.
func (s *Schedule) Run(ctx context.Context, at string, runOnStart bool) error {
	hour, minute, err := parseClock(at)
	if err != nil {
		return err
	}

	if runOnStart {
		s.runner.Run(ctx)
	}

	for {
		next := nextRunAfter(s.now(), hour, minute)
		s.logger.InfoContext(ctx, "next scheduled run", "at", next.Format(time.RFC3339))

		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			s.logger.InfoContext(ctx, "scheduler stopped")
			return nil
		case <-timer.C:
			s.runner.Run(ctx)
		}
	}
}

// parseClock parses an "HH:MM" wall-clock time.
func parseClock(at string) (int, int, error) {
	parts := strings.Split(at, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid schedule time %q: want HH:MM", at)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid schedule time %q: bad hour", at)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid schedule time %q: bad minute", at)
	}
	return hour, minute, nil
}

// nextRunAfter returns the next occurrence of hour:minute strictly
// after now.
func nextRunAfter(now time.Time, hour, minute int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

package service

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantwatch/quantwatch/internal/config"
	"github.com/quantwatch/quantwatch/internal/log"
)

type countingRunner struct {
	calls int
}

func (r *countingRunner) Run(_ context.Context) RunSummary {
	r.calls++
	return RunSummary{}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in     string
		hour   int
		minute int
		ok     bool
	}{
		{"08:00", 8, 0, true},
		{"23:59", 23, 59, true},
		{"0:5", 0, 5, true},
		{"24:00", 0, 0, false},
		{"12:60", 0, 0, false},
		{"noon", 0, 0, false},
		{"12", 0, 0, false},
		{"", 0, 0, false},
	}
	for _, tt := range tests {
		hour, minute, err := parseClock(tt.in)
		if !tt.ok {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.hour, hour, tt.in)
		assert.Equal(t, tt.minute, minute, tt.in)
	}
}

func TestNextRunAfter(t *testing.T) {
	now := time.Date(2026, time.March, 10, 9, 30, 0, 0, time.UTC)

	later := nextRunAfter(now, 18, 0)
	assert.Equal(t, time.Date(2026, time.March, 10, 18, 0, 0, 0, time.UTC), later)

	tomorrow := nextRunAfter(now, 8, 0)
	assert.Equal(t, time.Date(2026, time.March, 11, 8, 0, 0, 0, time.UTC), tomorrow)

	// An exact match rolls over: runs fire strictly after now.
	exact := nextRunAfter(now, 9, 30)
	assert.Equal(t, time.Date(2026, time.March, 11, 9, 30, 0, 0, time.UTC), exact)
}

func TestScheduleRunOnStartAndCancel(t *testing.T) {
	runner := &countingRunner{}
	logger := log.NewLoggerWithWriter(io.Discard, config.LogFormatJSON, "ERROR")
	sched := NewSchedule(runner, logger)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := sched.Run(ctx, "23:59", true)
	require.NoError(t, err)
	assert.Equal(t, 1, runner.calls)
}

func TestScheduleRejectsBadClock(t *testing.T) {
	runner := &countingRunner{}
	logger := log.NewLoggerWithWriter(io.Discard, config.LogFormatJSON, "ERROR")
	sched := NewSchedule(runner, logger)

	err := sched.Run(context.Background(), "25:00", false)
	require.Error(t, err)
	assert.Zero(t, runner.calls)
}

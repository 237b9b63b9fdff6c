package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingRefresher struct {
	calls atomic.Int32
	err   error
}

func (r *countingRefresher) Refresh(ctx context.Context) error {
	r.calls.Add(1)
	return r.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestScheduler_RunsImmediatelyAndOnTick(t *testing.T) {
	refresher := &countingRefresher{}
	s := NewScheduler(refresher, 20*time.Millisecond, testLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 70*time.Millisecond)
	defer cancel()

	err := s.Start(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// One immediate run plus at least two ticks.
	assert.GreaterOrEqual(t, refresher.calls.Load(), int32(3))
}

func TestScheduler_KeepsGoingAfterRefreshError(t *testing.T) {
	refresher := &countingRefresher{err: errors.New("feeds down")}
	s := NewScheduler(refresher, 15*time.Millisecond, testLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_ = s.Start(ctx)

	assert.GreaterOrEqual(t, refresher.calls.Load(), int32(2))
}

// Package settlement injects rail latency in place of real interbank settlement.
package settlement

import (
	"context"
	"math/rand"
	"time"

	"github.com/sbilibin2017/gw-funds-transfer/internal/logger"
	"github.com/sbilibin2017/gw-funds-transfer/internal/models"
)

// Default delay range, matching the gateway's simulation settings.
const (
	DefaultMinDelay = 100 * time.Millisecond
	DefaultMaxDelay = 500 * time.Millisecond
)

// Simulator blocks the caller for a random duration in [min, max).
type Simulator struct {
	min time.Duration
	max time.Duration
}

// New creates a Simulator. Bounds are swapped if given in reverse;
// a zero range disables the delay.
func New(min, max time.Duration) *Simulator {
	if min < 0 {
		min = 0
	}
	if max < min {
		min, max = max, min
	}
	return &Simulator{min: min, max: max}
}

// Delay draws the next delay.
func (s *Simulator) Delay() time.Duration {
	if s.max <= s.min {
		return s.min
	}
	return s.min + time.Duration(rand.Int63n(int64(s.max-s.min)))
}

// Simulate waits for the drawn delay or until ctx is done, whichever comes first.
// A cancelled wait returns ctx.Err().
func (s *Simulator) Simulate(ctx context.Context, ch models.Channel) error {
	delay := s.Delay()
	if delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		logger.Log.Debugw("settlement latency simulated", "channel", ch, "delay", delay)
		return nil
	case <-ctx.Done():
		logger.Log.Warnw("settlement wait interrupted", "channel", ch, "delay", delay, "error", ctx.Err())
		return ctx.Err()
	}
}

// Package txid generates channel-prefixed transaction identifiers.
//
// An id is the channel prefix, the UTC time down to the millisecond and
// 8 hex characters (32 random bits). There is no shared sequence, so
// uniqueness is probabilistic: two ids collide only if they fall in the
// same millisecond and draw the same suffix.
package txid

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-funds-transfer/internal/models"
)

const timeLayout = "20060102150405"

// Generator produces transaction ids.
type Generator struct {
	now    func() time.Time
	random func() (uuid.UUID, error)
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithRandom overrides the source of the random suffix.
func WithRandom(random func() (uuid.UUID, error)) Option {
	return func(g *Generator) { g.random = random }
}

// New creates a Generator backed by the wall clock and uuid.NewRandom.
func New(opts ...Option) *Generator {
	g := &Generator{
		now:    time.Now,
		random: uuid.NewRandom,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Next returns a new id for the channel, e.g. UPI20250101120000123A1B2C3D4.
func (g *Generator) Next(ch models.Channel) (string, error) {
	u, err := g.random()
	if err != nil {
		return "", fmt.Errorf("txid: read random suffix: %w", err)
	}
	ts := g.now().UTC()
	suffix := strings.ToUpper(strings.ReplaceAll(u.String(), "-", "")[:8])
	return fmt.Sprintf("%s%s%03d%s", ch, ts.Format(timeLayout), ts.Nanosecond()/int(time.Millisecond), suffix), nil
}

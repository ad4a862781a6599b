// Package mockgen produces the randomized responses of the simulated
// charging and balance systems.
package mockgen

import (
	"context"
	"math/rand/v2"
	"time"
)

// Dice is the source of randomness behind every simulated outcome.
type Dice interface {
	Float64() float64
	IntN(n int) int
}

type randDice struct{}

func (randDice) Float64() float64 { return rand.Float64() }
func (randDice) IntN(n int) int   { return rand.IntN(n) }

// Failure is a simulated business or system failure.
type Failure struct {
	Status  int
	Message string
	Details map[string]string
}

func (f *Failure) Error() string { return f.Message }

func fail(status int, message string) *Failure {
	return &Failure{Status: status, Message: message}
}

// Generator produces simulated responses.
type Generator struct {
	dice    Dice
	now     func() time.Time
	latency time.Duration
}

// New returns a Generator that waits latency before every simulated call.
func New(latency time.Duration) *Generator {
	return NewWithDice(randDice{}, latency)
}

func NewWithDice(dice Dice, latency time.Duration) *Generator {
	return &Generator{dice: dice, now: time.Now, latency: latency}
}

// Wait blocks for the configured latency or until ctx is done.
func (g *Generator) Wait(ctx context.Context) error {
	if g.latency <= 0 {
		return nil
	}

	t := time.NewTimer(g.latency)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// chance reports true with probability p.
func (g *Generator) chance(p float64) bool {
	return g.dice.Float64() < p
}

// between returns an integer in [lo, lo+n).
func (g *Generator) between(lo, n int) int {
	return lo + g.dice.IntN(n)
}

func (g *Generator) millis() int64 {
	return g.now().UnixMilli()
}

package translation

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/sony/gobreaker"
)

// BreakerSettings configures the circuit breaker around a primary backend.
type BreakerSettings struct {
	// MaxFailures is the number of consecutive failures that opens the circuit
	MaxFailures uint32
	// OpenTimeout is how long the circuit stays open before a trial request
	OpenTimeout time.Duration
}

// Breaker stops calling a failing backend for a while so that requests go
// straight to the fallback instead of waiting on a broken API.
type Breaker struct {
	backend Backend
	cb      *gobreaker.CircuitBreaker
}

// NewBreaker wraps backend in a circuit breaker. A zero MaxFailures defaults
// to 5 consecutive failures.
func NewBreaker(backend Backend, settings BreakerSettings) *Breaker {
	maxFailures := settings.MaxFailures
	if maxFailures == 0 {
		maxFailures = 5
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    backend.Name(),
		Timeout: settings.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		IsSuccessful: func(err error) bool {
			// A caller giving up says nothing about the backend's health
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Printf("translation: circuit %s changed from %s to %s", name, from, to)
		},
	})

	return &Breaker{backend: backend, cb: cb}
}

// Name returns the wrapped backend's name
func (b *Breaker) Name() string {
	return b.backend.Name()
}

// State reports the current circuit state
func (b *Breaker) State() gobreaker.State {
	return b.cb.State()
}

// Translate calls the wrapped backend unless the circuit is open
func (b *Breaker) Translate(ctx context.Context, text string) (string, error) {
	out, err := b.cb.Execute(func() (interface{}, error) {
		return b.backend.Translate(ctx, text)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return "", fmt.Errorf("%s unavailable: %w", b.backend.Name(), err)
		}
		return "", err
	}
	return out.(string), nil
}

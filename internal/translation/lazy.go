package translation

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"
)

// Factory constructs a backend. It is called at most once per Lazy.
type Factory func(ctx context.Context) (Backend, error)

// DefaultReadyTimeout bounds how long a request waits for a cold backend.
const DefaultReadyTimeout = 30 * time.Second

// Lazy constructs its backend on first use, or in the background after
// Warm. Requests that arrive while the backend is being constructed block
// until it is ready, bounded by the ready timeout. A construction error is
// permanent and returned by every Translate call.
type Lazy struct {
	name         string
	factory      Factory
	readyTimeout time.Duration

	start   sync.Once
	ready   chan struct{}
	backend Backend
	err     error
}

// NewLazy creates a lazily constructed backend
func NewLazy(name string, factory Factory, readyTimeout time.Duration) *Lazy {
	if readyTimeout <= 0 {
		readyTimeout = DefaultReadyTimeout
	}
	return &Lazy{
		name:         name,
		factory:      factory,
		readyTimeout: readyTimeout,
		ready:        make(chan struct{}),
	}
}

// Warm starts constructing the backend in the background
func (l *Lazy) Warm() {
	l.start.Do(func() { go l.load() })
}

func (l *Lazy) load() {
	started := time.Now()
	log.Printf("translation: loading %s backend", l.name)

	l.backend, l.err = l.factory(context.Background())
	if l.err != nil {
		log.Printf("translation: failed to load %s backend: %v", l.name, l.err)
	} else {
		log.Printf("translation: %s backend ready after %s", l.name, time.Since(started).Round(time.Millisecond))
	}
	close(l.ready)
}

// Ready reports whether construction has finished successfully
func (l *Lazy) Ready() bool {
	select {
	case <-l.ready:
		return l.err == nil
	default:
		return false
	}
}

// Name returns the backend name
func (l *Lazy) Name() string {
	return l.name
}

// Translate waits for the backend and delegates to it
func (l *Lazy) Translate(ctx context.Context, text string) (string, error) {
	backend, err := l.wait(ctx)
	if err != nil {
		return "", err
	}
	return backend.Translate(ctx, text)
}

func (l *Lazy) wait(ctx context.Context) (Backend, error) {
	l.Warm()

	timer := time.NewTimer(l.readyTimeout)
	defer timer.Stop()

	select {
	case <-l.ready:
		if l.err != nil {
			return nil, fmt.Errorf("%s backend unavailable: %w", l.name, l.err)
		}
		return l.backend, nil
	case <-timer.C:
		return nil, fmt.Errorf("%s backend not ready after %s", l.name, l.readyTimeout)
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

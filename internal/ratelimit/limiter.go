package ratelimit

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// Store is the backing counter for the limiter. Increment must atomically
// start a new window (count=1) when none exists or the current one has
// expired, otherwise bump and return the running count. Sweep drops entries
// older than maxAge; stores with native expiry may make it a no-op.
type Store interface {
	Increment(ctx context.Context, key string, window time.Duration) (int, error)
	Sweep(ctx context.Context, maxAge time.Duration) error
}

// Limiter enforces a fixed-window request cap per client identifier. It is a
// best-effort throttle: on store errors it fails open so a degraded Redis
// never takes the chat endpoint down with it.
type Limiter struct {
	store  Store
	max    int
	window time.Duration
	log    *logrus.Logger
	stop   chan struct{}
}

func New(store Store, max int, window time.Duration, log *logrus.Logger) *Limiter {
	return &Limiter{
		store:  store,
		max:    max,
		window: window,
		log:    log,
		stop:   make(chan struct{}),
	}
}

// Allow reports whether clientID may make another request in the current
// window. Denied requests still count; a client hammering the endpoint stays
// denied until its window expires.
func (l *Limiter) Allow(ctx context.Context, clientID string) bool {
	count, err := l.store.Increment(ctx, clientID, l.window)
	if err != nil {
		l.log.WithError(err).Warn("rate limit store unavailable, failing open")
		return true
	}
	return count <= l.max
}

// Window returns the configured window length.
func (l *Limiter) Window() time.Duration {
	return l.window
}

// StartSweeper launches the background cleanup loop. Entries are removed once
// their window age exceeds twice the window length, bounding memory growth.
func (l *Limiter) StartSweeper() {
	go func() {
		ticker := time.NewTicker(l.window * 2)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := l.store.Sweep(context.Background(), l.window*2); err != nil {
					l.log.WithError(err).Warn("rate limit sweep failed")
				}
			case <-l.stop:
				return
			}
		}
	}()
}

// Stop terminates the sweeper loop.
func (l *Limiter) Stop() {
	close(l.stop)
}

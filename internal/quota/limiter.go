// Package quota throttles calls to metered third-party APIs (search,
// extraction, model providers) with a token bucket and a rolling daily cap.
package quota

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// ErrDailyLimitReached is returned when the daily call budget is exhausted.
var ErrDailyLimitReached = errors.New("daily API limit reached")

// Limiter controls call rate and daily usage. A maxDaily of zero or less
// disables the daily cap.
type Limiter struct {
	name     string
	limiter  *rate.Limiter
	maxDaily int64

	mu      sync.Mutex
	daily   int64
	resetAt time.Time
	nowFunc func() time.Time
}

// Option configures the Limiter.
type Option func(*Limiter)

// WithNowFunc overrides the time function for testing.
func WithNowFunc(f func() time.Time) Option {
	return func(l *Limiter) {
		l.nowFunc = f
	}
}

// New creates a limiter for the named upstream with the given per-second
// rate, burst size and daily limit. The daily window resets 24 hours after
// it opened.
func New(name string, perSecond float64, burst int, maxDaily int64, opts ...Option) *Limiter {
	if burst < 1 {
		burst = 1
	}
	limit := rate.Limit(perSecond)
	if perSecond <= 0 {
		limit = rate.Inf
	}
	l := &Limiter{
		name:     name,
		limiter:  rate.NewLimiter(limit, burst),
		maxDaily: maxDaily,
		nowFunc:  time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.resetAt = l.nowFunc().Add(24 * time.Hour)
	return l
}

// Name returns the upstream this limiter guards.
func (l *Limiter) Name() string {
	return l.name
}

// Wait blocks until a call is allowed or ctx is done.
func (l *Limiter) Wait(ctx context.Context) error {
	l.mu.Lock()
	now := l.nowFunc()
	if now.After(l.resetAt) {
		l.daily = 0
		l.resetAt = now.Add(24 * time.Hour)
	}
	if l.maxDaily > 0 && l.daily >= l.maxDaily {
		used := l.daily
		l.mu.Unlock()
		return fmt.Errorf("%s: %w (%d/%d)", l.name, ErrDailyLimitReached, used, l.maxDaily)
	}
	l.mu.Unlock()

	if err := l.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%s rate limiter wait: %w", l.name, err)
	}

	l.mu.Lock()
	l.daily++
	l.mu.Unlock()
	return nil
}

// DailyCount returns the calls made in the current window.
func (l *Limiter) DailyCount() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.daily
}

// Remaining returns the calls left in the current window, or -1 when
// the daily cap is disabled.
func (l *Limiter) Remaining() int64 {
	if l.maxDaily <= 0 {
		return -1
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return max(l.maxDaily-l.daily, 0)
}

// ResetAt returns when the current daily window expires.
func (l *Limiter) ResetAt() time.Time {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.resetAt
}

// MaxDaily returns the configured daily cap; zero means uncapped.
func (l *Limiter) MaxDaily() int64 {
	return l.maxDaily
}

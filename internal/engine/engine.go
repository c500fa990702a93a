// Package engine orchestrates extraction, discovery, scoring, price
// tracking and alerting.
package engine

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/shrutirout/foxdeal/internal/discovery"
	"github.com/shrutirout/foxdeal/internal/notify"
	"github.com/shrutirout/foxdeal/internal/store"
	"github.com/shrutirout/foxdeal/pkg/extract"
	"github.com/shrutirout/foxdeal/pkg/llm"
	"github.com/shrutirout/foxdeal/pkg/match"
)

const (
	defaultConcurrency      = 4
	defaultCandidateTimeout = 35 * time.Second
	defaultItemTimeout      = 35 * time.Second
	defaultSweepLockTTL     = 30 * time.Minute
)

// Locker guards a named job across processes.
type Locker interface {
	Acquire(ctx context.Context, name, holder string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, name, holder string) error
}

// Engine wires the pipeline collaborators together.
type Engine struct {
	store     store.Store
	extractor extract.Extractor
	strategy  discovery.Strategy
	notifier  notify.Notifier
	log       *slog.Logger
	tracer    trace.Tracer

	matcher          *match.Matcher
	verdict          llm.Backend
	locker           Locker
	sweepMu          sync.Mutex
	concurrency      int
	candidateTimeout time.Duration
	itemTimeout      time.Duration
	sweepLockTTL     time.Duration
	requireImage     bool
	now              func() time.Time
}

// NewEngine creates a new Engine with injected dependencies.
func NewEngine(
	s store.Store,
	ex extract.Extractor,
	strategy discovery.Strategy,
	n notify.Notifier,
	opts ...EngineOption,
) *Engine {
	eng := &Engine{
		store:            s,
		extractor:        ex,
		strategy:         strategy,
		notifier:         n,
		log:              slog.Default(),
		tracer:           otel.Tracer("github.com/shrutirout/foxdeal/internal/engine"),
		matcher:          match.New(match.DefaultOverlapThreshold),
		concurrency:      defaultConcurrency,
		candidateTimeout: defaultCandidateTimeout,
		itemTimeout:      defaultItemTimeout,
		sweepLockTTL:     defaultSweepLockTTL,
		requireImage:     true,
		now:              time.Now,
	}
	for _, opt := range opts {
		opt(eng)
	}
	if eng.notifier == nil {
		eng.notifier = notify.NewNoOpNotifier(eng.log)
	}
	return eng
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithMatcher replaces the default title matcher.
func WithMatcher(m *match.Matcher) EngineOption {
	return func(e *Engine) {
		if m != nil {
			e.matcher = m
		}
	}
}

// WithConcurrency bounds how many candidates are verified at once.
func WithConcurrency(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.concurrency = n
		}
	}
}

// WithCandidateTimeout sets the extraction deadline for each candidate.
func WithCandidateTimeout(d time.Duration) EngineOption {
	return func(e *Engine) {
		if d > 0 {
			e.candidateTimeout = d
		}
	}
}

// WithItemTimeout sets the extraction deadline for each product in a sweep.
func WithItemTimeout(d time.Duration) EngineOption {
	return func(e *Engine) {
		if d > 0 {
			e.itemTimeout = d
		}
	}
}

// WithLocker guards sweeps with a lock shared between replicas.
func WithLocker(l Locker, ttl time.Duration) EngineOption {
	return func(e *Engine) {
		e.locker = l
		if ttl > 0 {
			e.sweepLockTTL = ttl
		}
	}
}

// WithVerdictBackend enables AI verdicts on tracked products.
func WithVerdictBackend(b llm.Backend) EngineOption {
	return func(e *Engine) {
		e.verdict = b
	}
}

// WithRequireImage controls whether alternatives without an image are dropped.
func WithRequireImage(required bool) EngineOption {
	return func(e *Engine) {
		e.requireImage = required
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// StrategyName returns the name of the configured discovery strategy.
func (eng *Engine) StrategyName() string {
	if eng.strategy == nil {
		return ""
	}
	return eng.strategy.Name()
}

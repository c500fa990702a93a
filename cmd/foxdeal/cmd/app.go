package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/shrutirout/foxdeal/internal/api/handlers"
	"github.com/shrutirout/foxdeal/internal/cache"
	"github.com/shrutirout/foxdeal/internal/config"
	"github.com/shrutirout/foxdeal/internal/discovery"
	"github.com/shrutirout/foxdeal/internal/engine"
	"github.com/shrutirout/foxdeal/internal/metrics"
	"github.com/shrutirout/foxdeal/internal/notify"
	"github.com/shrutirout/foxdeal/internal/quota"
	"github.com/shrutirout/foxdeal/internal/search"
	"github.com/shrutirout/foxdeal/internal/store"
	"github.com/shrutirout/foxdeal/pkg/extract"
	"github.com/shrutirout/foxdeal/pkg/llm"
	"github.com/shrutirout/foxdeal/pkg/match"
)

// app holds the wired pipeline shared by serve and sweep.
type app struct {
	engine   *engine.Engine
	store    *store.PostgresStore
	limiters []*quota.Limiter
	pingers  []handlers.Pinger
	closers  []func()
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// newApp connects every dependency named in cfg. On error, whatever was
// already opened is closed.
func newApp(ctx context.Context, cfg *config.Config, log *slog.Logger) (_ *app, err error) {
	a := &app{}
	defer func() {
		if err != nil {
			a.Close()
		}
	}()

	a.store, err = store.NewPostgresStore(ctx, cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	a.closers = append(a.closers, a.store.Close)
	a.pingers = append(a.pingers, a.store)

	var rc *redis.Client
	var rcache *cache.Redis
	if cfg.Redis.URL != "" {
		rc, err = cache.Connect(ctx, cfg.Redis.URL, cfg.Redis.DB)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func() { _ = rc.Close() })
		rcache = cache.NewRedis(rc, cache.WithPrefix(cfg.Redis.Prefix), cache.WithLogger(log))
		a.pingers = append(a.pingers, rcache)
	}

	factCache, err := a.openFactCache(ctx, cfg, rcache, log)
	if err != nil {
		return nil, err
	}

	backend, err := newLLMBackend(&cfg.LLM)
	if err != nil {
		return nil, err
	}

	extractor, err := a.newExtractor(cfg, backend, factCache, log)
	if err != nil {
		return nil, err
	}

	searcher := a.newSearcher(&cfg.Search, log)

	deps := discovery.Deps{
		Searcher:       searcher,
		MaxPerPlatform: cfg.Search.MaxPerPlatform,
		Logger:         log,
	}
	if backend != nil {
		deps.Planner = discovery.NewLLMPlanner(backend, log)
		deps.Guesser = discovery.NewLLMGuesser(backend, log)
	}
	strategy, err := discovery.New(cfg.Discovery.Strategy, deps)
	if err != nil {
		return nil, fmt.Errorf("building discovery strategy: %w", err)
	}

	notifier, err := newNotifier(&cfg.Notifications, log)
	if err != nil {
		return nil, err
	}

	threshold := cfg.Discovery.MatchThreshold
	if threshold == 0 {
		threshold = match.DefaultOverlapThreshold
	}
	opts := []engine.EngineOption{
		engine.WithLogger(log),
		engine.WithMatcher(match.New(threshold)),
		engine.WithConcurrency(cfg.Discovery.Concurrency),
		engine.WithCandidateTimeout(cfg.Discovery.CandidateTimeout),
		engine.WithItemTimeout(cfg.Sweep.ItemTimeout),
		engine.WithRequireImage(cfg.Discovery.ImageRequired()),
	}
	if rcache != nil {
		opts = append(opts, engine.WithLocker(rcache, cfg.Sweep.LockTTL))
	}
	if backend != nil {
		opts = append(opts, engine.WithVerdictBackend(backend))
	}

	a.engine = engine.NewEngine(a.store, extractor, strategy, notifier, opts...)

	log.Info("pipeline ready",
		"extraction", cfg.Extraction.Provider,
		"search", searcher.Name(),
		"discovery", cfg.Discovery.Strategy,
		"cache", cfg.Cache.Backend,
		"llm", cfg.LLM.Backend,
	)
	return a, nil
}

func (a *app) openFactCache(ctx context.Context, cfg *config.Config, rcache *cache.Redis, log *slog.Logger) (extract.Cache, error) {
	switch cfg.Cache.Backend {
	case "redis":
		return rcache, nil
	case "sqlite":
		sc, err := cache.OpenSQLite(cfg.Cache.SQLitePath)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func() { _ = sc.Close() })
		if n, err := sc.Prune(ctx); err != nil {
			log.Warn("pruning fact cache", "error", err)
		} else if n > 0 {
			log.Info("pruned expired facts", "count", n)
		}
		return sc, nil
	default:
		return nil, nil
	}
}

func (a *app) newExtractor(
	cfg *config.Config,
	backend llm.Backend,
	factCache extract.Cache,
	log *slog.Logger,
) (*extract.Client, error) {
	ec := &cfg.Extraction

	var svc extract.Service
	switch ec.Provider {
	case "firecrawl":
		svc = extract.NewFirecrawlService(
			extract.WithFirecrawlEndpoint(ec.Firecrawl.Endpoint),
			extract.WithFirecrawlAPIKey(ec.Firecrawl.APIKey),
		)
	case "llm":
		if backend == nil {
			return nil, errors.New("llm extraction requires an llm backend")
		}
		svc = extract.NewLLMService(backend)
	case "html":
		svc = extract.NewHTMLService(extract.WithHTMLUserAgent(ec.UserAgent))
	default:
		return nil, fmt.Errorf("unknown extraction provider %q", ec.Provider)
	}

	opts := []extract.ClientOption{
		extract.WithLogger(log),
		extract.WithRetry(ec.RetryAttempts, ec.RetryBackoff),
		extract.WithTimeout(ec.Timeout),
		extract.WithObserver(metrics.ExtractionObserver{}),
	}
	if factCache != nil {
		opts = append(opts, extract.WithCache(factCache, cfg.Cache.TTL))
	}
	if l := a.limiter(svc.Name(), ec.RateLimit); l != nil {
		opts = append(opts, extract.WithLimiter(l))
	}
	return extract.NewClient(svc, opts...), nil
}

func (a *app) newSearcher(sc *config.SearchConfig, log *slog.Logger) search.Searcher {
	l := a.limiter(sc.Provider, sc.RateLimit)
	switch sc.Provider {
	case "cse":
		opts := []search.CSEOption{
			search.WithCSEEndpoint(sc.CSE.Endpoint),
			search.WithCSECredentials(sc.CSE.APIKey, sc.CSE.EngineID),
			search.WithCSELogger(log),
		}
		if l != nil {
			opts = append(opts, search.WithCSELimiter(l))
		}
		return search.NewCSEClient(opts...)
	default:
		opts := []search.SerperOption{
			search.WithSerperEndpoint(sc.Serper.Endpoint),
			search.WithSerperLogger(log),
		}
		if sc.Serper.APIKey != "" {
			opts = append(opts, search.WithSerperAPIKey(sc.Serper.APIKey))
		}
		if l != nil {
			opts = append(opts, search.WithSerperLimiter(l))
		}
		return search.NewSerperClient(opts...)
	}
}

// limiter returns nil when rl sets no rate.
func (a *app) limiter(name string, rl config.RateLimitConfig) *quota.Limiter {
	if rl.PerSecond <= 0 {
		return nil
	}
	l := quota.New(name, rl.PerSecond, rl.Burst, rl.DailyLimit)
	a.limiters = append(a.limiters, l)
	return l
}

// newLLMBackend returns nil when no backend is configured.
func newLLMBackend(lc *config.LLMConfig) (llm.Backend, error) {
	hc := &http.Client{Timeout: lc.Timeout}
	switch lc.Backend {
	case "":
		return nil, nil
	case "anthropic":
		opts := []llm.AnthropicOption{
			llm.WithAnthropicModel(lc.Anthropic.Model),
			llm.WithAnthropicHTTPClient(hc),
		}
		if lc.Anthropic.Endpoint != "" {
			opts = append(opts, llm.WithAnthropicEndpoint(lc.Anthropic.Endpoint))
		}
		if lc.Anthropic.APIKey != "" {
			opts = append(opts, llm.WithAnthropicAPIKey(lc.Anthropic.APIKey))
		}
		return llm.NewAnthropicBackend(opts...), nil
	case "openai_compat":
		opts := []llm.OpenAICompatOption{llm.WithOpenAICompatHTTPClient(hc)}
		if lc.OpenAICompat.APIKey != "" {
			opts = append(opts, llm.WithOpenAICompatAPIKey(lc.OpenAICompat.APIKey))
		}
		return llm.NewOpenAICompatBackend(lc.OpenAICompat.Endpoint, lc.OpenAICompat.Model, opts...), nil
	case "ollama":
		return llm.NewOllamaBackend(lc.Ollama.Endpoint, lc.Ollama.Model, llm.WithOllamaHTTPClient(hc)), nil
	case "gemini":
		opts := []llm.GeminiOption{
			llm.WithGeminiModel(lc.Gemini.Model),
			llm.WithGeminiHTTPClient(hc),
		}
		if lc.Gemini.Endpoint != "" {
			opts = append(opts, llm.WithGeminiEndpoint(lc.Gemini.Endpoint))
		}
		if lc.Gemini.APIKey != "" {
			opts = append(opts, llm.WithGeminiAPIKey(lc.Gemini.APIKey))
		}
		return llm.NewGeminiBackend(opts...), nil
	default:
		return nil, fmt.Errorf("unknown llm backend %q", lc.Backend)
	}
}

// newNotifier fans out to every enabled target, or logs alerts when none is.
func newNotifier(nc *config.NotificationsConfig, log *slog.Logger) (notify.Notifier, error) {
	var targets notify.Multi
	if nc.Discord.Enabled {
		targets = append(targets, notify.NewDiscordNotifier(nc.Discord.WebhookURL))
	}
	if nc.Telegram.Enabled {
		tg, err := notify.NewTelegramNotifier(nc.Telegram.Token, nc.Telegram.ChatID, log)
		if err != nil {
			return nil, fmt.Errorf("creating telegram notifier: %w", err)
		}
		targets = append(targets, tg)
	}
	switch len(targets) {
	case 0:
		return notify.NewNoOpNotifier(log), nil
	case 1:
		return targets[0], nil
	default:
		return targets, nil
	}
}

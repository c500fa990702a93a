package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/shrutirout/foxdeal/api/openapi"
	"github.com/shrutirout/foxdeal/internal/api/handlers"
	mw "github.com/shrutirout/foxdeal/internal/api/middleware"
	"github.com/shrutirout/foxdeal/internal/config"
	"github.com/shrutirout/foxdeal/internal/engine"
	"github.com/shrutirout/foxdeal/internal/identity"
	"github.com/shrutirout/foxdeal/internal/telemetry"
	domain "github.com/shrutirout/foxdeal/pkg/types"
)

const apiTitle = "foxdeal API"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and sweep scheduler",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, closer := newLogger(cfg)
	defer func() { _ = closer.Close() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := telemetry.Setup(ctx, telemetry.Config{
		Enabled:        cfg.Telemetry.Enabled,
		Endpoint:       cfg.Telemetry.Endpoint,
		Insecure:       cfg.Telemetry.Insecure,
		ServiceName:    cfg.Telemetry.ServiceName,
		ServiceVersion: Version,
		SampleRatio:    cfg.Telemetry.SampleRatio,
		MetricInterval: cfg.Telemetry.MetricInterval,
	})
	if err != nil {
		return fmt.Errorf("setting up telemetry: %w", err)
	}

	a, err := newApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.Close()

	e, err := newServer(cfg, a, log)
	if err != nil {
		return err
	}

	var sched *engine.Scheduler
	if cfg.Sweep.Enabled {
		sched, err = engine.NewScheduler(a.engine, cfg.Sweep.Schedule, log)
		if err != nil {
			return fmt.Errorf("creating scheduler: %w", err)
		}
		sched.Start()
		log.Info("sweep scheduler started", "schedule", cfg.Sweep.Schedule)
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server", "addr", addr, "version", Version)

	serveErr := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("serving: %w", err)
		}
	}

	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if sched != nil {
		select {
		case <-sched.Stop().Done():
		case <-shutdownCtx.Done():
			log.Warn("sweep still running at shutdown")
		}
	}
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}
	if err := shutdownTelemetry(shutdownCtx); err != nil {
		log.Warn("flushing telemetry", "error", err)
	}

	log.Info("server stopped")
	return nil
}

// newServer builds the Echo instance with middleware and every route.
func newServer(cfg *config.Config, a *app, log *slog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	var ident identity.Identity
	if cfg.Auth.Enabled {
		jwtIdent, err := identity.NewJWTIdentity(cfg.Auth.JWTSecret,
			identity.WithIssuer(cfg.Auth.Issuer),
			identity.WithTokenTTL(cfg.Auth.TokenTTL),
		)
		if err != nil {
			return nil, fmt.Errorf("creating identity: %w", err)
		}
		ident = jwtIdent
		e.Use(
			mw.RequestLog(log),
			mw.Recovery(log),
			mw.Metrics(),
			mw.CORS(cfg.Server.CORSOrigins),
			mw.Auth(jwtIdent),
		)
	} else {
		ident = identity.Static{User: domain.User{ID: cfg.Auth.DefaultUser}}
		e.Use(
			mw.RequestLog(log),
			mw.Recovery(log),
			mw.Metrics(),
			mw.CORS(cfg.Server.CORSOrigins),
		)
	}
	e.Use(mw.RateLimit(cfg.Server.RateLimit.PerSecond, cfg.Server.RateLimit.Burst,
		"/api/v1/compare", "/api/v1/search", "/api/v1/preview"))

	handlers.RegisterHealthRoutes(e, handlers.NewHealthHandler(a.pingers...))
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	humaCfg := huma.DefaultConfig(apiTitle, Version)
	humaCfg.DocsPath = "" // served by openapi.RegisterRoutes
	humaCfg.Info.Description = "Cross-platform product comparison, deal scoring and price tracking."
	humaCfg.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer", BearerFormat: "JWT"},
	}
	api := humaecho.New(e, humaCfg)

	handlers.RegisterTypes(api)
	handlers.RegisterDealRoutes(api, handlers.NewDealsHandler(a.engine))
	handlers.RegisterProductRoutes(api, handlers.NewProductsHandler(a.engine, ident))
	handlers.RegisterSweepRoutes(api, handlers.NewSweepHandler(a.engine, cfg.Sweep.Secret))
	handlers.RegisterQuotaRoutes(api, handlers.NewQuotaHandler(a.limiters...))

	if err := openapi.RegisterRoutes(e, api, apiTitle); err != nil {
		return nil, err
	}
	return e, nil
}

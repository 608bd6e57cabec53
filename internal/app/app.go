package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	memexcuse "github.com/heartmarshall/excuse-backend/internal/adapter/memory/excuse"
	"github.com/heartmarshall/excuse-backend/internal/config"
	"github.com/heartmarshall/excuse-backend/internal/domain"
	"github.com/heartmarshall/excuse-backend/internal/service/excuse"
	"github.com/heartmarshall/excuse-backend/internal/transport/middleware"
	"github.com/heartmarshall/excuse-backend/internal/transport/rest"
)

// App is the wired HTTP application.
type App struct {
	cfg     *config.Config
	log     *slog.Logger
	store   *memexcuse.Repo
	limiter *middleware.RateLimiter
	handler http.Handler
}

// NewGenerator builds the excuse generator from configuration and returns
// it with the active provider name (empty when none is configured).
func NewGenerator(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*excuse.Generator, string, error) {
	pools, err := excuse.LoadPools(cfg.Generator.PoolsPath)
	if err != nil {
		return nil, "", fmt.Errorf("load fallback pools: %w", err)
	}

	llm := newCompleter(ctx, cfg.LLM, logger)
	name := ""
	if llm != nil {
		name = llm.Name()
	}

	gen := excuse.NewGenerator(
		logger,
		llm,
		pools,
		excuse.NewRand(cfg.Generator.Seed),
		excuse.OptionsFromConfig(cfg.Generator, cfg.LLM),
	)
	return gen, name, nil
}

// New wires the store, generator, service and HTTP handlers. Call Close
// when done.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	gen, llmName, err := NewGenerator(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	store := memexcuse.New()
	svc := excuse.NewService(logger, store, gen, domain.FakeContact{
		Name:         cfg.Emergency.ContactName,
		Relationship: cfg.Emergency.ContactRelationship,
	})

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)

	handler := newRouter(routerDeps{
		cfg:     cfg,
		log:     logger,
		excuses: rest.NewExcuseHandler(svc, logger),
		health:  rest.NewHealthHandler(store, llmName, BuildVersion()),
		limiter: limiter,
	})

	return &App{
		cfg:     cfg,
		log:     logger,
		store:   store,
		limiter: limiter,
		handler: handler,
	}, nil
}

// Handler returns the root HTTP handler.
func (a *App) Handler() http.Handler { return a.handler }

// Close releases background resources.
func (a *App) Close() {
	a.limiter.Stop()
}

// Serve accepts connections on ln until ctx is cancelled, then shuts the
// server down gracefully.
func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      a.handler,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(a.log.Handler(), slog.LevelWarn),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.log.Info("http server listening", slog.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		timeout := a.cfg.Server.ShutdownTimeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		a.log.Info("shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// Run is the application entry point. It initializes the logger, wires
// the application and serves HTTP until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config) error {
	logger, closeLog := NewLogger(cfg.Log)
	defer closeLog() //nolint:errcheck

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("llm_provider", cfg.LLM.Provider),
	)

	a, err := New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}

	if err := a.Serve(ctx, ln); err != nil {
		return err
	}

	logger.Info("application stopped")
	return nil
}

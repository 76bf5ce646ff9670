package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/valorhood/internal/config"
	"github.com/GlebRadaev/valorhood/internal/handlers"
	"github.com/GlebRadaev/valorhood/internal/pg"
	"github.com/GlebRadaev/valorhood/internal/repo"
	"github.com/GlebRadaev/valorhood/internal/service"
	"github.com/GlebRadaev/valorhood/internal/sweeper"
	"github.com/GlebRadaev/valorhood/pkg/auth"
	"github.com/GlebRadaev/valorhood/pkg/logger"
	"github.com/GlebRadaev/valorhood/pkg/ratelimit"
)

const (
	shutdownTimeout   = 5 * time.Second
	readHeaderTimeout = 5 * time.Second
	limiterIdle       = 10 * time.Minute
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(cancel context.CancelFunc) error
}

type Application struct {
	cfg     *config.Config
	pool    *pgxpool.Pool
	api     *handlers.Handlers
	srv     *service.Services
	repo    *repo.Repositories
	limiter *ratelimit.RateLimiter
	sweeper *sweeper.Sweeper

	group *errgroup.Group
	ready bool
}

func New() *Application {
	return &Application{}
}

func (a *Application) Start(ctx context.Context) error {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("can't load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := logger.InitLogger(cfg); err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	jwtService, err := auth.NewJWTService(cfg.JWTSecret)
	if err != nil {
		return fmt.Errorf("can't init token service: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed", zap.Error(err))
		pool.Close()
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	conn := pg.New(pool)
	a.cfg = cfg
	a.pool = pool
	a.repo = repo.New(conn, txManager)
	a.srv = service.New(a.repo, jwtService, cfg.TokenTTL)
	a.api = handlers.New(a.srv)
	a.limiter = ratelimit.New(cfg.RateLimitRPS, cfg.RateLimitBurst)
	a.sweeper = sweeper.New(a.srv.Sweeper, cfg.SweepInterval)

	router := chi.NewRouter()
	a.api.InitRoutes(router, jwtService, a.limiter)
	a.run(ctx, router)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, err
	}
	return dbpool, nil
}

// run starts the http server and the background loops; they all stop when
// ctx is done or as soon as one of them fails.
func (a *Application) run(ctx context.Context, handler http.Handler) {
	g, gctx := errgroup.WithContext(ctx)

	server := &http.Server{
		Addr:              a.cfg.Address,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	g.Go(func() error {
		zap.L().Info("starting http server", zap.String("address", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server exited with error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		// Shutdown leaves hijacked websocket connections alone.
		if a.srv != nil && a.srv.Presence != nil {
			a.srv.Presence.Close()
		}

		sCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(sCtx)
	})

	if a.sweeper != nil {
		g.Go(func() error {
			return a.sweeper.Run(gctx)
		})
	}

	if a.limiter != nil {
		g.Go(func() error {
			return a.limiter.Run(gctx, limiterIdle)
		})
	}

	a.group = g
}

// Wait blocks until every component has stopped and releases the database pool.
func (a *Application) Wait(cancel context.CancelFunc) error {
	var appErr error
	if a.group != nil {
		appErr = a.group.Wait()
	}
	cancel()

	if a.pool != nil {
		a.pool.Close()
	}
	if appErr != nil {
		zap.L().Error("application stopped with error", zap.Error(appErr))
	}
	return appErr
}

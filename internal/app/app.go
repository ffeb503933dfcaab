package app

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/yungbote/neurobridge-lms/internal/clients/redis"
	"github.com/yungbote/neurobridge-lms/internal/data/db"
	"github.com/yungbote/neurobridge-lms/internal/http"
	"github.com/yungbote/neurobridge-lms/internal/observability"
	"github.com/yungbote/neurobridge-lms/internal/platform/logger"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Redis    *goredis.Client
	Server   *http.Server
	Cfg      Config
	Repos    Repos
	Services Services
	Metrics  *observability.Metrics

	store        *db.Service
	otelShutdown func(context.Context) error
	cancel       context.CancelFunc
}

func New(ctx context.Context) (*App, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return NewWithConfig(ctx, cfg)
}

func NewWithConfig(ctx context.Context, cfg Config) (*App, error) {
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	a := &App{Log: log, Cfg: cfg}
	a.otelShutdown = observability.InitOTel(ctx, log, cfg.Otel.toObservability())

	a.store, err = openStore(log, cfg)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.DB = a.store.DB()
	if err := db.AutoMigrateAll(a.DB); err != nil {
		a.Close()
		return nil, err
	}
	if err := db.EnsureSearchIndexes(a.DB); err != nil {
		a.Close()
		return nil, err
	}

	a.Redis, err = redis.NewClient(ctx, log, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("init redis: %w", err)
	}

	if cfg.MetricsEnabled {
		a.Metrics = observability.NewMetrics()
	}

	a.Repos = wireRepos(a.DB, log)
	a.Services = wireServices(a.DB, log, cfg, a.Repos, a.Redis)
	handlers := wireHandlers(log, a.DB, a.Services, a.Metrics)
	middleware := wireMiddleware(log, a.Services)
	a.Server = wireServer(log, cfg, handlers, middleware, a.Metrics)
	return a, nil
}

func openStore(log *logger.Logger, cfg Config) (*db.Service, error) {
	switch cfg.DBDriver {
	case "sqlite":
		s, err := db.NewSQLiteService(log, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("init sqlite: %w", err)
		}
		return s, nil
	default:
		s, err := db.NewPostgresService(log, cfg.Postgres.toDB())
		if err != nil {
			return nil, fmt.Errorf("init postgres: %w", err)
		}
		return s, nil
	}
}

// Start launches the background metric collectors.
func (a *App) Start() {
	if a == nil || a.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel

	if a.Metrics != nil {
		a.Metrics.StartDBCollector(ctx, a.Log, a.DB, 15*time.Second)
		if a.Redis != nil {
			a.Metrics.StartRedisCollector(ctx, a.Log, a.Redis, 15*time.Second)
		}
	}
}

// Run serves until SIGINT/SIGTERM, then drains in-flight requests.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.Server == nil {
		return errors.New("app not initialized")
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.Log.Info("HTTP server listening", "addr", a.Cfg.Address())
		return a.Server.Run()
	})
	g.Go(func() error {
		<-gctx.Done()
		a.Log.Info("Shutting down HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Cfg.ShutdownTimeout)
		defer cancel()
		if err := a.Server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})
	return g.Wait()
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			a.Log.Warn("redis close failed", "error", err)
		}
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.Log.Warn("database close failed", "error", err)
		}
	}
	if a.otelShutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := a.otelShutdown(ctx); err != nil {
			a.Log.Warn("otel shutdown failed", "error", err)
		}
		cancel()
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}

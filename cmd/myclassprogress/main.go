package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/myclassprogress/api/swagger"
	"github.com/noah-isme/myclassprogress/internal/handler"
	"github.com/noah-isme/myclassprogress/internal/middleware"
	"github.com/noah-isme/myclassprogress/internal/repository"
	"github.com/noah-isme/myclassprogress/internal/service"
	"github.com/noah-isme/myclassprogress/internal/store"
	"github.com/noah-isme/myclassprogress/internal/validation"
	"github.com/noah-isme/myclassprogress/pkg/cache"
	"github.com/noah-isme/myclassprogress/pkg/config"
	"github.com/noah-isme/myclassprogress/pkg/database"
	"github.com/noah-isme/myclassprogress/pkg/jobs"
	"github.com/noah-isme/myclassprogress/pkg/logger"
	corsmiddleware "github.com/noah-isme/myclassprogress/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/myclassprogress/pkg/middleware/requestid"
	"github.com/noah-isme/myclassprogress/pkg/notify"
	"github.com/noah-isme/myclassprogress/pkg/storage"
)

// @title MyClassProgress API
// @version 1.0.0
// @description Students, teachers, tasks and grades of a class progress tracker
// @BasePath /
// @schemes http

const (
	shutdownTimeout = 10 * time.Second
	saveJobKey      = "save"
)

// backendHandle is the selected store backend plus what main must release.
type backendHandle struct {
	backend store.Backend
	checks  map[string]handler.ReadinessCheck
	close   func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend, err := openBackend(ctx, cfg, logr)
	if err != nil {
		logr.Fatal("failed to open store backend", zap.Error(err))
	}
	defer backend.close()

	metrics := service.NewMetricsService()
	reporter := notify.NewRollbar(notify.Options{
		Token:       cfg.Rollbar.Token,
		Environment: cfg.Env,
		CodeVersion: "1.0.0",
	}, logr)
	defer reporter.Close()

	// The save queue is wired before the store exists; its handler only runs
	// after Start.
	var st *store.Store
	saves := jobs.NewQueue("store-save", func(ctx context.Context, _ jobs.Job) error {
		return st.Save(ctx)
	}, jobs.QueueConfig{
		MaxRetries: cfg.Store.SaveRetries,
		RetryDelay: cfg.Store.SaveRetryDelay,
		Logger:     logr,
	})

	onPersistError := func(ctx context.Context, err error) {
		reporter.PersistFailed(ctx, err)
		if jobs.Running(ctx) {
			return
		}
		if _, qerr := saves.Enqueue(jobs.Job{Key: saveJobKey}); qerr != nil {
			logr.Warn("could not schedule save retry", zap.Error(qerr))
		}
	}

	st = store.New(ctx, backend.backend, logr,
		store.WithMetrics(metrics),
		store.WithPersistErrorHandler(onPersistError),
		store.WithResetGuard(store.NewResetGuard([]byte(cfg.Reset.Secret), cfg.Reset.TTL, nil)),
	)
	saves.Start(ctx)
	defer saves.Stop()

	validate := validation.New()
	services := handler.Services{
		Auth:      service.NewAuthService(st, validate, logr),
		Students:  service.NewStudentService(st, validate, logr),
		Teachers:  service.NewTeacherService(st, validate, logr),
		Tasks:     service.NewTaskService(st, validate, logr),
		Grades:    service.NewGradeService(st, validate, logr),
		Classes:   service.NewClassService(st),
		Dashboard: service.NewDashboardService(st, logr),
		Reports:   service.NewReportService(st, service.ReportConfig{Enabled: cfg.Reports.Enabled}, logr),
		Data:      service.NewDataService(st, validate, logr),
		Metrics:   metrics,
		Checks:    backend.checks,
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))

	handler.Register(r, cfg.APIPrefix, services, logr)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Info("server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Error("server failed", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
}

func openBackend(ctx context.Context, cfg *config.Config, logr *zap.Logger) (*backendHandle, error) {
	switch cfg.Store.Backend {
	case config.BackendMemory:
		return &backendHandle{
			backend: repository.NewMemoryBackend(int(cfg.Store.CapacityBytes)),
			close:   func() {},
		}, nil

	case config.BackendFile, "":
		files, err := storage.NewLocalStorage(cfg.Store.FileDir, cfg.Store.CapacityBytes)
		if err != nil {
			return nil, err
		}
		return &backendHandle{
			backend: repository.NewFileBackend(files),
			close:   func() {},
		}, nil

	case config.BackendRedis:
		client, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			return nil, err
		}
		return &backendHandle{
			backend: repository.NewRedisBackend(client, cfg.Store.KeyPrefix, logr),
			checks:  map[string]handler.ReadinessCheck{"redis": redisCheck(client)},
			close:   func() { _ = client.Close() },
		}, nil

	case config.BackendPostgres:
		db, err := database.NewPostgres(cfg.Database)
		if err != nil {
			return nil, err
		}
		kv := repository.NewPostgresBackend(db, cfg.Database.Table)
		if err := kv.EnsureSchema(ctx); err != nil {
			_ = db.Close()
			return nil, err
		}
		return &backendHandle{
			backend: kv,
			checks:  map[string]handler.ReadinessCheck{"postgres": postgresCheck(db)},
			close:   func() { _ = db.Close() },
		}, nil
	}
	return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
}

func redisCheck(client *redis.Client) handler.ReadinessCheck {
	return func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}
}

func postgresCheck(db *sqlx.DB) handler.ReadinessCheck {
	return func(ctx context.Context) error {
		return db.PingContext(ctx)
	}
}

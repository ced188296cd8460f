package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/zwrk/workout-api/internal/associations"
	"github.com/zwrk/workout-api/internal/audit"
	"github.com/zwrk/workout-api/internal/config"
	"github.com/zwrk/workout-api/internal/database"
	auditRepo "github.com/zwrk/workout-api/internal/database/audit"
	"github.com/zwrk/workout-api/internal/database/exercises"
	"github.com/zwrk/workout-api/internal/database/exercisetags"
	"github.com/zwrk/workout-api/internal/database/sets"
	"github.com/zwrk/workout-api/internal/database/tags"
	"github.com/zwrk/workout-api/internal/database/users"
	http_controllers "github.com/zwrk/workout-api/internal/http"
	"github.com/zwrk/workout-api/internal/logging"
	"github.com/zwrk/workout-api/internal/scheduler"
	"github.com/zwrk/workout-api/internal/tasks"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// Serve runs the HTTP server until SIGINT or SIGTERM, then drains it.
func Serve(router *gin.Engine, cfg *config.Config, logger *zap.Logger, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second
	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("starting server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	// kill (no param) sends SIGTERM, kill -2 is SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server", zap.Duration("timeout", timeout))

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}

	// Background work stops after in-flight requests have drained
	if onShutdown != nil {
		onShutdown(ctx)
	}

	logger.Info("server exiting")
}

// tasksDatabasePath keeps the queue next to a SQLite store, or at the
// configured path otherwise.
func tasksDatabasePath(cfg *config.Config) string {
	if cfg.Database.Driver == config.DriverSQLite && cfg.Database.Path != "" {
		return tasks.DatabasePathFor(cfg.Database.Path)
	}
	return cfg.Tasks.DatabasePath
}

func Run(cfg *config.Config, version string) {
	logger, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	if !cfg.Log.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("starting workout api",
		zap.String("version", version),
		zap.String("driver", string(cfg.Database.Driver)),
	)

	db, err := database.Open(cfg.Database)
	if err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("error closing database", zap.Error(err))
		}
	}()

	if err := db.SeedOwner(cfg.Auth.OwnerID, logger); err != nil {
		logger.Fatal("failed to seed owner", zap.Error(err))
	}

	auditService := audit.NewService(auditRepo.NewRepository(db.DB), logger)
	engine := associations.NewEngine(exercisetags.NewRepository(db.DB), auditService, logger)

	routerCfg := http_controllers.RouterConfig{
		Logger:             logger,
		Database:           db,
		Version:            version,
		OwnerID:            cfg.Auth.OwnerID,
		AllowedOrigins:     cfg.CORS.AllowedOrigins,
		UserStore:          users.NewRepository(db.DB),
		ExerciseStore:      exercises.NewRepository(db.DB),
		TagStore:           tags.NewRepository(db.DB),
		SetStore:           sets.NewRepository(db.DB),
		TagLinker:          engine,
		Auditor:            auditService,
		AuditReader:        auditService,
		AuditRetentionDays: cfg.Audit.RetentionDays,
	}

	// Initialize task queue if enabled
	var taskClient *tasks.Client
	var taskCtxCancel context.CancelFunc
	var cleanupScheduler *scheduler.AuditCleanupScheduler
	if cfg.Tasks.Enabled {
		taskClient, err = tasks.NewClient(tasksDatabasePath(cfg), tasks.FromAppConfig(cfg.Tasks), logger)
		if err != nil {
			logger.Fatal("failed to initialize task queue", zap.Error(err))
		}
		defer func() {
			if err := taskClient.Close(); err != nil {
				logger.Error("error closing task client", zap.Error(err))
			}
		}()

		taskClient.Register(tasks.NewCleanupAuditEventsQueue(auditService, logger))

		var taskCtx context.Context
		taskCtx, taskCtxCancel = context.WithCancel(context.Background())
		go taskClient.Start(taskCtx)

		routerCfg.AuditCleanup = taskClient
		routerCfg.TaskStatus = taskClient

		if cfg.Audit.CleanupEnabled {
			cleanupScheduler = scheduler.NewAuditCleanupScheduler(taskClient, cfg.Audit.CleanupSchedule, cfg.Audit.RetentionDays, logger)
			if err := cleanupScheduler.Start(taskCtx); err != nil {
				logger.Fatal("failed to start audit cleanup scheduler", zap.Error(err))
			}
		}
	} else {
		logger.Info("task queue disabled, audit cleanup must be run manually")
	}

	router := http_controllers.NewRouter(routerCfg)

	onShutdown := func(ctx context.Context) {
		if cleanupScheduler != nil {
			cleanupScheduler.Stop()
		}
		if taskClient != nil && taskCtxCancel != nil {
			taskClient.Stop(ctx)
			taskCtxCancel()
		}
		// Pending audit writes land before the deferred db.Close
		auditService.Wait()
	}

	Serve(router, cfg, logger, onShutdown)
}

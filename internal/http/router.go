package http

import (
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/zwrk/workout-api/docs"
	"github.com/zwrk/workout-api/internal/auth"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	router.Use(recoverWithJSON(logger))

	if len(cfg.AllowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:  cfg.AllowedOrigins,
			AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept", HeaderRequestID},
			ExposeHeaders: []string{HeaderRequestID},
			MaxAge:        12 * time.Hour,
		}))
	}

	router.Use(auth.Principal(cfg.OwnerID))

	// Service endpoints
	health := NewHealthController(cfg.Database, cfg.Version)
	router.GET("/", Index)
	router.GET("/ping", Ping)
	router.GET("/favicon.ico", Favicon)
	router.GET("/health", health.Status)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/doc/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// User endpoints
	if cfg.UserStore != nil {
		users := NewUsersController(cfg.UserStore, cfg.Auditor)
		router.GET("/users", users.List)
		router.POST("/users", users.Create)
		router.GET("/users/:id", users.Get)
		router.PATCH("/users/:id", users.Update)
		router.DELETE("/users/:id", users.Delete)
	}

	// Exercise endpoints, including tag links
	if cfg.ExerciseStore != nil {
		exercises := NewExercisesController(cfg.ExerciseStore, cfg.TagLinker, cfg.Auditor)
		router.GET("/exercises", exercises.List)
		router.POST("/exercises", exercises.Create)
		router.GET("/exercises/:id", exercises.Get)
		router.PATCH("/exercises/:id", exercises.Update)
		router.DELETE("/exercises/:id", exercises.Delete)
		if cfg.TagLinker != nil {
			router.POST("/exercises/:id/tags/:tagId", exercises.AddTag)
			router.DELETE("/exercises/:id/tags/:tagId", exercises.RemoveTag)
		}
	}

	// Tag endpoints
	if cfg.TagStore != nil {
		tags := NewTagsController(cfg.TagStore, cfg.Auditor)
		router.GET("/tags", tags.List)
		router.POST("/tags", tags.Create)
		router.GET("/tags/:id", tags.Get)
		router.PATCH("/tags/:id", tags.Update)
		router.DELETE("/tags/:id", tags.Delete)
	}

	// Set endpoints
	if cfg.SetStore != nil {
		sets := NewSetsController(cfg.SetStore, cfg.Auditor)
		router.GET("/sets", sets.List)
		router.POST("/sets", sets.Create)
		router.GET("/sets/:id", sets.Get)
		router.PATCH("/sets/:id", sets.Update)
		router.DELETE("/sets/:id", sets.Delete)
	}

	// Audit endpoints
	if cfg.AuditReader != nil {
		audit := NewAuditController(cfg.AuditReader, cfg.AuditCleanup, cfg.AuditRetentionDays)
		router.GET("/audit/events", audit.GetAuditEvents)
		router.POST("/audit/cleanup", audit.Cleanup)
	}

	// Task status
	if cfg.TaskStatus != nil {
		tasks := NewTasksController(cfg.TaskStatus)
		router.GET("/tasks/:id", tasks.GetTaskStatus)
	}

	router.NoRoute(notFound)

	return router
}

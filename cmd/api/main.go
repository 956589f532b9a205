package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/vidya-cue/teacher-api/internal/handler"
	"github.com/vidya-cue/teacher-api/internal/middleware"
	"github.com/vidya-cue/teacher-api/internal/models"
	"github.com/vidya-cue/teacher-api/internal/repository"
	"github.com/vidya-cue/teacher-api/internal/seed"
	"github.com/vidya-cue/teacher-api/internal/service"
	"github.com/vidya-cue/teacher-api/internal/store"
	"github.com/vidya-cue/teacher-api/pkg/config"
	"github.com/vidya-cue/teacher-api/pkg/logger"
	corsmiddleware "github.com/vidya-cue/teacher-api/pkg/middleware/cors"
	reqidmiddleware "github.com/vidya-cue/teacher-api/pkg/middleware/requestid"
)

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

	teacherColl, err := store.NewCollection[models.Teacher](cfg.DataDir, "teachers")
	if err != nil {
		logr.Sugar().Fatalw("failed to open teacher collection", "error", err)
	}
	assignmentColl, err := store.NewCollection[models.Assignment](cfg.DataDir, "assignments")
	if err != nil {
		logr.Sugar().Fatalw("failed to open assignment collection", "error", err)
	}

	if err := seed.Run(teacherColl, assignmentColl, logr); err != nil {
		logr.Sugar().Fatalw("failed to seed data", "error", err)
	}

	teacherRepo := repository.NewTeacherRepository(teacherColl)
	assignmentRepo := repository.NewAssignmentRepository(assignmentColl)

	validate := validator.New()
	authSvc := service.NewAuthService(teacherRepo, validate, logr, service.AuthConfig{
		TokenSecret: cfg.JWT.Secret,
		TokenExpiry: cfg.JWT.Expiration,
	})
	assignmentSvc := service.NewAssignmentService(assignmentRepo, logr)

	authHandler := handler.NewAuthHandler(authSvc)
	assignmentHandler := handler.NewAssignmentHandler(assignmentSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))

	var metricsSvc *service.MetricsService
	if cfg.Metrics.Enabled {
		metricsSvc = service.NewMetricsService()
		r.Use(middleware.Metrics(metricsSvc))
		r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))
	}

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "VIDYA-CUE Teacher API (JSON files) running"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	api := r.Group(cfg.APIPrefix)
	{
		auth := api.Group("/auth")
		auth.POST("/login", authHandler.Login)
		auth.POST("/register", authHandler.Register)

		assignments := api.Group("/assignments")
		assignments.Use(middleware.JWT(authSvc))
		assignments.GET("", assignmentHandler.List)
		assignments.POST("", assignmentHandler.Create)
		assignments.GET("/:id", assignmentHandler.Get)
		assignments.PUT("/:id", assignmentHandler.Update)
		assignments.DELETE("/:id", assignmentHandler.Delete)
		assignments.POST("/:id/mark-graded", assignmentHandler.MarkGraded)
		assignments.POST("/:id/remind", assignmentHandler.Remind)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

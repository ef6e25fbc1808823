package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/edutrack-api/api/swagger"
	"github.com/noah-isme/edutrack-api/internal/handler"
	"github.com/noah-isme/edutrack-api/internal/middleware"
	"github.com/noah-isme/edutrack-api/internal/repository"
	"github.com/noah-isme/edutrack-api/internal/seed"
	"github.com/noah-isme/edutrack-api/internal/service"
	"github.com/noah-isme/edutrack-api/pkg/cache"
	"github.com/noah-isme/edutrack-api/pkg/config"
	"github.com/noah-isme/edutrack-api/pkg/gemini"
	"github.com/noah-isme/edutrack-api/pkg/jobs"
	"github.com/noah-isme/edutrack-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/edutrack-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/edutrack-api/pkg/middleware/requestid"
)

const shutdownTimeout = 10 * time.Second

// @title EduTrack API
// @version 1.0.0
// @description Classroom dashboard: roster, attendance, assignments, timetable and activity planning.
// @BasePath /api/v1
// @schemes http

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

	randomSeed := cfg.Seed.RandomSeed
	if randomSeed == 0 {
		randomSeed = time.Now().UnixNano()
	}
	opts := seed.DefaultOptions()
	opts.StudentCount = cfg.Seed.StudentCount
	fixture := seed.Generate(rand.New(rand.NewSource(randomSeed)), time.Now(), opts)
	store := repository.NewStateStore(fixture)
	logr.Info("classroom seeded",
		zap.Int64("seed", randomSeed),
		zap.Int("students", len(fixture.Students)),
		zap.Int("attendance_records", len(fixture.Attendance)),
	)

	metricsSvc := service.NewMetricsService()
	unsubscribe := store.Subscribe(metricsSvc.ObserveStoreChange)
	defer unsubscribe()
	store.Subscribe(func(change repository.Change) {
		logr.Debug("store changed",
			zap.String("kind", string(change.Kind)),
			zap.String("student_id", change.StudentID),
			zap.String("assignment_id", change.AssignmentID),
		)
	})

	var cacheSvc *service.CacheService
	if cfg.Planner.CacheEnabled {
		redisClient, err := cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, suggestion cache disabled", zap.String("addr", cache.Addr(cfg.Redis)), zap.Error(err))
		} else {
			defer redisClient.Close() //nolint:errcheck
			cacheRepo := repository.NewCacheRepository(redisClient, "edutrack", logr)
			cacheSvc = service.NewCacheService(cacheRepo, metricsSvc, service.CacheServiceConfig{
				Enabled:    true,
				DefaultTTL: cfg.Planner.CacheTTL,
			}, logr)
		}
	}

	geminiClient, err := gemini.New(ctx, gemini.Config{
		APIKey:  cfg.Gemini.APIKey,
		Model:   cfg.Gemini.Model,
		Timeout: cfg.Gemini.Timeout,
	}, logr)
	if err != nil {
		logr.Fatal("failed to init gemini client", zap.Error(err))
	}

	sessionSvc := service.NewSessionService(store, nil, logr)
	studentSvc := service.NewStudentService(store, nil, logr)
	assignmentSvc := service.NewAssignmentService(store, nil, service.AssignmentServiceConfig{
		StrictTransitions: cfg.Assignment.StrictTransitions,
	}, logr)
	attendanceSvc := service.NewAttendanceService(store, nil, logr)
	liveSvc := service.NewLiveSessionService(store, attendanceSvc, nil, service.LiveSessionConfig{
		Duration:     cfg.Attendance.LiveSessionDuration,
		TickInterval: cfg.Attendance.TickInterval,
	}, logr)
	defer liveSvc.Close()
	scheduleSvc := service.NewScheduleService(store, nil, logr)
	dashboardSvc := service.NewDashboardService(store, scheduleSvc, service.DashboardServiceConfig{}, logr)
	exportSvc := service.NewExportService(store, nil, logr)

	plannerSvc := service.NewPlannerService(store, cacheSvc, metricsSvc, nil, service.PlannerServiceConfig{
		CacheTTL: cfg.Planner.CacheTTL,
	}, logr)
	plannerWorker := service.NewPlannerWorker(plannerSvc, geminiClient, cfg.Gemini.Timeout, logr)
	plannerQueue := jobs.NewQueue("planner", plannerWorker.Handle, jobs.QueueConfig{
		Workers:    cfg.Planner.Workers,
		MaxRetries: 1,
		JobTimeout: 2 * cfg.Gemini.Timeout,
		Logger:     logr,
	})
	plannerSvc.UseQueue(plannerQueue)
	plannerQueue.Start(ctx)
	defer plannerQueue.Stop()

	handlers := handler.Handlers{
		Session:     handler.NewSessionHandler(sessionSvc),
		Dashboard:   handler.NewDashboardHandler(dashboardSvc),
		Students:    handler.NewStudentHandler(studentSvc),
		Assignments: handler.NewAssignmentHandler(assignmentSvc),
		Attendance:  handler.NewAttendanceHandler(attendanceSvc, liveSvc),
		Schedule:    handler.NewScheduleHandler(scheduleSvc),
		Planner:     handler.NewPlannerHandler(plannerSvc),
		Reports:     handler.NewReportHandler(exportSvc),
		Metrics:     handler.NewMetricsHandler(metricsSvc, plannerQueue),
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.WithResponseMeta())
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsSvc))
		r.GET("/metrics", handlers.Metrics.Prometheus)
	}

	r.GET("/health", handlers.Metrics.Health)
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	handler.Register(r.Group(cfg.APIPrefix), handlers, store, logr)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
		if err := srv.Close(); err != nil {
			logr.Error("forced close failed", zap.Error(err))
		}
	}
}

package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/edugest/edugest-api/api/swagger"
	"github.com/edugest/edugest-api/internal/handler"
	"github.com/edugest/edugest-api/internal/models"
	"github.com/edugest/edugest-api/internal/repository"
	"github.com/edugest/edugest-api/internal/router"
	"github.com/edugest/edugest-api/internal/service"
	"github.com/edugest/edugest-api/pkg/cache"
	"github.com/edugest/edugest-api/pkg/config"
	"github.com/edugest/edugest-api/pkg/database"
	"github.com/edugest/edugest-api/pkg/export"
	"github.com/edugest/edugest-api/pkg/logger"
)

// @title EduGest API
// @version 1.0.0
// @description School administration API: schools, branches, teachers, students, classes and schedules.
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

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

	if cfg.JWT.UsesFallbackSecret() {
		logr.Warn("JWT_SECRET not set, signing tokens with the development secret")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := database.Open(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("database connection failed", "driver", cfg.Database.Driver, "error", err)
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(db, cfg.Database.Driver); err != nil {
			logr.Sugar().Fatalw("database migration failed", "error", err)
		}
	}

	var metricsSvc *service.MetricsService
	if cfg.Metrics.Enabled {
		metricsSvc = service.NewMetricsService()
	}

	var cacheSvc *service.CacheService
	if cfg.Cache.Enabled {
		client, err := cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, list cache disabled", zap.Error(err))
		} else {
			defer client.Close()
			cacheSvc = service.NewCacheService(repository.NewCacheRepository(client), metricsSvc, cfg.Cache.TTL, logr)
		}
	}

	tokens := service.NewTokenService(service.TokenConfig{Secret: cfg.JWT.Secret, Expiration: cfg.JWT.Expiration})
	authSvc := service.NewAuthService(repository.NewUserRepository(db), tokens, logr)

	payloads, err := service.NewPayloadValidator()
	if err != nil {
		logr.Sugar().Fatalw("validator setup failed", "error", err)
	}

	deps := service.ResourceDeps{
		Payloads:   payloads,
		References: service.NewReferenceValidator(repository.NewReferenceRepository(db, metricsSvc), logr),
		Cache:      cacheSvc,
		Logger:     logr,
	}

	schoolRepo := repository.NewCRUDRepository[models.School](db, models.SchoolSchema, metricsSvc)
	branchRepo := repository.NewCRUDRepository[models.Branch](db, models.BranchSchema, metricsSvc)

	schools := service.NewResourceService[models.School](schoolRepo, service.SchoolChecks, deps)
	branches := service.NewResourceService[models.Branch](branchRepo, service.BranchChecks, deps)
	teachers := service.NewResourceService[models.Teacher](
		repository.NewCRUDRepository[models.Teacher](db, models.TeacherSchema, metricsSvc), service.TeacherChecks, deps)
	students := service.NewResourceService[models.Student](
		repository.NewCRUDRepository[models.Student](db, models.StudentSchema, metricsSvc), service.StudentChecks, deps)
	classes := service.NewResourceService[models.Class](
		repository.NewCRUDRepository[models.Class](db, models.ClassSchema, metricsSvc), service.ClassChecks, deps)
	schedules := service.NewResourceService[models.Schedule](
		repository.NewCRUDRepository[models.Schedule](db, models.ScheduleSchema, metricsSvc), service.ScheduleChecks, deps)

	if cfg.Seed.DemoData {
		seeder := service.NewSeedService(authSvc, schoolRepo, branchRepo, logr)
		if err := seeder.Run(ctx); err != nil {
			logr.Sugar().Fatalw("demo seed failed", "error", err)
		}
	}

	exports := service.NewExportService(export.NewCSVExporter(), export.NewPDFExporter(), logr)

	handlers := router.Handlers{
		Auth:   handler.NewAuthHandler(authSvc),
		Health: handler.NewMetricsHandler(metricsSvc, db),
		Resources: []router.Resource{
			{Table: models.SchoolSchema.Table, Handler: handler.NewResourceHandler[models.School](schools, exports)},
			{Table: models.BranchSchema.Table, Handler: handler.NewResourceHandler[models.Branch](branches, exports)},
			{Table: models.TeacherSchema.Table, Handler: handler.NewResourceHandler[models.Teacher](teachers, exports)},
			{Table: models.StudentSchema.Table, Handler: handler.NewResourceHandler[models.Student](students, exports)},
			{Table: models.ClassSchema.Table, Handler: handler.NewResourceHandler[models.Class](classes, exports)},
			{Table: models.ScheduleSchema.Table, Handler: handler.NewResourceHandler[models.Schedule](schedules, exports)},
		},
	}

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Handler:           router.Setup(cfg, logr, tokens, metricsSvc, handlers),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go serve(srv, logr, cfg)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logr.Info("shutting down", zap.String("signal", sig.String()))

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("http server shutdown", zap.Error(err))
	}
}

func serve(srv *http.Server, logr *zap.Logger, cfg *config.Config) {
	logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env, "driver", cfg.Database.Driver)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

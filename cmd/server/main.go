package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"

	"cropcare/config"
	"cropcare/database"
	"cropcare/pkg/logging"
	"cropcare/pkg/middleware"
	"cropcare/pkg/reftable"
	"cropcare/pkg/upload"
	"cropcare/router"

	// Admin
	adminCtrlImp "cropcare/pkg/admin/controllerImp"

	// Auth / users
	authCtrlImp "cropcare/pkg/auth/controllerImp"
	authSvcImp "cropcare/pkg/auth/serviceImp"
	userRepoImp "cropcare/pkg/user/repositoryImp"

	// Sessions
	sessionRepo "cropcare/pkg/session/repository"
	sessionRepoImp "cropcare/pkg/session/repositoryImp"

	// Crops / soil / recommendation
	cropCtrlImp "cropcare/pkg/crop/controllerImp"
	cropRepoImp "cropcare/pkg/crop/repositoryImp"
	cropSvcImp "cropcare/pkg/crop/serviceImp"
	recCtrlImp "cropcare/pkg/recommend/controllerImp"
	recSvcImp "cropcare/pkg/recommend/serviceImp"
	soilRepoImp "cropcare/pkg/soil/repositoryImp"

	// Feedback
	fbCtrlImp "cropcare/pkg/feedback/controllerImp"
	fbRepoImp "cropcare/pkg/feedback/repositoryImp"
	fbSvcImp "cropcare/pkg/feedback/serviceImp"

	// Health
	healthCtrlImp "cropcare/pkg/health/controllerImp"
)

func main() {
	// 1) Config + logging
	cfg := config.Load()
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

// run owns every resource it opens, so deferred cleanup happens before main
// exits on error.
func run(cfg config.AppConfig) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2) DB + automigrate
	db, err := database.Open(cfg.DBDriver, cfg.DBPath, cfg.DBDSN)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	// 3) Upload storage
	var store upload.Storage = upload.NewLocal(cfg.StaticDir)
	if cfg.MinIOEndpoint != "" {
		m, err := upload.NewMinIO(ctx, cfg.MinIOEndpoint, cfg.MinIOAccessKey, cfg.MinIOSecretKey, cfg.MinIOBucket, cfg.MinIOUseSSL, cfg.MinIOPublicBase)
		if err != nil {
			return fmt.Errorf("minio: %w", err)
		}
		store = m
		log.WithField("bucket", cfg.MinIOBucket).Info("uploads go to MinIO")
	}

	// 4) Session store (redis when configured, else the database + sweeper)
	var sessStore sessionRepo.SessionStore
	if cfg.RedisAddr != "" {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		rs, err := sessionRepoImp.NewRedisStore(pingCtx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.SessionTTL)
		cancel()
		if err != nil {
			return fmt.Errorf("redis: %w", err)
		}
		defer rs.Close()
		sessStore = rs
	} else {
		gs := sessionRepoImp.NewGormStore(db, cfg.SessionTTL)
		sweeper, err := sessionRepoImp.StartSweeper(cfg.SessionSweep, gs)
		if err != nil {
			return fmt.Errorf("session sweeper: %w", err)
		}
		defer sweeper.Stop()
		sessStore = gs
	}
	sessions := middleware.NewSessions(sessStore, cfg.SessionCookie, cfg.SessionTTL)

	// 5) Repos / services
	soilRepo := soilRepoImp.New(db)
	cropRepo := cropRepoImp.New(db)
	cropSvc := cropSvcImp.NewCropService(cropRepo, store)
	recSvc := recSvcImp.NewRecommendService(soilRepo, cropRepo)
	authSvc := authSvcImp.NewAuthService(userRepoImp.New(db), userRepoImp.NewAdmin(db))
	fbSvc := fbSvcImp.NewFeedbackService(fbRepoImp.New(db), store)

	// 6) Reference data + default admin
	if _, err := reftable.SeedSoil(ctx, soilRepo, cfg.SoilSeedFile, false); err != nil {
		return fmt.Errorf("seed soil: %w", err)
	}
	if _, err := reftable.SeedCrops(ctx, cropSvc, cfg.CropSeedFile, false); err != nil {
		return fmt.Errorf("seed crops: %w", err)
	}
	if _, err := authSvc.EnsureAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword, false); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	// 7) Echo
	e := echo.New()
	e.HideBanner = true
	e.Validator = middleware.NewValidator()
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.RequestIDWithConfig(echoMiddleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(echoMiddleware.BodyLimit(cfg.UploadMax))
	e.Use(middleware.Metrics())
	e.Use(middleware.RequestLog())

	if _, err := os.Stat(filepath.Join(cfg.StaticDir, "index.html")); err != nil {
		log.Warnf("static index not found: %v", err)
	}

	// 8) Controllers + router
	r := router.New(
		e,
		router.Options{StaticDir: cfg.StaticDir, AuthRateLimit: cfg.AuthRateLimit},
		sessions,
		authCtrlImp.NewAuthController(authSvc, sessions),
		recCtrlImp.NewRecommendController(recSvc),
		fbCtrlImp.NewFeedbackController(fbSvc),
		cropCtrlImp.NewCropController(cropSvc),
		adminCtrlImp.NewAdminController(authSvc, cropSvc, fbSvc),
		healthCtrlImp.NewHealthCtrl(db, sessStore),
	)

	// 9) Start / graceful stop
	serveErr := make(chan error, 1)
	go func() {
		log.Infof("listening on :%s", cfg.Port)
		if err := r.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server: %w", err)
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := r.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("shutdown")
	}
	log.Info("stopped")
	return nil
}

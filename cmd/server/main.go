package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gamesrank/backend/internal/app"
	"gamesrank/backend/internal/auth"
	"gamesrank/backend/internal/config"
	"gamesrank/backend/internal/handler"
	"gamesrank/backend/internal/hub"
	"gamesrank/backend/internal/logging"
	"gamesrank/backend/internal/metrics"
	"gamesrank/backend/internal/router"
	"gamesrank/backend/internal/scheduler"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	// Swagger imports
	_ "gamesrank/backend/docs" // This is important for swag to find the generated docs
)

func init() {
	config.LoadConfig()
}

// @title           Gamesrank API
// @version         1.0
// @description     Board game catalog with user tier-list rankings, ratings and statistics.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.AppConfig

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.JWTSecret == "" {
		logger.Fatal("JWT_SECRET is not set")
	}

	ctx := context.Background()
	a, err := app.Open(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to open stores", zap.Error(err))
	}

	if err := auth.EnsureAdmin(ctx, a.Users, cfg.AdminEmail, cfg.AdminPassword, logger); err != nil {
		logger.Fatal("Failed to bootstrap admin", zap.Error(err))
	}

	activity := hub.NewHub()
	m := metrics.New()
	h := &handler.Handler{
		Users:      a.Users,
		Games:      a.Games,
		Categories: a.Categories,
		Rankings:   a.Rankings,
		Ratings:    a.Ratings,
		Catalog:    a.Catalog,
		Hub:        activity,
		Metrics:    m,
		Log:        logger,
	}

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := router.Setup(h, auth.PerMinute(cfg.LoginRatePerMinute))

	sched := scheduler.New(logger)
	if cfg.SyncSchedule != "" {
		if err := sched.ScheduleSync(cfg.SyncSchedule, a.Catalog, h.RecordSync); err != nil {
			logger.Fatal("Failed to schedule sync", zap.Error(err))
		}
	}
	sched.Start()

	// Cancelled on shutdown so open activity streams end instead of holding Shutdown.
	baseCtx, stopStreams := context.WithCancel(context.Background())
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return baseCtx },
	}
	server.RegisterOnShutdown(stopStreams)

	go func() {
		logger.Info("Server is running", zap.String("addr", server.Addr))
		logger.Info("Swagger UI is available at http://localhost:" + cfg.Port + "/swagger/index.html")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down")
	sched.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}
	if err := a.Close(shutdownCtx); err != nil {
		logger.Error("Failed to close connections", zap.Error(err))
	}
	logger.Info("Server stopped")
}

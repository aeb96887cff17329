package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/staffledger/api/audit"
	"github.com/staffledger/api/config"
	"github.com/staffledger/api/controller"
	"github.com/staffledger/api/db"
	logger "github.com/staffledger/api/logging"
	"github.com/staffledger/api/metrics"
	"github.com/staffledger/api/middleware"
	"github.com/staffledger/api/router"
	"github.com/staffledger/api/service"
	"github.com/staffledger/api/util"
)

func main() {
	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	// Initialize logger
	if err := logger.InitLogger(cfg.Log.Dir, cfg.Log.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize primary store
	gormDB, err := db.InitPostgres(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to initialize primary store", zap.Error(err))
	}
	defer db.ClosePostgres(gormDB)

	// Initialize Redis for the cache and rate limiter, when either is on
	var (
		redisCache *db.RedisCache
		limiter    middleware.Limiter
	)
	if cfg.NeedsRedis() {
		redisClient, err := db.InitRedis(cfg.Redis)
		if err != nil {
			logger.Fatal("Failed to initialize Redis", zap.Error(err))
		}
		defer db.CloseRedis(redisClient)

		store, err := db.NewRedisCache(redisClient, cfg.Redis.EncryptionKey, cfg.Cache.TTL)
		if err != nil {
			logger.Fatal("Failed to initialize Redis cache", zap.Error(err))
		}
		if cfg.Cache.Enabled {
			redisCache = store
		}
		if cfg.RateLimit.Enabled {
			limiter = store
		}
	}

	// Initialize audit log
	auditRepository, err := audit.NewRepository(cfg.AuditLog)
	if err != nil {
		logger.Fatal("Failed to initialize audit log", zap.Error(err))
	}
	if closer, ok := auditRepository.(io.Closer); ok {
		defer closer.Close()
	}
	auditService := audit.NewService(auditRepository)

	ensureCtx, ensureCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := auditService.EnsureTable(ensureCtx); err != nil {
		// mutations still succeed against the primary store and report the log failure
		logger.Warn("Failed to prepare audit log table",
			zap.Error(err),
			zap.String("backend", cfg.AuditLog.Backend),
			zap.String("table", cfg.AuditLog.Table))
	}
	ensureCancel()

	// Initialize metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.New(registry)

	// Initialize services and controllers
	services := service.InitializeServices(
		gormDB,
		auditService,
		util.NewValidationUtil(),
		util.NewCacheService(redisCache),
		appMetrics,
	)
	controllers := controller.InitializeControllers(services)

	// Set up Gin
	gin.SetMode(cfg.Server.Mode)
	engine := router.SetupRouter(controllers, registry, limiter, cfg.RateLimit)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: engine,
	}

	go func() {
		logger.Info("Starting server", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// The server has 5 seconds to finish in-flight requests
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exiting")
}

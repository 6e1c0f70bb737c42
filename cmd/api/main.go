package main

// @title Buffer Widget Service API
// @version 1.0.0
// @description Service backing a measured-buffer map widget. The host map binds its context to discover queryable feature layers, the user sketches a point, polyline or polygon, the sketch is buffered at a configurable distance, and the buffer is intersected against every selected layer concurrently.
// @description
// @description Main capabilities:
// @description - Map context binding and layer discovery
// @description - Sketch lifecycle with draw tokens and clear-wins semantics
// @description - Geodesic buffering of drawn geometry
// @description - Concurrent multi-layer intersection runs with per-layer error isolation
// @description - Asynchronous runs over Redis streams

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/hatamimatt/SCDOT-BufferWidget/docs/swagger"
	"github.com/hatamimatt/SCDOT-BufferWidget/internal/config"
	httpDelivery "github.com/hatamimatt/SCDOT-BufferWidget/internal/delivery/http"
	"github.com/hatamimatt/SCDOT-BufferWidget/internal/delivery/http/handler"
	"github.com/hatamimatt/SCDOT-BufferWidget/internal/infrastructure/featureservice"
	"github.com/hatamimatt/SCDOT-BufferWidget/internal/pkg/logger"
	"github.com/hatamimatt/SCDOT-BufferWidget/internal/repository/cache"
	"github.com/hatamimatt/SCDOT-BufferWidget/internal/repository/postgres"
	redisRepo "github.com/hatamimatt/SCDOT-BufferWidget/internal/repository/redis"
	"github.com/hatamimatt/SCDOT-BufferWidget/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Buffer Widget Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostGIS
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostGIS", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostGIS connection", zap.Error(err))
		}
	}()

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostGIS health check failed", zap.Error(err))
	}

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize repositories
	geometryRepo := postgres.NewGeometryRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)
	queryRepo := featureservice.NewClient(&cfg.Query, log)

	log.Info("Repositories initialized")

	// 7. Initialize use cases
	bufferUC := usecase.NewBufferUseCase(geometryRepo, log)
	sketchUC := usecase.NewSketchUseCase(bufferUC, log)
	registryUC := usecase.NewRegistryUseCase(log)

	executor := usecase.NewRunExecutor(queryRepo, cacheRepo, &cfg.Query, log)
	intersectionUC := usecase.NewIntersectionUseCase(executor, sketchUC, registryUC, streamRepo, log)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP handlers
	layerHandler := handler.NewLayerHandler(registryUC, sketchUC, log)
	sketchHandler := handler.NewSketchHandler(sketchUC, log)
	intersectionHandler := handler.NewIntersectionHandler(intersectionUC, log)

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		layerHandler,
		sketchHandler,
		intersectionHandler,
	)

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}

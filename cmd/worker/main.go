package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/hatamimatt/SCDOT-BufferWidget/internal/config"
	"github.com/hatamimatt/SCDOT-BufferWidget/internal/infrastructure/featureservice"
	"github.com/hatamimatt/SCDOT-BufferWidget/internal/pkg/logger"
	"github.com/hatamimatt/SCDOT-BufferWidget/internal/repository/cache"
	redisRepo "github.com/hatamimatt/SCDOT-BufferWidget/internal/repository/redis"
	"github.com/hatamimatt/SCDOT-BufferWidget/internal/usecase"
	"github.com/hatamimatt/SCDOT-BufferWidget/internal/worker"
	"github.com/hatamimatt/SCDOT-BufferWidget/internal/worker/intersection"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Check if worker is enabled
	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Intersection Run Worker")
	log.Info("Configuration loaded",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.Duration("query_timeout", cfg.Query.Timeout),
		zap.Int("max_concurrent", cfg.Query.MaxConcurrent))

	// 3. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 4. Initialize repositories
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)
	queryRepo := featureservice.NewClient(&cfg.Query, log)

	// 5. Initialize executor
	executor := usecase.NewRunExecutor(queryRepo, cacheRepo, &cfg.Query, log)

	// 6. Initialize workers
	runWorker := intersection.NewRunWorker(
		streamRepo,
		executor,
		cfg.Worker.ConsumerGroup,
		log,
	)

	// 7. Create worker manager and register workers
	workerManager := worker.NewWorkerManager(log)
	workerManager.Register(runWorker)

	// 8. Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start workers
	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	// Cancel context to stop workers
	cancel()

	// Stop worker manager
	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}

	log.Info("Worker shutdown complete")
}

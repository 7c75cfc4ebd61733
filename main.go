// main.go
package main

import (
	"context"
	"log"

	"github.com/Tastrnet/mainversion-sub000/cmd"
	"github.com/Tastrnet/mainversion-sub000/internal/data/repository"
	"github.com/Tastrnet/mainversion-sub000/internal/wire"
	"github.com/Tastrnet/mainversion-sub000/internal/worker"
	"github.com/Tastrnet/mainversion-sub000/pkg/cache"
	"github.com/Tastrnet/mainversion-sub000/pkg/database"
	"github.com/Tastrnet/mainversion-sub000/pkg/storage"
	"github.com/Tastrnet/mainversion-sub000/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Redis is optional: without it reads simply skip the cache
	redisCache, err := cache.InitRedis(config.Redis, logger)
	if err != nil {
		logger.Warn("Redis unavailable, running without cache", zap.Error(err))
	}

	// S3 media storage for avatar and review photo buckets
	media, err := storage.NewMediaStorage(config.Storage, logger)
	if err != nil {
		logger.Fatal("Failed to init media storage", zap.Error(err))
	}

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, redisCache, media, config, logger)

	// Background maintenance: expired sessions, stale rating rollups
	maintenance := worker.NewMaintenance(repos, config.Worker.Interval(), logger)
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	go maintenance.Run(workerCtx)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}

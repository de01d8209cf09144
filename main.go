// main.go
package main

import (
	"log"

	"restaurant-reviews/cmd"
	"restaurant-reviews/internal/data/repository"
	"restaurant-reviews/internal/wire"
	"restaurant-reviews/pkg/utils"

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
		zap.Bool("debug", config.App.Debug),
	)

	// Initialize the in-memory registries
	repos := repository.NewRepository(logger)

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger)

	if config.Demo.Seed {
		if err := cmd.RunDemo(app); err != nil {
			logger.Fatal("Demo run failed", zap.Error(err))
		}
	}

	logger.Info("Done")
}

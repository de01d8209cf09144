// internal/wire/wire.go
package wire

import (
	"restaurant-reviews/internal/data/repository"
	"restaurant-reviews/internal/usecase"
	"restaurant-reviews/pkg/utils"

	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Service *usecase.Service
	Logger  *zap.Logger
}

// Wiring initializes all dependencies
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, logger)

	return &App{
		Service: service,
		Logger:  logger,
	}
}

package usecase

import (
	"restaurant-reviews/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Customer   CustomerService
	Restaurant RestaurantService
	Review     ReviewService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Customer:   NewCustomerService(repo, log),
		Restaurant: NewRestaurantService(repo, log),
		Review:     NewReviewService(repo, log),
	}
}

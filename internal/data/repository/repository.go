package repository

import (
	"go.uber.org/zap"
)

// Repository aggregates the per-entity registries. Each registry is
// process-wide, append-only state: entities are registered on creation and
// never updated or removed. Construct a fresh Repository per process (or per
// test) and pass it down explicitly.
type Repository struct {
	Customer   CustomerRepository
	Restaurant RestaurantRepository
	Review     ReviewRepository
}

func NewRepository(log *zap.Logger) *Repository {
	return &Repository{
		Customer:   NewCustomerRepository(log),
		Restaurant: NewRestaurantRepository(log),
		Review:     NewReviewRepository(log),
	}
}

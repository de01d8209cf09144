package repository

import (
	"context"
	"sync"

	"restaurant-reviews/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *entity.Restaurant) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error)
	All(ctx context.Context) ([]*entity.Restaurant, error)
	Count(ctx context.Context) (int64, error)
}

type restaurantRepository struct {
	mu   sync.RWMutex
	all  []*entity.Restaurant
	byID map[uuid.UUID]*entity.Restaurant
	log  *zap.Logger
}

func NewRestaurantRepository(log *zap.Logger) RestaurantRepository {
	return &restaurantRepository{
		byID: make(map[uuid.UUID]*entity.Restaurant),
		log:  log.With(zap.String("repository", "restaurant")),
	}
}

func (r *restaurantRepository) Create(ctx context.Context, restaurant *entity.Restaurant) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.all = append(r.all, restaurant)
	r.byID[restaurant.ID] = restaurant

	r.log.Debug("Restaurant registered",
		zap.String("restaurant_id", restaurant.ID.String()),
		zap.String("name", restaurant.Name),
	)

	return nil
}

func (r *restaurantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	restaurant, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return restaurant, nil
}

// All returns every registered restaurant in insertion order. Ranking relies
// on this order for its tie-break, so it must stay stable.
func (r *restaurantRepository) All(ctx context.Context) ([]*entity.Restaurant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	restaurants := make([]*entity.Restaurant, len(r.all))
	copy(restaurants, r.all)
	return restaurants, nil
}

func (r *restaurantRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.all)), nil
}

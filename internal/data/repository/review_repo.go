package repository

import (
	"context"
	"sync"

	"restaurant-reviews/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	FindByCustomerID(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*entity.Review, error)
	FindByRestaurantID(ctx context.Context, restaurantID uuid.UUID, limit, offset int) ([]*entity.Review, error)
	FindByCustomerAndRestaurant(ctx context.Context, customerID, restaurantID uuid.UUID) (*entity.Review, error)
	CountByCustomerID(ctx context.Context, customerID uuid.UUID) (int64, error)
	CountByRestaurantID(ctx context.Context, restaurantID uuid.UUID) (int64, error)

	// Business queries
	CountNegativeByCustomerID(ctx context.Context, customerID uuid.UUID) (int64, error)
	GetRestaurantAverageRating(ctx context.Context, restaurantID uuid.UUID) (float64, error)
	GetRestaurantReviewStats(ctx context.Context, restaurantID uuid.UUID) (float64, int64, error) // rating, count
}

// reviewRepository keeps the registry slice in insertion order and maintains
// secondary indices (positions into the slice) per customer and restaurant,
// so relationship queries do not scan the whole registry. Reviews are
// immutable once registered: no Update, no Delete.
type reviewRepository struct {
	mu           sync.RWMutex
	all          []*entity.Review
	byID         map[uuid.UUID]*entity.Review
	byCustomer   map[uuid.UUID][]int
	byRestaurant map[uuid.UUID][]int
	log          *zap.Logger
}

func NewReviewRepository(log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		byID:         make(map[uuid.UUID]*entity.Review),
		byCustomer:   make(map[uuid.UUID][]int),
		byRestaurant: make(map[uuid.UUID][]int),
		log:          log.With(zap.String("repository", "review")),
	}
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	pos := len(r.all)
	r.all = append(r.all, review)
	r.byID[review.ID] = review
	r.byCustomer[review.CustomerID] = append(r.byCustomer[review.CustomerID], pos)
	r.byRestaurant[review.RestaurantID] = append(r.byRestaurant[review.RestaurantID], pos)

	r.log.Debug("Review registered",
		zap.String("review_id", review.ID.String()),
		zap.String("customer_id", review.CustomerID.String()),
		zap.String("restaurant_id", review.RestaurantID.String()),
		zap.Int("rating", review.Rating),
	)

	return nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	review, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return review, nil
}

// FindByCustomerID returns the customer's reviews in registry insertion
// order. limit <= 0 means no limit.
func (r *reviewRepository) FindByCustomerID(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*entity.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.slicePositions(r.byCustomer[customerID], limit, offset), nil
}

// FindByRestaurantID returns the restaurant's reviews in registry insertion
// order. limit <= 0 means no limit.
func (r *reviewRepository) FindByRestaurantID(ctx context.Context, restaurantID uuid.UUID, limit, offset int) ([]*entity.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.slicePositions(r.byRestaurant[restaurantID], limit, offset), nil
}

// FindByCustomerAndRestaurant returns the customer's earliest review of the
// restaurant, or nil if the customer never reviewed it.
func (r *reviewRepository) FindByCustomerAndRestaurant(ctx context.Context, customerID, restaurantID uuid.UUID) (*entity.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, pos := range r.byCustomer[customerID] {
		if r.all[pos].RestaurantID == restaurantID {
			return r.all[pos], nil
		}
	}
	return nil, nil
}

func (r *reviewRepository) CountByCustomerID(ctx context.Context, customerID uuid.UUID) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.byCustomer[customerID])), nil
}

func (r *reviewRepository) CountByRestaurantID(ctx context.Context, restaurantID uuid.UUID) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.byRestaurant[restaurantID])), nil
}

func (r *reviewRepository) CountNegativeByCustomerID(ctx context.Context, customerID uuid.UUID) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, pos := range r.byCustomer[customerID] {
		if r.all[pos].Negative() {
			count++
		}
	}
	return count, nil
}

// GetRestaurantAverageRating returns the unrounded mean rating, or 0 when
// the restaurant has no reviews.
func (r *reviewRepository) GetRestaurantAverageRating(ctx context.Context, restaurantID uuid.UUID) (float64, error) {
	avg, _, err := r.GetRestaurantReviewStats(ctx, restaurantID)
	return avg, err
}

func (r *reviewRepository) GetRestaurantReviewStats(ctx context.Context, restaurantID uuid.UUID) (float64, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	positions := r.byRestaurant[restaurantID]
	if len(positions) == 0 {
		return 0, 0, nil
	}

	var sum int
	for _, pos := range positions {
		sum += r.all[pos].Rating
	}
	return float64(sum) / float64(len(positions)), int64(len(positions)), nil
}

// slicePositions materializes an index window into review pointers.
// Callers must hold at least the read lock.
func (r *reviewRepository) slicePositions(positions []int, limit, offset int) []*entity.Review {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(positions) {
		return nil
	}

	window := positions[offset:]
	if limit > 0 && limit < len(window) {
		window = window[:limit]
	}

	reviews := make([]*entity.Review, len(window))
	for i, pos := range window {
		reviews[i] = r.all[pos]
	}
	return reviews
}

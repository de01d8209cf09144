package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"

	"restaurant-reviews/internal/data/entity"
	"restaurant-reviews/internal/data/repository"
	"restaurant-reviews/internal/dto/request"
	"restaurant-reviews/internal/dto/response"
	"restaurant-reviews/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RestaurantService interface {
	CreateRestaurant(ctx context.Context, req *request.CreateRestaurantRequest) (*response.RestaurantResponse, error)
	GetRestaurantReviews(ctx context.Context, restaurantID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error)
	GetRestaurantCustomers(ctx context.Context, restaurantID string) ([]response.CustomerResponse, error)
	GetAverageStarRating(ctx context.Context, restaurantID string) (float64, error)

	// Stats
	GetReviewStats(ctx context.Context, restaurantID string) (*response.RestaurantReviewStats, error)
	TopTwoRestaurants(ctx context.Context) ([]response.RankedRestaurant, error)
}

type restaurantService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRestaurantService(repo *repository.Repository, log *zap.Logger) RestaurantService {
	return &restaurantService{
		repo: repo,
		log:  log.With(zap.String("service", "restaurant")),
	}
}

// CreateRestaurant validates the name and registers the restaurant.
func (s *restaurantService) CreateRestaurant(ctx context.Context, req *request.CreateRestaurantRequest) (*response.RestaurantResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create restaurant validation failed", zap.Any("errors", errs))
		return nil, utils.NewValidationError(errs)
	}

	restaurant := &entity.Restaurant{
		BaseSimple: entity.NewBaseSimple(),
		Name:       req.Name,
	}

	if err := s.repo.Restaurant.Create(ctx, restaurant); err != nil {
		s.log.Error("Failed to create restaurant", zap.Error(err))
		return nil, fmt.Errorf("create restaurant: %w", err)
	}

	s.log.Info("Restaurant created",
		zap.String("restaurant_id", restaurant.ID.String()),
		zap.String("name", restaurant.Name),
	)

	restaurantResp := response.RestaurantToResponse(restaurant)
	return &restaurantResp, nil
}

// GetRestaurantReviews lists the restaurant's reviews in registry insertion
// order, paginated.
func (s *restaurantService) GetRestaurantReviews(ctx context.Context, restaurantID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error) {
	restaurant, restaurantUUID, err := s.findRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	reviews, err := s.repo.Review.FindByRestaurantID(ctx, restaurantUUID, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get restaurant reviews",
			zap.Error(err),
			zap.String("restaurant_id", restaurantID),
		)
		return nil, fmt.Errorf("get restaurant reviews: %w", err)
	}

	total, err := s.repo.Review.CountByRestaurantID(ctx, restaurantUUID)
	if err != nil {
		return nil, fmt.Errorf("count restaurant reviews: %w", err)
	}

	reviewResponses := make([]response.ReviewResponse, len(reviews))
	for i, review := range reviews {
		customer, _ := s.repo.Customer.FindByID(ctx, review.CustomerID)
		customerName := ""
		if customer != nil {
			customerName = customer.FullName()
		}

		reviewResponses[i] = response.ReviewToResponse(review, customerName, restaurant.Name)
	}

	return response.NewPaginatedResponse(reviewResponses, req.Page, req.PerPage, total), nil
}

// GetRestaurantCustomers returns the distinct customers who reviewed the
// restaurant, ordered by first review. Repeat reviewers appear once.
func (s *restaurantService) GetRestaurantCustomers(ctx context.Context, restaurantID string) ([]response.CustomerResponse, error) {
	_, restaurantUUID, err := s.findRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	reviews, err := s.repo.Review.FindByRestaurantID(ctx, restaurantUUID, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("get restaurant reviews: %w", err)
	}

	seen := make(map[uuid.UUID]bool)
	var customers []response.CustomerResponse
	for _, review := range reviews {
		if seen[review.CustomerID] {
			continue
		}
		seen[review.CustomerID] = true

		customer, err := s.repo.Customer.FindByID(ctx, review.CustomerID)
		if err != nil || customer == nil {
			continue
		}
		customers = append(customers, response.CustomerToResponse(customer))
	}

	return customers, nil
}

// GetAverageStarRating returns the mean rating rounded to one decimal place,
// or 0.0 for a restaurant with no reviews.
func (s *restaurantService) GetAverageStarRating(ctx context.Context, restaurantID string) (float64, error) {
	_, restaurantUUID, err := s.findRestaurant(ctx, restaurantID)
	if err != nil {
		return 0, err
	}

	avg, err := s.repo.Review.GetRestaurantAverageRating(ctx, restaurantUUID)
	if err != nil {
		return 0, fmt.Errorf("get restaurant average rating: %w", err)
	}
	return roundToOneDecimal(avg), nil
}

func (s *restaurantService) GetReviewStats(ctx context.Context, restaurantID string) (*response.RestaurantReviewStats, error) {
	_, restaurantUUID, err := s.findRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	avg, count, err := s.repo.Review.GetRestaurantReviewStats(ctx, restaurantUUID)
	if err != nil {
		s.log.Error("Failed to get restaurant review stats",
			zap.Error(err),
			zap.String("restaurant_id", restaurantID),
		)
		return nil, fmt.Errorf("get restaurant review stats: %w", err)
	}

	return &response.RestaurantReviewStats{
		AverageRating: roundToOneDecimal(avg),
		ReviewCount:   count,
	}, nil
}

// TopTwoRestaurants ranks all restaurants descending by average star rating
// and returns the first two (fewer if fewer exist). The sort is stable over
// registry insertion order, so on a tie the earlier-created restaurant wins.
func (s *restaurantService) TopTwoRestaurants(ctx context.Context) ([]response.RankedRestaurant, error) {
	restaurants, err := s.repo.Restaurant.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}

	ranked := make([]response.RankedRestaurant, len(restaurants))
	for i, restaurant := range restaurants {
		avg, err := s.repo.Review.GetRestaurantAverageRating(ctx, restaurant.ID)
		if err != nil {
			return nil, fmt.Errorf("get restaurant average rating: %w", err)
		}
		ranked[i] = response.RankedRestaurant{
			RestaurantResponse: response.RestaurantToResponse(restaurant),
			AverageRating:      roundToOneDecimal(avg),
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].AverageRating > ranked[j].AverageRating
	})

	if len(ranked) > 2 {
		ranked = ranked[:2]
	}

	s.log.Debug("Top restaurants computed", zap.Int("count", len(ranked)))
	return ranked, nil
}

func (s *restaurantService) findRestaurant(ctx context.Context, restaurantID string) (*entity.Restaurant, uuid.UUID, error) {
	restaurantUUID, err := uuid.Parse(restaurantID)
	if err != nil {
		return nil, uuid.Nil, fmt.Errorf("invalid restaurant ID format %s: %w", restaurantID, err)
	}

	restaurant, err := s.repo.Restaurant.FindByID(ctx, restaurantUUID)
	if err != nil {
		return nil, uuid.Nil, fmt.Errorf("find restaurant by ID %s: %w", restaurantID, err)
	}
	if restaurant == nil {
		return nil, uuid.Nil, fmt.Errorf("restaurant %s not found", restaurantID)
	}
	return restaurant, restaurantUUID, nil
}

func roundToOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}

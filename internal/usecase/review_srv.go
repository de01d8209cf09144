package usecase

import (
	"context"
	"fmt"

	"restaurant-reviews/internal/data/entity"
	"restaurant-reviews/internal/data/repository"
	"restaurant-reviews/internal/dto/request"
	"restaurant-reviews/internal/dto/response"
	"restaurant-reviews/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewService interface {
	CreateReview(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

// CreateReview validates the rating and both references, then registers an
// immutable review. The rating is fixed at construction; the repository
// exposes no way to change it afterwards. A customer may review the same
// restaurant more than once; distinct-set queries collapse the duplicates.
func (s *reviewService) CreateReview(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
		return nil, utils.NewValidationError(errs)
	}

	customerUUID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("invalid customer ID format %s: %w", req.CustomerID, err)
	}

	restaurantUUID, err := uuid.Parse(req.RestaurantID)
	if err != nil {
		return nil, fmt.Errorf("invalid restaurant ID format %s: %w", req.RestaurantID, err)
	}

	// Both references must point at registered entities
	customer, err := s.repo.Customer.FindByID(ctx, customerUUID)
	if err != nil {
		return nil, fmt.Errorf("find customer by ID %s: %w", req.CustomerID, err)
	}
	if customer == nil {
		return nil, utils.FieldValidationError("CustomerID", "Customer does not exist")
	}

	restaurant, err := s.repo.Restaurant.FindByID(ctx, restaurantUUID)
	if err != nil {
		return nil, fmt.Errorf("find restaurant by ID %s: %w", req.RestaurantID, err)
	}
	if restaurant == nil {
		return nil, utils.FieldValidationError("RestaurantID", "Restaurant does not exist")
	}

	review := &entity.Review{
		BaseSimple:   entity.NewBaseSimple(),
		CustomerID:   customerUUID,
		RestaurantID: restaurantUUID,
		Rating:       req.Rating,
		Comment:      req.Comment,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		s.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("customer_id", req.CustomerID),
			zap.String("restaurant_id", req.RestaurantID),
		)
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.log.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.String("customer_id", req.CustomerID),
		zap.String("restaurant_id", req.RestaurantID),
		zap.Int("rating", req.Rating),
	)

	reviewResp := response.ReviewToResponse(review, customer.FullName(), restaurant.Name)
	return &reviewResp, nil
}

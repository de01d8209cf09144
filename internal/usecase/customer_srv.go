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

type CustomerService interface {
	CreateCustomer(ctx context.Context, req *request.CreateCustomerRequest) (*response.CustomerResponse, error)
	GetCustomerReviews(ctx context.Context, customerID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error)
	GetCustomerRestaurants(ctx context.Context, customerID string) ([]response.RestaurantResponse, error)
	CountNegativeReviews(ctx context.Context, customerID string) (int64, error)
	HasReviewedRestaurant(ctx context.Context, customerID, restaurantID string) (bool, error)
}

type customerService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCustomerService(repo *repository.Repository, log *zap.Logger) CustomerService {
	return &customerService{
		repo: repo,
		log:  log.With(zap.String("service", "customer")),
	}
}

// CreateCustomer validates the names and registers the customer. On
// validation failure nothing is registered, so no partially initialized
// customer can be observed.
func (s *customerService) CreateCustomer(ctx context.Context, req *request.CreateCustomerRequest) (*response.CustomerResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create customer validation failed", zap.Any("errors", errs))
		return nil, utils.NewValidationError(errs)
	}

	customer := &entity.Customer{
		BaseSimple: entity.NewBaseSimple(),
		FirstName:  req.FirstName,
		LastName:   req.LastName,
	}

	if err := s.repo.Customer.Create(ctx, customer); err != nil {
		s.log.Error("Failed to create customer", zap.Error(err))
		return nil, fmt.Errorf("create customer: %w", err)
	}

	s.log.Info("Customer created",
		zap.String("customer_id", customer.ID.String()),
		zap.String("name", customer.FullName()),
	)

	customerResp := response.CustomerToResponse(customer)
	return &customerResp, nil
}

// GetCustomerReviews lists the customer's reviews in registry insertion
// order, paginated.
func (s *customerService) GetCustomerReviews(ctx context.Context, customerID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error) {
	customer, customerUUID, err := s.findCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	reviews, err := s.repo.Review.FindByCustomerID(ctx, customerUUID, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get customer reviews",
			zap.Error(err),
			zap.String("customer_id", customerID),
		)
		return nil, fmt.Errorf("get customer reviews: %w", err)
	}

	total, err := s.repo.Review.CountByCustomerID(ctx, customerUUID)
	if err != nil {
		return nil, fmt.Errorf("count customer reviews: %w", err)
	}

	reviewResponses := make([]response.ReviewResponse, len(reviews))
	for i, review := range reviews {
		restaurant, _ := s.repo.Restaurant.FindByID(ctx, review.RestaurantID)
		restaurantName := ""
		if restaurant != nil {
			restaurantName = restaurant.Name
		}

		reviewResponses[i] = response.ReviewToResponse(review, customer.FullName(), restaurantName)
	}

	return response.NewPaginatedResponse(reviewResponses, req.Page, req.PerPage, total), nil
}

// GetCustomerRestaurants returns the distinct restaurants the customer has
// reviewed, ordered by first review. Repeat reviews of the same restaurant
// collapse to one entry.
func (s *customerService) GetCustomerRestaurants(ctx context.Context, customerID string) ([]response.RestaurantResponse, error) {
	_, customerUUID, err := s.findCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	reviews, err := s.repo.Review.FindByCustomerID(ctx, customerUUID, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("get customer reviews: %w", err)
	}

	seen := make(map[uuid.UUID]bool)
	var restaurants []response.RestaurantResponse
	for _, review := range reviews {
		if seen[review.RestaurantID] {
			continue
		}
		seen[review.RestaurantID] = true

		restaurant, err := s.repo.Restaurant.FindByID(ctx, review.RestaurantID)
		if err != nil || restaurant == nil {
			continue
		}
		restaurants = append(restaurants, response.RestaurantToResponse(restaurant))
	}

	return restaurants, nil
}

// CountNegativeReviews counts the customer's reviews with rating 2 or less.
func (s *customerService) CountNegativeReviews(ctx context.Context, customerID string) (int64, error) {
	_, customerUUID, err := s.findCustomer(ctx, customerID)
	if err != nil {
		return 0, err
	}

	count, err := s.repo.Review.CountNegativeByCustomerID(ctx, customerUUID)
	if err != nil {
		return 0, fmt.Errorf("count negative reviews: %w", err)
	}
	return count, nil
}

// HasReviewedRestaurant reports whether any review links the customer to the
// restaurant.
func (s *customerService) HasReviewedRestaurant(ctx context.Context, customerID, restaurantID string) (bool, error) {
	_, customerUUID, err := s.findCustomer(ctx, customerID)
	if err != nil {
		return false, err
	}

	restaurantUUID, err := uuid.Parse(restaurantID)
	if err != nil {
		return false, fmt.Errorf("invalid restaurant ID format %s: %w", restaurantID, err)
	}

	review, err := s.repo.Review.FindByCustomerAndRestaurant(ctx, customerUUID, restaurantUUID)
	if err != nil {
		return false, fmt.Errorf("find review by customer and restaurant: %w", err)
	}
	return review != nil, nil
}

func (s *customerService) findCustomer(ctx context.Context, customerID string) (*entity.Customer, uuid.UUID, error) {
	customerUUID, err := uuid.Parse(customerID)
	if err != nil {
		return nil, uuid.Nil, fmt.Errorf("invalid customer ID format %s: %w", customerID, err)
	}

	customer, err := s.repo.Customer.FindByID(ctx, customerUUID)
	if err != nil {
		return nil, uuid.Nil, fmt.Errorf("find customer by ID %s: %w", customerID, err)
	}
	if customer == nil {
		return nil, uuid.Nil, fmt.Errorf("customer %s not found", customerID)
	}
	return customer, customerUUID, nil
}

package repository

import (
	"context"
	"sync"

	"restaurant-reviews/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	All(ctx context.Context) ([]*entity.Customer, error)
	Count(ctx context.Context) (int64, error)
}

type customerRepository struct {
	mu   sync.RWMutex
	all  []*entity.Customer
	byID map[uuid.UUID]*entity.Customer
	log  *zap.Logger
}

func NewCustomerRepository(log *zap.Logger) CustomerRepository {
	return &customerRepository{
		byID: make(map[uuid.UUID]*entity.Customer),
		log:  log.With(zap.String("repository", "customer")),
	}
}

func (r *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.all = append(r.all, customer)
	r.byID[customer.ID] = customer

	r.log.Debug("Customer registered",
		zap.String("customer_id", customer.ID.String()),
		zap.String("name", customer.FullName()),
	)

	return nil
}

func (r *customerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customer, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return customer, nil
}

// All returns every registered customer in insertion order.
func (r *customerRepository) All(ctx context.Context) ([]*entity.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customers := make([]*entity.Customer, len(r.all))
	copy(customers, r.all)
	return customers, nil
}

func (r *customerRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.all)), nil
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// BaseSimple is embedded by every entity. Registries never update or delete,
// so there is no UpdatedAt/DeletedAt.
type BaseSimple struct {
	ID        uuid.UUID
	CreatedAt time.Time
}

func NewBaseSimple() BaseSimple {
	return BaseSimple{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
	}
}

package entity

import (
	"github.com/google/uuid"
)

// Review joins exactly one customer and one restaurant. Rating is 1-5 and
// set once at construction; the repository exposes no update path.
type Review struct {
	BaseSimple
	CustomerID   uuid.UUID
	RestaurantID uuid.UUID
	Rating       int // 1-5
	Comment      *string
}

// Negative reports whether the review counts as negative (rating 2 or less).
func (r *Review) Negative() bool {
	return r.Rating <= 2
}

//go:build unit

package builder

import (
	"pistachiohut/internal/domain/review"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	ProductID uuid.UUID
	Rating    int32
	Approved  bool
}

func NewReviewBuilder() *ReviewBuilder {
	return &ReviewBuilder{
		ProductID: uuid.New(),
		Rating:    5,
		Approved:  true,
	}
}

func (r *ReviewBuilder) WithProductID(productID uuid.UUID) *ReviewBuilder {
	r.ProductID = productID
	return r
}

func (r *ReviewBuilder) WithRating(rating int32) *ReviewBuilder {
	r.Rating = rating
	return r
}

func (r *ReviewBuilder) Unapproved() *ReviewBuilder {
	r.Approved = false
	return r
}

func (r *ReviewBuilder) Build() review.Review {
	return review.Review{
		ID:        uuid.New(),
		ProductID: r.ProductID,
		Rating:    r.Rating,
		Approved:  r.Approved,
	}
}

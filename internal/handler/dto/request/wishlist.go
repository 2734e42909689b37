package request

import (
	"github.com/google/uuid"
)

type WishlistRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
}

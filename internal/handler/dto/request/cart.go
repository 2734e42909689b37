package request

import (
	"github.com/google/uuid"
)

type AddToCartRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int32     `json:"quantity" binding:"required,min=1"`
	// LastKnownStock is the stock count the caller last rendered; used only
	// as an advisory pre-flight check.
	LastKnownStock int32 `json:"last_known_stock" binding:"min=0"`
}

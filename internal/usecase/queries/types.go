package queries

import (
	"encoding/json"
	"time"

	"pistachiohut/internal/domain/product"

	"github.com/google/uuid"
)

// ProductView is the read-optimized catalog entry: a product record merged
// with its review-derived rating. The rating is recomputed on every catalog
// load and never persisted by this core.
type ProductView struct {
	ID                   uuid.UUID `json:"id"`
	Name                 string    `json:"name"`
	Description          string    `json:"description"`
	PriceCents           int64     `json:"price_cents"`
	DiscountedPriceCents int64     `json:"discounted_price_cents"`
	StockCount           int32     `json:"stock_count"`
	Popularity           int32     `json:"popularity"`
	Category             string    `json:"category"`
	ImageURL             string    `json:"image_url"`
	AverageRating        float64   `json:"average_rating"`
}

func (p *ProductView) EffectivePriceCents() int64 {
	return product.EffectivePriceCents(p.PriceCents, p.DiscountedPriceCents)
}

func (p *ProductView) IsDiscounted() bool {
	return product.IsDiscounted(p.PriceCents, p.DiscountedPriceCents)
}

// DeliveryView is the staff-facing fulfillment read model.
type DeliveryView struct {
	ID              uuid.UUID `json:"id"`
	CustomerID      uuid.UUID `json:"customer_id"`
	ProductID       uuid.UUID `json:"product_id"`
	Quantity        int32     `json:"quantity"`
	TotalPriceCents int64     `json:"total_price_cents"`
	Address         string    `json:"address"`
	Completed       bool      `json:"completed"`
	CreatedAt       time.Time `json:"created_at"`
}

// RefundView is the staff-facing refund read model. OrderSnapshot is the
// order exactly as it was at request time (line items, shipping, totals).
type RefundView struct {
	OrderID        uuid.UUID       `json:"order_id"`
	RequesterEmail string          `json:"requester_email"`
	Status         string          `json:"status"`
	OrderSnapshot  json.RawMessage `json:"order_snapshot"`
	RequestedAt    time.Time       `json:"requested_at"`
}

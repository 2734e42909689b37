package response

import (
	"time"

	"pistachiohut/internal/usecase/queries"

	"github.com/google/uuid"
)

type DeliveryResponse struct {
	ID              uuid.UUID `json:"id"`
	CustomerID      uuid.UUID `json:"customer_id"`
	ProductID       uuid.UUID `json:"product_id"`
	Quantity        int32     `json:"quantity"`
	TotalPriceCents int64     `json:"total_price_cents"`
	Address         string    `json:"address"`
	Completed       bool      `json:"completed"`
	CreatedAt       time.Time `json:"created_at"`
}

func FromDeliveryView(v *queries.DeliveryView) *DeliveryResponse {
	return &DeliveryResponse{
		ID:              v.ID,
		CustomerID:      v.CustomerID,
		ProductID:       v.ProductID,
		Quantity:        v.Quantity,
		TotalPriceCents: v.TotalPriceCents,
		Address:         v.Address,
		Completed:       v.Completed,
		CreatedAt:       v.CreatedAt,
	}
}

func FromDeliveryList(views []*queries.DeliveryView) []*DeliveryResponse {
	res := make([]*DeliveryResponse, len(views))
	for i, v := range views {
		res[i] = FromDeliveryView(v)
	}
	return res
}

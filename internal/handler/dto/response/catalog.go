package response

import (
	"log/slog"

	"pistachiohut/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ProductResponse struct {
	ID                   uuid.UUID `json:"id"`
	Name                 string    `json:"name"`
	Description          string    `json:"description"`
	PriceCents           int64     `json:"price_cents"`
	DiscountedPriceCents int64     `json:"discounted_price_cents"`
	EffectivePriceCents  int64     `json:"effective_price_cents"`
	Discounted           bool      `json:"discounted"`
	StockCount           int32     `json:"stock_count"`
	Popularity           int32     `json:"popularity"`
	Category             string    `json:"category"`
	ImageURL             string    `json:"image_url"`
	AverageRating        float64   `json:"average_rating"`
}

func FromProductView(v *queries.ProductView) *ProductResponse {
	var res ProductResponse
	if err := copier.Copy(&res, v); err != nil {
		slog.Error("failed to map product view", "error", err)
	}
	res.EffectivePriceCents = v.EffectivePriceCents()
	res.Discounted = v.IsDiscounted()
	return &res
}

func FromProductList(views []*queries.ProductView) []*ProductResponse {
	res := make([]*ProductResponse, len(views))
	for i, v := range views {
		res[i] = FromProductView(v)
	}
	return res
}

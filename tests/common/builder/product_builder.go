//go:build unit

package builder

import (
	reqdto "pistachiohut/internal/handler/dto/request"
	"pistachiohut/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProductBuilder struct {
	ID                   uuid.UUID
	Name                 string
	Description          string
	PriceCents           int64
	DiscountedPriceCents int64
	StockCount           int32
	Popularity           int32
	Category             string
	ImageURL             string
	AverageRating        float64
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		ID:                   uuid.New(),
		Name:                 "Roasted Pistachios",
		Description:          "Salted and slow roasted in small batches",
		PriceCents:           1499,
		DiscountedPriceCents: 0,
		StockCount:           25,
		Popularity:           10,
		Category:             "nuts",
		ImageURL:             "https://cdn.example.com/pistachios.jpg",
		AverageRating:        4.5,
	}
}

func (p *ProductBuilder) With(mutate func(*ProductBuilder)) *ProductBuilder {
	mutate(p)
	return p
}

func (p *ProductBuilder) BuildView() *queries.ProductView {
	return &queries.ProductView{
		ID:                   p.ID,
		Name:                 p.Name,
		Description:          p.Description,
		PriceCents:           p.PriceCents,
		DiscountedPriceCents: p.DiscountedPriceCents,
		StockCount:           p.StockCount,
		Popularity:           p.Popularity,
		Category:             p.Category,
		ImageURL:             p.ImageURL,
		AverageRating:        p.AverageRating,
	}
}

func (p *ProductBuilder) BuildAddToCartRequestDTO(quantity int32) reqdto.AddToCartRequest {
	return reqdto.AddToCartRequest{
		ProductID:      p.ID,
		Quantity:       quantity,
		LastKnownStock: p.StockCount,
	}
}

// Fluent builder methods
func (p *ProductBuilder) WithID(id uuid.UUID) *ProductBuilder {
	p.ID = id
	return p
}

func (p *ProductBuilder) WithName(name string) *ProductBuilder {
	p.Name = name
	return p
}

func (p *ProductBuilder) WithDescription(description string) *ProductBuilder {
	p.Description = description
	return p
}

func (p *ProductBuilder) WithPriceCents(cents int64) *ProductBuilder {
	p.PriceCents = cents
	return p
}

func (p *ProductBuilder) WithDiscountedPriceCents(cents int64) *ProductBuilder {
	p.DiscountedPriceCents = cents
	return p
}

func (p *ProductBuilder) WithStockCount(stock int32) *ProductBuilder {
	p.StockCount = stock
	return p
}

func (p *ProductBuilder) WithPopularity(popularity int32) *ProductBuilder {
	p.Popularity = popularity
	return p
}

func (p *ProductBuilder) WithCategory(category string) *ProductBuilder {
	p.Category = category
	return p
}

func (p *ProductBuilder) WithAverageRating(rating float64) *ProductBuilder {
	p.AverageRating = rating
	return p
}

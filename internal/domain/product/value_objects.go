package product

import (
	"pistachiohut/internal/pkg/errs"
)

var (
	ErrInvalidDiscountPrice = errs.New("discount price must be positive")
)

// DiscountPrice is a staff-supplied price override in cents.
type DiscountPrice struct {
	cents int64
}

func NewDiscountPrice(cents int64) (DiscountPrice, error) {
	if cents <= 0 {
		return DiscountPrice{}, ErrInvalidDiscountPrice
	}
	return DiscountPrice{cents: cents}, nil
}

func (p DiscountPrice) Cents() int64 { return p.cents }

// EffectivePriceCents resolves the price a shopper pays. A discounted price
// only counts when it undercuts or matches the base price; anything else
// falls back to the base price.
func EffectivePriceCents(baseCents, discountedCents int64) int64 {
	if discountedCents > 0 && discountedCents <= baseCents {
		return discountedCents
	}
	return baseCents
}

// IsDiscounted reports whether the shopper-visible price is an actual
// markdown from the base price.
func IsDiscounted(baseCents, discountedCents int64) bool {
	return discountedCents > 0 && discountedCents < baseCents
}

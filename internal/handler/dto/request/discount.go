package request

type SetDiscountRequest struct {
	PriceCents int64 `json:"price_cents" binding:"required"`
}

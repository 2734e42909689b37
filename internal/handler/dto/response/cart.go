package response

import (
	"pistachiohut/internal/usecase/commands"
)

type AddToCartResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func FromAddToCartResult(r *commands.AddToCartResult) *AddToCartResponse {
	return &AddToCartResponse{
		Status:  r.Status,
		Message: r.Message,
	}
}

package response

import (
	"pistachiohut/internal/usecase/commands"
)

type DiscountResponse struct {
	Outcome string `json:"outcome"`
	Message string `json:"message"`
}

func FromDiscountOutcome(outcome commands.DiscountOutcome) *DiscountResponse {
	res := &DiscountResponse{Outcome: string(outcome)}
	switch outcome {
	case commands.DiscountApplied:
		res.Message = "Discount applied and subscribers notified"
	case commands.DiscountAppliedNotifyFailed:
		res.Message = "Discount applied, but subscriber notification failed"
	}
	return res
}

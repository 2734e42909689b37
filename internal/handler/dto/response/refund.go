package response

import (
	"encoding/json"
	"time"

	"pistachiohut/internal/usecase/queries"

	"github.com/google/uuid"
)

type RefundResponse struct {
	OrderID        uuid.UUID       `json:"order_id"`
	RequesterEmail string          `json:"requester_email"`
	Status         string          `json:"status"`
	OrderSnapshot  json.RawMessage `json:"order_snapshot"`
	RequestedAt    time.Time       `json:"requested_at"`
}

func FromRefundView(v *queries.RefundView) *RefundResponse {
	return &RefundResponse{
		OrderID:        v.OrderID,
		RequesterEmail: v.RequesterEmail,
		Status:         v.Status,
		OrderSnapshot:  v.OrderSnapshot,
		RequestedAt:    v.RequestedAt,
	}
}

func FromRefundList(views []*queries.RefundView) []*RefundResponse {
	res := make([]*RefundResponse, len(views))
	for i, v := range views {
		res[i] = FromRefundView(v)
	}
	return res
}

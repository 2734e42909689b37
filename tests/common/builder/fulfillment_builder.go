//go:build unit

package builder

import (
	"encoding/json"
	"time"

	"pistachiohut/internal/domain/delivery"
	"pistachiohut/internal/domain/refund"
	"pistachiohut/internal/usecase/queries"

	"github.com/google/uuid"
)

type DeliveryBuilder struct {
	ID              uuid.UUID
	CustomerID      uuid.UUID
	ProductID       uuid.UUID
	Quantity        int32
	TotalPriceCents int64
	Address         string
	Completed       bool
	CreatedAt       time.Time
}

func NewDeliveryBuilder() *DeliveryBuilder {
	return &DeliveryBuilder{
		ID:              uuid.New(),
		CustomerID:      uuid.New(),
		ProductID:       uuid.New(),
		Quantity:        2,
		TotalPriceCents: 2998,
		Address:         "12 Orchard Lane, Springfield",
		Completed:       false,
		CreatedAt:       time.Now(),
	}
}

func (d *DeliveryBuilder) AsCompleted() *DeliveryBuilder {
	d.Completed = true
	return d
}

func (d *DeliveryBuilder) BuildDomain() (*delivery.Delivery, error) {
	return delivery.Reconstruct(d.ID, d.CustomerID, d.ProductID, d.Quantity, d.TotalPriceCents, d.Address, delivery.NewStatus(d.Completed))
}

func (d *DeliveryBuilder) BuildView() *queries.DeliveryView {
	return &queries.DeliveryView{
		ID:              d.ID,
		CustomerID:      d.CustomerID,
		ProductID:       d.ProductID,
		Quantity:        d.Quantity,
		TotalPriceCents: d.TotalPriceCents,
		Address:         d.Address,
		Completed:       d.Completed,
		CreatedAt:       d.CreatedAt,
	}
}

type RefundBuilder struct {
	OrderID        uuid.UUID
	RequesterEmail string
	OrderSnapshot  json.RawMessage
	Status         refund.Status
	RequestedAt    time.Time
}

func NewRefundBuilder() *RefundBuilder {
	return &RefundBuilder{
		OrderID:        uuid.New(),
		RequesterEmail: "shopper@example.com",
		OrderSnapshot:  json.RawMessage(`{"items":[{"name":"Roasted Pistachios","quantity":2}],"total_cents":2998}`),
		Status:         refund.StatusPending,
		RequestedAt:    time.Now(),
	}
}

func (r *RefundBuilder) WithStatus(status refund.Status) *RefundBuilder {
	r.Status = status
	return r
}

func (r *RefundBuilder) BuildDomain() (*refund.Request, error) {
	return refund.Reconstruct(r.OrderID, r.RequesterEmail, r.OrderSnapshot, r.Status)
}

func (r *RefundBuilder) BuildView() *queries.RefundView {
	return &queries.RefundView{
		OrderID:        r.OrderID,
		RequesterEmail: r.RequesterEmail,
		Status:         string(r.Status),
		OrderSnapshot:  r.OrderSnapshot,
		RequestedAt:    r.RequestedAt,
	}
}

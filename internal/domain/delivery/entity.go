package delivery

import (
	"pistachiohut/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrAlreadyCompleted = errs.New("delivery already completed")
	ErrInvalidStatus    = errs.New("invalid delivery status")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

func NewStatus(completed bool) Status {
	if completed {
		return StatusCompleted
	}
	return StatusPending
}

// Delivery is a fulfillment record created by the checkout process. The only
// mutation this core performs is the one-way pending -> completed transition.
type Delivery struct {
	id              uuid.UUID
	customerID      uuid.UUID
	productID       uuid.UUID
	quantity        int32
	totalPriceCents int64
	address         string
	status          Status
}

func Reconstruct(id, customerID, productID uuid.UUID, quantity int32, totalPriceCents int64, address string, status Status) (*Delivery, error) {
	switch status {
	case StatusPending, StatusCompleted:
	default:
		return nil, ErrInvalidStatus
	}
	return &Delivery{
		id:              id,
		customerID:      customerID,
		productID:       productID,
		quantity:        quantity,
		totalPriceCents: totalPriceCents,
		address:         address,
		status:          status,
	}, nil
}

// Complete is total over the status variants: completing an
// already-completed delivery is reported, never silently absorbed.
func (d *Delivery) Complete() error {
	if d.status != StatusPending {
		return ErrAlreadyCompleted
	}
	d.status = StatusCompleted
	return nil
}

func (d *Delivery) ID() uuid.UUID          { return d.id }
func (d *Delivery) CustomerID() uuid.UUID  { return d.customerID }
func (d *Delivery) ProductID() uuid.UUID   { return d.productID }
func (d *Delivery) Quantity() int32        { return d.quantity }
func (d *Delivery) TotalPriceCents() int64 { return d.totalPriceCents }
func (d *Delivery) Address() string        { return d.address }
func (d *Delivery) Status() Status         { return d.status }
func (d *Delivery) Completed() bool        { return d.status == StatusCompleted }

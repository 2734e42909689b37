package refund

import (
	"encoding/json"

	"pistachiohut/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNotPending    = errs.New("refund request already resolved")
	ErrInvalidStatus = errs.New("invalid refund status")
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

func NewStatus(s string) (Status, error) {
	status := Status(s)
	switch status {
	case StatusPending, StatusAccepted, StatusRejected:
		return status, nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) Terminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

// Request is a customer refund request keyed by the originating order id.
// The order snapshot is frozen at request time and never recomputed from
// current catalog state.
type Request struct {
	orderID        uuid.UUID
	requesterEmail string
	orderSnapshot  json.RawMessage
	status         Status
}

func Reconstruct(orderID uuid.UUID, requesterEmail string, orderSnapshot json.RawMessage, status Status) (*Request, error) {
	if _, err := NewStatus(string(status)); err != nil {
		return nil, err
	}
	return &Request{
		orderID:        orderID,
		requesterEmail: requesterEmail,
		orderSnapshot:  orderSnapshot,
		status:         status,
	}, nil
}

// Accept and Reject are total over the status variants; both terminal states
// are mutually exclusive and immutable once reached.

func (r *Request) Accept() error {
	if r.status != StatusPending {
		return ErrNotPending
	}
	r.status = StatusAccepted
	return nil
}

func (r *Request) Reject() error {
	if r.status != StatusPending {
		return ErrNotPending
	}
	r.status = StatusRejected
	return nil
}

func (r *Request) OrderID() uuid.UUID            { return r.orderID }
func (r *Request) RequesterEmail() string        { return r.requesterEmail }
func (r *Request) OrderSnapshot() json.RawMessage { return r.orderSnapshot }
func (r *Request) Status() Status                { return r.status }

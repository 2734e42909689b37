package commands

import (
	"context"

	"pistachiohut/internal/domain/delivery"
	"pistachiohut/internal/domain/refund"
	"pistachiohut/internal/domain/user"
	"pistachiohut/internal/pkg/errs"

	"github.com/google/uuid"
)

// Sentinels shared across the write side.
var (
	ErrUnauthenticated         = errs.New("unauthenticated")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type UserRepository interface {
	EmailByID(ctx context.Context, id uuid.UUID) (user.Email, error)
}

type CartRepository interface {
	Reserve(ctx context.Context, email user.Email, productID uuid.UUID, quantity int32) (string, error)
}

type ProductRepository interface {
	UpdateDiscountedPrice(ctx context.Context, id uuid.UUID, priceCents int64) error
}

type WishlistRepository interface {
	Subscribe(ctx context.Context, userID, productID uuid.UUID) error
	Unsubscribe(ctx context.Context, userID, productID uuid.UUID) error
}

type NotificationRepository interface {
	NotifySubscribers(ctx context.Context, productID uuid.UUID) error
	IssueRefund(ctx context.Context, orderID uuid.UUID, requesterEmail string) error
}

type DeliveryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*delivery.Delivery, error)
	MarkCompleted(ctx context.Context, id uuid.UUID) error
}

type RefundRepository interface {
	FindByOrderID(ctx context.Context, orderID uuid.UUID) (*refund.Request, error)
	MarkAccepted(ctx context.Context, orderID uuid.UUID) error
	MarkRejected(ctx context.Context, orderID uuid.UUID) error
}

// SnapshotInvalidator drops the cached catalog snapshot after a write that
// makes it stale.
type SnapshotInvalidator interface {
	Invalidate(ctx context.Context) error
}

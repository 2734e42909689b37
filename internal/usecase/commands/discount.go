package commands

import (
	"context"
	"log/slog"

	"pistachiohut/internal/domain/product"
	"pistachiohut/internal/infra"
	"pistachiohut/internal/pkg/errs"

	"github.com/google/uuid"
)

// DiscountOutcome is a tagged result, not a boolean: the price update and the
// notification fan-out are causally ordered but independently failable, and a
// committed price with a failed fan-out must not read as full success.
type DiscountOutcome string

const (
	DiscountApplied             DiscountOutcome = "applied"
	DiscountAppliedNotifyFailed DiscountOutcome = "applied_notify_failed"
)

type DiscountCommands interface {
	SetDiscountedPrice(ctx context.Context, productID uuid.UUID, priceCents int64) (DiscountOutcome, error)
}

type discountUseCaseImpl struct {
	products      ProductRepository
	notifications NotificationRepository
	snapshot      SnapshotInvalidator
}

func NewDiscountUseCase(products ProductRepository, notifications NotificationRepository, snapshot SnapshotInvalidator) DiscountCommands {
	return &discountUseCaseImpl{products: products, notifications: notifications, snapshot: snapshot}
}

func (d *discountUseCaseImpl) SetDiscountedPrice(ctx context.Context, productID uuid.UUID, priceCents int64) (DiscountOutcome, error) {
	price, err := product.NewDiscountPrice(priceCents)
	if err != nil {
		return "", errs.Mark(err, ErrDomainValidation)
	}

	if err := d.products.UpdateDiscountedPrice(ctx, productID, price.Cents()); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", errs.Mark(err, ErrProductNotFound)
		}
		return "", errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := d.snapshot.Invalidate(ctx); err != nil {
		slog.Warn("failed to invalidate catalog snapshot after discount", "product_id", productID, "error", err)
	}

	// The price update above stays committed even when the fan-out fails;
	// the notification store owns exactly-once-per-change semantics, so a
	// retried invocation is safe.
	if err := d.notifications.NotifySubscribers(ctx, productID); err != nil {
		slog.Warn("wishlist notification fan-out failed", "product_id", productID, "error", err)
		return DiscountAppliedNotifyFailed, nil
	}

	return DiscountApplied, nil
}

package commands

import (
	"context"

	"pistachiohut/internal/infra"
	"pistachiohut/internal/pkg/errs"
	"pistachiohut/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrDeliveryNotFound = errs.New("delivery not found")
	ErrDeliveryConflict = errs.New("delivery already completed")
)

type FulfillmentCommands interface {
	CompleteDelivery(ctx context.Context, id uuid.UUID) ([]*queries.DeliveryView, error)
}

type fulfillmentUseCaseImpl struct {
	deliveries         DeliveryRepository
	fulfillmentQueries queries.FulfillmentQueries
}

func NewFulfillmentUseCase(deliveries DeliveryRepository, fulfillmentQueries queries.FulfillmentQueries) FulfillmentCommands {
	return &fulfillmentUseCaseImpl{deliveries: deliveries, fulfillmentQueries: fulfillmentQueries}
}

// CompleteDelivery advances a delivery from pending to completed and returns
// the re-fetched delivery list. The list is always re-read rather than
// patched locally so concurrent staff mutations are reflected.
func (f *fulfillmentUseCaseImpl) CompleteDelivery(ctx context.Context, id uuid.UUID) ([]*queries.DeliveryView, error) {
	entity, err := f.deliveries.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrDeliveryNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := entity.Complete(); err != nil {
		return nil, errs.Mark(err, ErrDeliveryConflict)
	}

	if err := f.deliveries.MarkCompleted(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.Mark(err, ErrDeliveryConflict)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	refreshed, err := f.fulfillmentQueries.ListDeliveries(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return refreshed, nil
}

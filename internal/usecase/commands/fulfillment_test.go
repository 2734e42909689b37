//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"pistachiohut/internal/domain/delivery"
	"pistachiohut/internal/infra"
	"pistachiohut/internal/usecase/commands"
	"pistachiohut/internal/usecase/queries"
	"pistachiohut/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDeliveryRepo struct {
	entity  *delivery.Delivery
	findErr error
	markErr error

	marked []uuid.UUID
}

func (f *fakeDeliveryRepo) FindByID(_ context.Context, _ uuid.UUID) (*delivery.Delivery, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.entity, nil
}

func (f *fakeDeliveryRepo) MarkCompleted(_ context.Context, id uuid.UUID) error {
	if f.markErr != nil {
		return f.markErr
	}
	f.marked = append(f.marked, id)
	return nil
}

type fakeFulfillmentQueries struct {
	list    []*queries.DeliveryView
	listErr error
	calls   int
}

func (f *fakeFulfillmentQueries) ListDeliveries(_ context.Context) ([]*queries.DeliveryView, error) {
	f.calls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.list, nil
}

func TestCompleteDelivery(t *testing.T) {
	t.Run("success marks the delivery and returns the refreshed list", func(t *testing.T) {
		b := builder.NewDeliveryBuilder()
		entity, err := b.BuildDomain()
		require.NoError(t, err)

		refreshed := []*queries.DeliveryView{builder.NewDeliveryBuilder().AsCompleted().BuildView(), b.AsCompleted().BuildView()}
		deliveries := &fakeDeliveryRepo{entity: entity}
		listQueries := &fakeFulfillmentQueries{list: refreshed}

		uc := commands.NewFulfillmentUseCase(deliveries, listQueries)
		got, err := uc.CompleteDelivery(context.Background(), b.ID)

		require.NoError(t, err)
		assert.Equal(t, refreshed, got)
		assert.Equal(t, []uuid.UUID{b.ID}, deliveries.marked)
		assert.Equal(t, 1, listQueries.calls)
	})

	t.Run("already completed delivery conflicts before any write", func(t *testing.T) {
		entity, err := builder.NewDeliveryBuilder().AsCompleted().BuildDomain()
		require.NoError(t, err)
		deliveries := &fakeDeliveryRepo{entity: entity}

		uc := commands.NewFulfillmentUseCase(deliveries, &fakeFulfillmentQueries{})
		_, err = uc.CompleteDelivery(context.Background(), uuid.New())

		require.ErrorIs(t, err, commands.ErrDeliveryConflict)
		assert.Empty(t, deliveries.marked)
	})

	t.Run("lost race on the conditional update conflicts", func(t *testing.T) {
		entity, err := builder.NewDeliveryBuilder().BuildDomain()
		require.NoError(t, err)
		deliveries := &fakeDeliveryRepo{
			entity:  entity,
			markErr: infra.WrapRepoErr("delivery already completed", errors.New("no rows affected"), infra.KindConflict),
		}

		uc := commands.NewFulfillmentUseCase(deliveries, &fakeFulfillmentQueries{})
		_, err = uc.CompleteDelivery(context.Background(), uuid.New())

		require.ErrorIs(t, err, commands.ErrDeliveryConflict)
	})

	t.Run("unknown delivery maps to not found", func(t *testing.T) {
		deliveries := &fakeDeliveryRepo{findErr: infra.WrapRepoErr("delivery not found", errors.New("no rows"), infra.KindNotFound)}

		uc := commands.NewFulfillmentUseCase(deliveries, &fakeFulfillmentQueries{})
		_, err := uc.CompleteDelivery(context.Background(), uuid.New())

		require.ErrorIs(t, err, commands.ErrDeliveryNotFound)
	})

	t.Run("refetch failure surfaces as database operation failed", func(t *testing.T) {
		entity, err := builder.NewDeliveryBuilder().BuildDomain()
		require.NoError(t, err)
		deliveries := &fakeDeliveryRepo{entity: entity}

		uc := commands.NewFulfillmentUseCase(deliveries, &fakeFulfillmentQueries{listErr: errors.New("connection refused")})
		_, err = uc.CompleteDelivery(context.Background(), uuid.New())

		require.ErrorIs(t, err, commands.ErrDatabaseOperationFailed)
	})
}

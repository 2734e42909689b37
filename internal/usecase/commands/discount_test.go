//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"pistachiohut/internal/infra"
	"pistachiohut/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProductRepo struct {
	updateErr error

	gotID    uuid.UUID
	gotPrice int64
	calls    int
}

func (f *fakeProductRepo) UpdateDiscountedPrice(_ context.Context, id uuid.UUID, priceCents int64) error {
	f.calls++
	f.gotID = id
	f.gotPrice = priceCents
	return f.updateErr
}

type fakeNotificationRepo struct {
	notifyErr error
	refundErr error

	notified     []uuid.UUID
	refundOrders []uuid.UUID
	refundEmails []string
}

func (f *fakeNotificationRepo) NotifySubscribers(_ context.Context, productID uuid.UUID) error {
	if f.notifyErr != nil {
		return f.notifyErr
	}
	f.notified = append(f.notified, productID)
	return nil
}

func (f *fakeNotificationRepo) IssueRefund(_ context.Context, orderID uuid.UUID, requesterEmail string) error {
	if f.refundErr != nil {
		return f.refundErr
	}
	f.refundOrders = append(f.refundOrders, orderID)
	f.refundEmails = append(f.refundEmails, requesterEmail)
	return nil
}

type fakeInvalidator struct {
	err   error
	calls int
}

func (f *fakeInvalidator) Invalidate(_ context.Context) error {
	f.calls++
	return f.err
}

func TestSetDiscountedPrice(t *testing.T) {
	productID := uuid.New()

	t.Run("non-positive price is rejected without touching the store", func(t *testing.T) {
		products := &fakeProductRepo{}
		uc := commands.NewDiscountUseCase(products, &fakeNotificationRepo{}, &fakeInvalidator{})

		for _, price := range []int64{0, -500} {
			_, err := uc.SetDiscountedPrice(context.Background(), productID, price)
			require.ErrorIs(t, err, commands.ErrDomainValidation)
		}
		assert.Zero(t, products.calls)
	})

	t.Run("full success applies the price and notifies subscribers", func(t *testing.T) {
		products := &fakeProductRepo{}
		notifications := &fakeNotificationRepo{}
		invalidator := &fakeInvalidator{}
		uc := commands.NewDiscountUseCase(products, notifications, invalidator)

		outcome, err := uc.SetDiscountedPrice(context.Background(), productID, 999)

		require.NoError(t, err)
		assert.Equal(t, commands.DiscountApplied, outcome)
		assert.Equal(t, productID, products.gotID)
		assert.Equal(t, int64(999), products.gotPrice)
		assert.Equal(t, []uuid.UUID{productID}, notifications.notified)
		assert.Equal(t, 1, invalidator.calls)
	})

	t.Run("failed fan-out is partial success, not failure", func(t *testing.T) {
		products := &fakeProductRepo{}
		notifications := &fakeNotificationRepo{notifyErr: errors.New("smtp relay down")}
		uc := commands.NewDiscountUseCase(products, notifications, &fakeInvalidator{})

		outcome, err := uc.SetDiscountedPrice(context.Background(), productID, 999)

		require.NoError(t, err)
		assert.Equal(t, commands.DiscountAppliedNotifyFailed, outcome)
		// Price update stays committed.
		assert.Equal(t, 1, products.calls)
	})

	t.Run("unknown product maps to not found", func(t *testing.T) {
		products := &fakeProductRepo{updateErr: infra.WrapRepoErr("product not found", errors.New("no rows"), infra.KindNotFound)}
		notifications := &fakeNotificationRepo{}
		uc := commands.NewDiscountUseCase(products, notifications, &fakeInvalidator{})

		_, err := uc.SetDiscountedPrice(context.Background(), productID, 999)

		require.ErrorIs(t, err, commands.ErrProductNotFound)
		assert.Empty(t, notifications.notified)
	})

	t.Run("snapshot invalidation failure does not change the outcome", func(t *testing.T) {
		uc := commands.NewDiscountUseCase(&fakeProductRepo{}, &fakeNotificationRepo{}, &fakeInvalidator{err: errors.New("redis down")})

		outcome, err := uc.SetDiscountedPrice(context.Background(), productID, 999)

		require.NoError(t, err)
		assert.Equal(t, commands.DiscountApplied, outcome)
	})
}

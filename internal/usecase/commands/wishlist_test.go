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

type fakeWishlistRepo struct {
	err error

	subscribed   []uuid.UUID
	unsubscribed []uuid.UUID
}

func (f *fakeWishlistRepo) Subscribe(_ context.Context, _, productID uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	f.subscribed = append(f.subscribed, productID)
	return nil
}

func (f *fakeWishlistRepo) Unsubscribe(_ context.Context, _, productID uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	f.unsubscribed = append(f.unsubscribed, productID)
	return nil
}

func TestWishlist(t *testing.T) {
	userID := uuid.New()
	productID := uuid.New()

	t.Run("subscribe records the product", func(t *testing.T) {
		wishlist := &fakeWishlistRepo{}
		uc := commands.NewWishlistUseCase(wishlist)

		require.NoError(t, uc.Subscribe(context.Background(), userID, productID))
		assert.Equal(t, []uuid.UUID{productID}, wishlist.subscribed)
	})

	t.Run("unsubscribe removes the product", func(t *testing.T) {
		wishlist := &fakeWishlistRepo{}
		uc := commands.NewWishlistUseCase(wishlist)

		require.NoError(t, uc.Unsubscribe(context.Background(), userID, productID))
		assert.Equal(t, []uuid.UUID{productID}, wishlist.unsubscribed)
	})

	t.Run("missing credential is rejected before any store call", func(t *testing.T) {
		wishlist := &fakeWishlistRepo{}
		uc := commands.NewWishlistUseCase(wishlist)

		require.ErrorIs(t, uc.Subscribe(context.Background(), uuid.Nil, productID), commands.ErrUnauthenticated)
		require.ErrorIs(t, uc.Unsubscribe(context.Background(), uuid.Nil, productID), commands.ErrUnauthenticated)
		assert.Empty(t, wishlist.subscribed)
		assert.Empty(t, wishlist.unsubscribed)
	})

	t.Run("store failure maps to database operation failed", func(t *testing.T) {
		wishlist := &fakeWishlistRepo{err: infra.WrapRepoErr("connection reset", errors.New("reset"))}
		uc := commands.NewWishlistUseCase(wishlist)

		require.ErrorIs(t, uc.Subscribe(context.Background(), userID, productID), commands.ErrDatabaseOperationFailed)
	})
}

//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"pistachiohut/internal/domain/user"
	"pistachiohut/internal/infra"
	"pistachiohut/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	emails map[uuid.UUID]user.Email
	err    error
}

func (f *fakeUserRepo) EmailByID(_ context.Context, id uuid.UUID) (user.Email, error) {
	if f.err != nil {
		return user.Email{}, f.err
	}
	email, ok := f.emails[id]
	if !ok {
		return user.Email{}, infra.WrapRepoErr("user not found", errors.New("no rows"), infra.KindNotFound)
	}
	return email, nil
}

type fakeCartRepo struct {
	message string
	err     error

	gotEmail    user.Email
	gotProduct  uuid.UUID
	gotQuantity int32
	calls       int
}

func (f *fakeCartRepo) Reserve(_ context.Context, email user.Email, productID uuid.UUID, quantity int32) (string, error) {
	f.calls++
	f.gotEmail = email
	f.gotProduct = productID
	f.gotQuantity = quantity
	if f.err != nil {
		return "", f.err
	}
	return f.message, nil
}

func mustEmail(t *testing.T, s string) user.Email {
	t.Helper()
	email, err := user.NewEmail(s)
	require.NoError(t, err)
	return email
}

func TestAddToCart(t *testing.T) {
	userID := uuid.New()
	productID := uuid.New()
	users := func() *fakeUserRepo {
		return &fakeUserRepo{emails: map[uuid.UUID]user.Email{userID: mustEmail(t, "shopper@example.com")}}
	}

	t.Run("missing credential fails before any store call", func(t *testing.T) {
		cart := &fakeCartRepo{}
		uc := commands.NewCartUseCase(users(), cart)

		_, err := uc.AddToCart(context.Background(), uuid.Nil, productID, 1, 10)

		require.ErrorIs(t, err, commands.ErrUnauthenticated)
		assert.Zero(t, cart.calls)
	})

	t.Run("non-positive quantity is rejected", func(t *testing.T) {
		uc := commands.NewCartUseCase(users(), &fakeCartRepo{})

		_, err := uc.AddToCart(context.Background(), userID, productID, 0, 10)
		require.ErrorIs(t, err, commands.ErrInvalidQuantity)

		_, err = uc.AddToCart(context.Background(), userID, productID, -3, 10)
		require.ErrorIs(t, err, commands.ErrInvalidQuantity)
	})

	t.Run("zero last-known stock always fails the pre-flight check", func(t *testing.T) {
		cart := &fakeCartRepo{}
		uc := commands.NewCartUseCase(users(), cart)

		_, err := uc.AddToCart(context.Background(), userID, productID, 1, 0)

		require.ErrorIs(t, err, commands.ErrInsufficientStock)
		assert.Zero(t, cart.calls)
	})

	t.Run("quantity above last-known stock fails the pre-flight check", func(t *testing.T) {
		uc := commands.NewCartUseCase(users(), &fakeCartRepo{})

		_, err := uc.AddToCart(context.Background(), userID, productID, 6, 5)

		require.ErrorIs(t, err, commands.ErrInsufficientStock)
	})

	t.Run("unknown subject maps to unauthenticated", func(t *testing.T) {
		uc := commands.NewCartUseCase(&fakeUserRepo{emails: map[uuid.UUID]user.Email{}}, &fakeCartRepo{})

		_, err := uc.AddToCart(context.Background(), uuid.New(), productID, 1, 10)

		require.ErrorIs(t, err, commands.ErrUnauthenticated)
	})

	t.Run("success returns the store message verbatim with a structured status", func(t *testing.T) {
		cart := &fakeCartRepo{message: "Added 2 x Roasted Pistachios to your cart"}
		uc := commands.NewCartUseCase(users(), cart)

		result, err := uc.AddToCart(context.Background(), userID, productID, 2, 10)

		require.NoError(t, err)
		assert.Equal(t, commands.AddToCartStatusAdded, result.Status)
		assert.Equal(t, "Added 2 x Roasted Pistachios to your cart", result.Message)
		assert.Equal(t, "shopper@example.com", cart.gotEmail.Value())
		assert.Equal(t, productID, cart.gotProduct)
		assert.Equal(t, int32(2), cart.gotQuantity)
	})

	t.Run("authoritative stock rejection maps to insufficient stock", func(t *testing.T) {
		cart := &fakeCartRepo{err: infra.WrapRepoErr("only 1 left in stock", errors.New("no rows"), infra.KindInsufficientStock)}
		uc := commands.NewCartUseCase(users(), cart)

		_, err := uc.AddToCart(context.Background(), userID, productID, 2, 10)

		require.ErrorIs(t, err, commands.ErrInsufficientStock)
	})

	t.Run("missing product maps to not found", func(t *testing.T) {
		cart := &fakeCartRepo{err: infra.WrapRepoErr("product not found", errors.New("no rows"), infra.KindNotFound)}
		uc := commands.NewCartUseCase(users(), cart)

		_, err := uc.AddToCart(context.Background(), userID, productID, 1, 10)

		require.ErrorIs(t, err, commands.ErrProductNotFound)
	})

	t.Run("store failure maps to database operation failed", func(t *testing.T) {
		cart := &fakeCartRepo{err: infra.WrapRepoErr("connection reset", errors.New("reset"))}
		uc := commands.NewCartUseCase(users(), cart)

		_, err := uc.AddToCart(context.Background(), userID, productID, 1, 10)

		require.ErrorIs(t, err, commands.ErrDatabaseOperationFailed)
	})
}

package commands

import (
	"context"

	"pistachiohut/internal/pkg/errs"

	"github.com/google/uuid"
)

type WishlistCommands interface {
	Subscribe(ctx context.Context, userID, productID uuid.UUID) error
	Unsubscribe(ctx context.Context, userID, productID uuid.UUID) error
}

type wishlistUseCaseImpl struct {
	wishlist WishlistRepository
}

func NewWishlistUseCase(wishlist WishlistRepository) WishlistCommands {
	return &wishlistUseCaseImpl{wishlist: wishlist}
}

func (w *wishlistUseCaseImpl) Subscribe(ctx context.Context, userID, productID uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrUnauthenticated
	}
	if err := w.wishlist.Subscribe(ctx, userID, productID); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (w *wishlistUseCaseImpl) Unsubscribe(ctx context.Context, userID, productID uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrUnauthenticated
	}
	if err := w.wishlist.Unsubscribe(ctx, userID, productID); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

package commands

import (
	"context"

	"pistachiohut/internal/infra"
	"pistachiohut/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidQuantity   = errs.New("quantity must be at least 1")
	ErrProductNotFound   = errs.New("product not found")
	ErrInsufficientStock = errs.New("insufficient stock")
)

const AddToCartStatusAdded = "added"

// AddToCartResult pairs the store's verbatim outcome message with a
// structured status so callers never have to parse the message.
type AddToCartResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type CartCommands interface {
	AddToCart(ctx context.Context, userID, productID uuid.UUID, quantity, lastKnownStock int32) (*AddToCartResult, error)
}

type cartUseCaseImpl struct {
	users UserRepository
	cart  CartRepository
}

func NewCartUseCase(users UserRepository, cart CartRepository) CartCommands {
	return &cartUseCaseImpl{users: users, cart: cart}
}

// AddToCart reserves stock for the caller. The lastKnownStock comparison is
// an advisory pre-flight check against the caller's possibly-stale view; the
// conditional decrement inside Reserve is the authoritative gate.
func (c *cartUseCaseImpl) AddToCart(ctx context.Context, userID, productID uuid.UUID, quantity, lastKnownStock int32) (*AddToCartResult, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthenticated
	}
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if quantity > lastKnownStock {
		return nil, ErrInsufficientStock
	}

	email, err := c.users.EmailByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	message, err := c.cart.Reserve(ctx, email, productID, quantity)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, errs.Mark(err, ErrProductNotFound)
		case infra.IsKind(err, infra.KindInsufficientStock):
			return nil, errs.Mark(err, ErrInsufficientStock)
		default:
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	return &AddToCartResult{Status: AddToCartStatusAdded, Message: message}, nil
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"pistachiohut/internal/domain/user"
	"pistachiohut/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CartRepository struct {
	db *pgxpool.Pool
}

func NewCartRepository(db *pgxpool.Pool) *CartRepository {
	return &CartRepository{db: db}
}

// Reserve takes quantity units of a product out of live stock and records the
// cart line, atomically. The conditional decrement is the authoritative gate
// against overselling: concurrent reservations race on the single UPDATE and
// stock can never go negative. Returns the store's human-readable outcome
// message; callers must branch on the error, not the message.
func (r *CartRepository) Reserve(ctx context.Context, email user.Email, productID uuid.UUID, quantity int32) (string, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return "", infra.WrapRepoErr("failed to begin reservation", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback reservation", "error", rollbackErr)
		}
	}()

	var name string
	err = tx.QueryRow(ctx, `
		UPDATE products
		SET stock_count = stock_count - $2, updated_at = now()
		WHERE id = $1 AND stock_count >= $2
		RETURNING name`,
		productID, quantity,
	).Scan(&name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", r.classifyReserveMiss(ctx, productID)
		}
		return "", infra.WrapRepoErr("failed to reserve stock", err)
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO cart_items (id, user_email, product_id, quantity)
		VALUES ($1, $2, $3, $4)`,
		uuid.New(), email.Value(), productID, quantity,
	); err != nil {
		return "", infra.WrapRepoErr("failed to record cart item", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return "", infra.WrapRepoErr("failed to commit reservation", err)
	}
	return fmt.Sprintf("Added %d x %s to your cart", quantity, name), nil
}

// The conditional update misses for a missing product and for exhausted
// stock alike; a second read tells them apart.
func (r *CartRepository) classifyReserveMiss(ctx context.Context, productID uuid.UUID) error {
	var stock int32
	err := r.db.QueryRow(ctx, `SELECT stock_count FROM products WHERE id = $1`, productID).Scan(&stock)
	if errors.Is(err, pgx.ErrNoRows) {
		return infra.WrapRepoErr("product not found", err, infra.KindNotFound)
	}
	if err != nil {
		return infra.WrapRepoErr("failed to check stock", err)
	}
	return infra.WrapRepoErr(fmt.Sprintf("only %d left in stock", stock), pgx.ErrNoRows, infra.KindInsufficientStock)
}

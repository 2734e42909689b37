package repository

import (
	"context"

	"pistachiohut/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type WishlistRepository struct {
	db *pgxpool.Pool
}

func NewWishlistRepository(db *pgxpool.Pool) *WishlistRepository {
	return &WishlistRepository{db: db}
}

// Subscribe is an upsert: re-subscribing is a no-op, not an error.
func (r *WishlistRepository) Subscribe(ctx context.Context, userID, productID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO wishlists (user_id, product_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, product_id) DO NOTHING`,
		userID, productID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to subscribe to wishlist", err)
	}
	return nil
}

func (r *WishlistRepository) Unsubscribe(ctx context.Context, userID, productID uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM wishlists WHERE user_id = $1 AND product_id = $2`,
		userID, productID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to unsubscribe from wishlist", err)
	}
	return nil
}

func (r *WishlistRepository) SubscriberEmails(ctx context.Context, productID uuid.UUID) ([]string, error) {
	rows, err := r.db.Query(ctx, `
		SELECT u.email
		FROM wishlists w
		JOIN users u ON u.id = w.user_id
		WHERE w.product_id = $1`,
		productID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list wishlist subscribers", err)
	}
	defer rows.Close()

	var emails []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, infra.WrapRepoErr("failed to scan subscriber", err)
		}
		emails = append(emails, email)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read subscriber rows", err)
	}
	return emails, nil
}

package repository

import (
	"context"

	"pistachiohut/internal/domain/review"
	"pistachiohut/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReviewRepository is read-only: reviews are owned by the moderation
// collaborator.
type ReviewRepository struct {
	db *pgxpool.Pool
}

func NewReviewRepository(db *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) ListByProduct(ctx context.Context, productID uuid.UUID) ([]review.Review, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, product_id, rating, approved FROM reviews WHERE product_id = $1 ORDER BY created_at`,
		productID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews", err)
	}
	defer rows.Close()

	var out []review.Review
	for rows.Next() {
		var rv review.Review
		if err := rows.Scan(&rv.ID, &rv.ProductID, &rv.Rating, &rv.Approved); err != nil {
			return nil, infra.WrapRepoErr("failed to scan review", err)
		}
		out = append(out, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read review rows", err)
	}
	return out, nil
}

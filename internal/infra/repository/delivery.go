package repository

import (
	"context"
	"errors"

	"pistachiohut/internal/domain/delivery"
	"pistachiohut/internal/infra"
	"pistachiohut/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DeliveryRepository struct {
	db *pgxpool.Pool
}

func NewDeliveryRepository(db *pgxpool.Pool) *DeliveryRepository {
	return &DeliveryRepository{db: db}
}

func (r *DeliveryRepository) List(ctx context.Context) ([]*queries.DeliveryView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, customer_id, product_id, quantity, total_price_cents, address, completed, created_at
		FROM deliveries ORDER BY created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list deliveries", err)
	}
	defer rows.Close()

	var out []*queries.DeliveryView
	for rows.Next() {
		var d queries.DeliveryView
		if err := rows.Scan(&d.ID, &d.CustomerID, &d.ProductID, &d.Quantity, &d.TotalPriceCents, &d.Address, &d.Completed, &d.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan delivery", err)
		}
		out = append(out, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read delivery rows", err)
	}
	return out, nil
}

func (r *DeliveryRepository) FindByID(ctx context.Context, id uuid.UUID) (*delivery.Delivery, error) {
	var (
		customerID      uuid.UUID
		productID       uuid.UUID
		quantity        int32
		totalPriceCents int64
		address         string
		completed       bool
	)
	err := r.db.QueryRow(ctx, `
		SELECT customer_id, product_id, quantity, total_price_cents, address, completed
		FROM deliveries WHERE id = $1`, id,
	).Scan(&customerID, &productID, &quantity, &totalPriceCents, &address, &completed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("delivery not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get delivery", err)
	}
	return delivery.Reconstruct(id, customerID, productID, quantity, totalPriceCents, address, delivery.NewStatus(completed))
}

// MarkCompleted is conditional on the pending state so that a concurrent
// completion by another staff member surfaces as a conflict, not a double
// transition.
func (r *DeliveryRepository) MarkCompleted(ctx context.Context, id uuid.UUID) error {
	ct, err := r.db.Exec(ctx,
		`UPDATE deliveries SET completed = TRUE, updated_at = now() WHERE id = $1 AND completed = FALSE`,
		id,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to complete delivery", err)
	}
	if ct.RowsAffected() == 0 {
		return infra.WrapRepoErr("delivery already completed", pgx.ErrNoRows, infra.KindConflict)
	}
	return nil
}

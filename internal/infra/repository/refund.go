package repository

import (
	"context"
	"encoding/json"
	"errors"

	"pistachiohut/internal/domain/refund"
	"pistachiohut/internal/infra"
	"pistachiohut/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RefundRepository struct {
	db *pgxpool.Pool
}

func NewRefundRepository(db *pgxpool.Pool) *RefundRepository {
	return &RefundRepository{db: db}
}

func (r *RefundRepository) List(ctx context.Context) ([]*queries.RefundView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT order_id, requester_email, status, order_snapshot, requested_at
		FROM refund_requests ORDER BY requested_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list refund requests", err)
	}
	defer rows.Close()

	var out []*queries.RefundView
	for rows.Next() {
		var v queries.RefundView
		if err := rows.Scan(&v.OrderID, &v.RequesterEmail, &v.Status, &v.OrderSnapshot, &v.RequestedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan refund request", err)
		}
		out = append(out, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read refund rows", err)
	}
	return out, nil
}

func (r *RefundRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) (*refund.Request, error) {
	var (
		requesterEmail string
		status         string
		snapshot       json.RawMessage
	)
	err := r.db.QueryRow(ctx, `
		SELECT requester_email, status, order_snapshot
		FROM refund_requests WHERE order_id = $1`, orderID,
	).Scan(&requesterEmail, &status, &snapshot)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("refund request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get refund request", err)
	}
	return refund.Reconstruct(orderID, requesterEmail, snapshot, refund.Status(status))
}

func (r *RefundRepository) MarkAccepted(ctx context.Context, orderID uuid.UUID) error {
	return r.transition(ctx, orderID, refund.StatusAccepted)
}

func (r *RefundRepository) MarkRejected(ctx context.Context, orderID uuid.UUID) error {
	return r.transition(ctx, orderID, refund.StatusRejected)
}

// Both terminal transitions are conditional on the pending state; a zero-row
// update means another staff member resolved the request first.
func (r *RefundRepository) transition(ctx context.Context, orderID uuid.UUID, to refund.Status) error {
	ct, err := r.db.Exec(ctx,
		`UPDATE refund_requests SET status = $2, resolved_at = now() WHERE order_id = $1 AND status = 'pending'`,
		orderID, string(to),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to resolve refund request", err)
	}
	if ct.RowsAffected() == 0 {
		return infra.WrapRepoErr("refund request already resolved", pgx.ErrNoRows, infra.KindConflict)
	}
	return nil
}

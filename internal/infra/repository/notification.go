package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"pistachiohut/internal/infra"
	"pistachiohut/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NotificationRepository enqueues delivery jobs for the external notification
// worker. The worker owns exactly-once-per-change semantics; this side
// enqueues unconditionally.
type NotificationRepository struct {
	db       *pgxpool.Pool
	wishlist *WishlistRepository
	clock    clock.Clock
}

func NewNotificationRepository(db *pgxpool.Pool, wishlist *WishlistRepository, clk clock.Clock) *NotificationRepository {
	return &NotificationRepository{db: db, wishlist: wishlist, clock: clk}
}

// NotifySubscribers fans a price-change notification out to every wishlist
// subscriber of the product: one job per subscriber, enqueued in one
// transaction so a partial fan-out never lands.
func (r *NotificationRepository) NotifySubscribers(ctx context.Context, productID uuid.UUID) error {
	emails, err := r.wishlist.SubscriberEmails(ctx, productID)
	if err != nil {
		return err
	}
	if len(emails) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return infra.WrapRepoErr("failed to begin notification fan-out", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback notification fan-out", "error", rollbackErr)
		}
	}()

	for _, email := range emails {
		payload, err := json.Marshal(map[string]any{
			"product_id": productID,
			"recipient":  email,
			"type":       "discount_applied",
		})
		if err != nil {
			return infra.WrapRepoErr("failed to encode notification payload", err)
		}
		if _, err := tx.Exec(ctx, `
			INSERT INTO notification_jobs (id, kind, topic, payload, run_at)
			VALUES ($1, $2, $3, $4, $5)`,
			uuid.New(), "email", "discount_applied", payload, r.clock.Now(),
		); err != nil {
			return infra.WrapRepoErr("failed to enqueue notification job", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit notification fan-out", err)
	}
	return nil
}

// IssueRefund hands the money movement off to the refund worker; the
// requester identity travels with the job.
func (r *NotificationRepository) IssueRefund(ctx context.Context, orderID uuid.UUID, requesterEmail string) error {
	payload, err := json.Marshal(map[string]any{
		"order_id":  orderID,
		"recipient": requesterEmail,
		"type":      "refund_accepted",
	})
	if err != nil {
		return infra.WrapRepoErr("failed to encode refund payload", err)
	}
	if _, err := r.db.Exec(ctx, `
		INSERT INTO notification_jobs (id, kind, topic, payload, run_at)
		VALUES ($1, $2, $3, $4, $5)`,
		uuid.New(), "refund", "refund_accepted", payload, r.clock.Now(),
	); err != nil {
		return infra.WrapRepoErr("failed to enqueue refund job", err)
	}
	return nil
}

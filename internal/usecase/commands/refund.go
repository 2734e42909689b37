package commands

import (
	"context"
	"log/slog"

	"pistachiohut/internal/domain/refund"
	"pistachiohut/internal/infra"
	"pistachiohut/internal/pkg/errs"
	"pistachiohut/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrRefundNotFound = errs.New("refund request not found")
	ErrRefundConflict = errs.New("refund request already resolved")
)

// RefundOutcome is a tagged result for Accept: the state transition and the
// issuance hand-off are causally ordered but independently failable, and a
// committed acceptance with a failed hand-off must not read as full success.
type RefundOutcome string

const (
	RefundResolved            RefundOutcome = "resolved"
	RefundAcceptedIssueFailed RefundOutcome = "accepted_issue_failed"
)

type RefundCommands interface {
	Accept(ctx context.Context, orderID uuid.UUID) (RefundOutcome, []*queries.RefundView, error)
	Reject(ctx context.Context, orderID uuid.UUID) ([]*queries.RefundView, error)
}

type refundUseCaseImpl struct {
	refunds       RefundRepository
	notifications NotificationRepository
	refundQueries queries.RefundQueries
}

func NewRefundUseCase(refunds RefundRepository, notifications NotificationRepository, refundQueries queries.RefundQueries) RefundCommands {
	return &refundUseCaseImpl{refunds: refunds, notifications: notifications, refundQueries: refundQueries}
}

// Accept resolves a pending request in the requester's favor and hands the
// money movement off to the refund-issuance worker, carrying the requester
// identity recorded at request time.
func (r *refundUseCaseImpl) Accept(ctx context.Context, orderID uuid.UUID) (RefundOutcome, []*queries.RefundView, error) {
	entity, err := r.resolve(ctx, orderID, (*refund.Request).Accept, r.refunds.MarkAccepted)
	if err != nil {
		return "", nil, err
	}

	// The acceptance above stays committed even when the hand-off fails;
	// issuance is retriable, so the caller gets a partial outcome rather
	// than a rolled-back transition.
	outcome := RefundResolved
	if err := r.notifications.IssueRefund(ctx, orderID, entity.RequesterEmail()); err != nil {
		slog.Error("failed to enqueue refund issuance", "order_id", orderID, "error", err)
		outcome = RefundAcceptedIssueFailed
	}

	refreshed, err := r.refreshList(ctx)
	if err != nil {
		return "", nil, err
	}
	return outcome, refreshed, nil
}

func (r *refundUseCaseImpl) Reject(ctx context.Context, orderID uuid.UUID) ([]*queries.RefundView, error) {
	if _, err := r.resolve(ctx, orderID, (*refund.Request).Reject, r.refunds.MarkRejected); err != nil {
		return nil, err
	}
	return r.refreshList(ctx)
}

func (r *refundUseCaseImpl) resolve(
	ctx context.Context,
	orderID uuid.UUID,
	transition func(*refund.Request) error,
	persist func(context.Context, uuid.UUID) error,
) (*refund.Request, error) {
	entity, err := r.refunds.FindByOrderID(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrRefundNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := transition(entity); err != nil {
		return nil, errs.Mark(err, ErrRefundConflict)
	}

	if err := persist(ctx, orderID); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.Mark(err, ErrRefundConflict)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return entity, nil
}

func (r *refundUseCaseImpl) refreshList(ctx context.Context) ([]*queries.RefundView, error) {
	refreshed, err := r.refundQueries.ListRefunds(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return refreshed, nil
}

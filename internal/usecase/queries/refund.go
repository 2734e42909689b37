package queries

import (
	"context"
)

type RefundViewRepo interface {
	List(ctx context.Context) ([]*RefundView, error)
}

type RefundQueries interface {
	ListRefunds(ctx context.Context) ([]*RefundView, error)
}

type refundQueriesImpl struct {
	repo RefundViewRepo
}

func NewRefundQueries(repo RefundViewRepo) RefundQueries {
	return &refundQueriesImpl{repo: repo}
}

func (q *refundQueriesImpl) ListRefunds(ctx context.Context) ([]*RefundView, error) {
	return q.repo.List(ctx)
}

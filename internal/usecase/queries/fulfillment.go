package queries

import (
	"context"
)

type DeliveryViewRepo interface {
	List(ctx context.Context) ([]*DeliveryView, error)
}

type FulfillmentQueries interface {
	ListDeliveries(ctx context.Context) ([]*DeliveryView, error)
}

type fulfillmentQueriesImpl struct {
	repo DeliveryViewRepo
}

func NewFulfillmentQueries(repo DeliveryViewRepo) FulfillmentQueries {
	return &fulfillmentQueriesImpl{repo: repo}
}

func (q *fulfillmentQueriesImpl) ListDeliveries(ctx context.Context) ([]*DeliveryView, error) {
	return q.repo.List(ctx)
}

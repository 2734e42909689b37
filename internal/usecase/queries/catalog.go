package queries

import (
	"context"
	"log/slog"

	"pistachiohut/internal/domain/review"
	"pistachiohut/internal/infra"
	"pistachiohut/internal/pkg/errs"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var (
	ErrProductNotFound    = errs.New("product not found")
	ErrCatalogUnavailable = errs.New("catalog unavailable")
)

const ratingFanOutLimit = 8

type ProductViewRepo interface {
	List(ctx context.Context) ([]*ProductView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ProductView, error)
}

type ReviewViewRepo interface {
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]review.Review, error)
}

type CatalogSnapshotCache interface {
	Load(ctx context.Context) ([]*ProductView, error)
	Store(ctx context.Context, products []*ProductView) error
}

type CatalogQueries interface {
	Search(ctx context.Context, query string, key SortKey, order Order) ([]*ProductView, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*ProductView, error)
}

type catalogQueriesImpl struct {
	products ProductViewRepo
	reviews  ReviewViewRepo
	cache    CatalogSnapshotCache
}

func NewCatalogQueries(products ProductViewRepo, reviews ReviewViewRepo, cache CatalogSnapshotCache) CatalogQueries {
	return &catalogQueriesImpl{products: products, reviews: reviews, cache: cache}
}

func (q *catalogQueriesImpl) Search(ctx context.Context, query string, key SortKey, order Order) ([]*ProductView, error) {
	snapshot, err := q.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return View(snapshot, query, key, order), nil
}

func (q *catalogQueriesImpl) GetProduct(ctx context.Context, id uuid.UUID) (*ProductView, error) {
	p, err := q.products.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, errs.Mark(err, ErrCatalogUnavailable)
	}
	p.AverageRating = q.ratingFor(ctx, id)
	return p, nil
}

// loadSnapshot rebuilds the merged catalog on every load: list the products,
// then fan out one review fetch per product. A review fetch that fails
// degrades that one product to the default rating; it never fails the load.
// The rebuilt snapshot is written through to the cache, which is read only as
// a fallback when the product store itself is unreachable.
func (q *catalogQueriesImpl) loadSnapshot(ctx context.Context) ([]*ProductView, error) {
	products, err := q.products.List(ctx)
	if err != nil {
		cached, cacheErr := q.cache.Load(ctx)
		if cacheErr == nil {
			slog.Warn("product list fetch failed, serving last catalog snapshot", "error", err)
			return cached, nil
		}
		if !infra.IsKind(cacheErr, infra.KindCacheMiss) {
			slog.Warn("catalog snapshot cache read failed", "error", cacheErr)
		}
		return nil, errs.Mark(err, ErrCatalogUnavailable)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(ratingFanOutLimit)
	for _, p := range products {
		g.Go(func() error {
			p.AverageRating = q.ratingFor(gctx, p.ID)
			return nil
		})
	}
	_ = g.Wait()

	if err := q.cache.Store(ctx, products); err != nil {
		slog.Warn("catalog snapshot cache write failed", "error", err)
	}
	return products, nil
}

func (q *catalogQueriesImpl) ratingFor(ctx context.Context, productID uuid.UUID) float64 {
	productReviews, err := q.reviews.ListByProduct(ctx, productID)
	if err != nil {
		slog.Warn("review fetch failed, falling back to default rating",
			"product_id", productID, "error", err)
		return review.DefaultRating
	}
	return review.AverageApproved(productReviews)
}

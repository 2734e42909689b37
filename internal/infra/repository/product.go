package repository

import (
	"context"
	"errors"

	"pistachiohut/internal/infra"
	"pistachiohut/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProductRepository struct {
	db *pgxpool.Pool
}

func NewProductRepository(db *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{db: db}
}

const productColumns = `
	id, name, description, price_cents,
	COALESCE(discounted_price_cents, price_cents),
	stock_count, popularity, category, image_url`

func scanProduct(row pgx.Row) (*queries.ProductView, error) {
	var p queries.ProductView
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.PriceCents,
		&p.DiscountedPriceCents,
		&p.StockCount, &p.Popularity, &p.Category, &p.ImageURL,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) List(ctx context.Context) ([]*queries.ProductView, error) {
	rows, err := r.db.Query(ctx, `SELECT`+productColumns+` FROM products ORDER BY created_at, id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products", err)
	}
	defer rows.Close()

	var out []*queries.ProductView
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan product", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read product rows", err)
	}
	return out, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.ProductView, error) {
	p, err := scanProduct(r.db.QueryRow(ctx, `SELECT`+productColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get product", err)
	}
	return p, nil
}

// UpdateDiscountedPrice commits a staff price override. Validation happens in
// the usecase layer; here the write either lands or the product is missing.
func (r *ProductRepository) UpdateDiscountedPrice(ctx context.Context, id uuid.UUID, priceCents int64) error {
	ct, err := r.db.Exec(ctx,
		`UPDATE products SET discounted_price_cents = $2, updated_at = now() WHERE id = $1`,
		id, priceCents,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update discounted price", err)
	}
	if ct.RowsAffected() == 0 {
		return infra.WrapRepoErr("product not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

package repository

import (
	"context"
	"errors"

	"pistachiohut/internal/domain/user"
	"pistachiohut/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// EmailByID resolves a token subject to the account's durable identity.
func (r *UserRepository) EmailByID(ctx context.Context, id uuid.UUID) (user.Email, error) {
	var raw string
	err := r.db.QueryRow(ctx, `SELECT email FROM users WHERE id = $1 AND is_active`, id).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.Email{}, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return user.Email{}, infra.WrapRepoErr("failed to resolve user identity", err)
	}

	email, err := user.NewEmail(raw)
	if err != nil {
		return user.Email{}, infra.WrapRepoErr("stored email is malformed", err)
	}
	return email, nil
}

package userrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/poolkeeper/internal/domain"
	"github.com/GlebRadaev/poolkeeper/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// GetUser returns nil, nil for an address that never deposited.
func (r *Repository) GetUser(ctx context.Context, address string) (*domain.UserInfo, error) {
	query := `
        SELECT address, amount::text
        FROM users
        WHERE address = $1
    `
	var user domain.UserInfo
	var amount string
	err := r.db.QueryRow(ctx, query, address).Scan(&user.Address, &amount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get user", zap.Error(err))
		return nil, err
	}
	user.Amount, err = domain.ParseAmount(amount)
	if err != nil {
		return nil, fmt.Errorf("%w: amount of %s: %v", domain.ErrCorruptedState, address, err)
	}
	return &user, nil
}

func (r *Repository) PutUser(ctx context.Context, user *domain.UserInfo) error {
	query := `
        INSERT INTO users (address, amount)
        VALUES ($1, $2::numeric)
        ON CONFLICT (address) DO UPDATE SET amount = EXCLUDED.amount
    `
	_, err := r.db.Exec(ctx, query, user.Address, user.Amount.String())
	if err != nil {
		zap.L().Error("failed to save user", zap.Error(err))
		return err
	}
	return nil
}

// ListUserIdentities enumerates addresses in ascending byte order.
func (r *Repository) ListUserIdentities(ctx context.Context) ([]string, error) {
	query := `
        SELECT address
        FROM users
        ORDER BY address COLLATE "C" ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to list users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	addresses := []string{}
	for rows.Next() {
		var address string
		if err := rows.Scan(&address); err != nil {
			zap.L().Error("failed to scan user row", zap.Error(err))
			return nil, err
		}
		addresses = append(addresses, address)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate users", zap.Error(err))
		return nil, err
	}
	return addresses, nil
}

package poolrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/poolkeeper/internal/domain"
	"github.com/GlebRadaev/poolkeeper/internal/pg"
)

// Repository keeps the two singletons: the pool state and the registered
// token service address.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetPoolState(ctx context.Context) (*domain.PoolState, error) {
	query := `
        SELECT total_money::text
        FROM pool_state
        WHERE id = 1
    `
	var total string
	err := r.db.QueryRow(ctx, query).Scan(&total)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: pool state", domain.ErrUninitialized)
		}
		zap.L().Error("failed to get pool state", zap.Error(err))
		return nil, err
	}
	amount, err := domain.ParseAmount(total)
	if err != nil {
		return nil, fmt.Errorf("%w: pool total %q: %v", domain.ErrCorruptedState, total, err)
	}
	return &domain.PoolState{TotalMoney: amount}, nil
}

func (r *Repository) SetPoolState(ctx context.Context, state *domain.PoolState) error {
	query := `
        INSERT INTO pool_state (id, total_money)
        VALUES (1, $1::numeric)
        ON CONFLICT (id) DO UPDATE SET total_money = EXCLUDED.total_money
    `
	_, err := r.db.Exec(ctx, query, state.TotalMoney.String())
	if err != nil {
		zap.L().Error("failed to save pool state", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) GetTokenService(ctx context.Context) (string, error) {
	query := `
        SELECT address
        FROM token_service
        WHERE id = 1
    `
	var address string
	err := r.db.QueryRow(ctx, query).Scan(&address)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("%w: token service address", domain.ErrUninitialized)
		}
		zap.L().Error("failed to get token service address", zap.Error(err))
		return "", err
	}
	return address, nil
}

func (r *Repository) SetTokenService(ctx context.Context, address string) error {
	query := `
        INSERT INTO token_service (id, address)
        VALUES (1, $1)
        ON CONFLICT (id) DO UPDATE SET address = EXCLUDED.address
    `
	_, err := r.db.Exec(ctx, query, address)
	if err != nil {
		zap.L().Error("failed to save token service address", zap.Error(err))
		return err
	}
	return nil
}

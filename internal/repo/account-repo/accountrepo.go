package accountrepo

import (
	"context"

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

func (repo *Repository) FindByAddress(ctx context.Context, address string) (*domain.Account, error) {
	var account domain.Account
	err := repo.db.QueryRow(ctx, "SELECT id, address, password_hash FROM accounts WHERE address = $1", address).
		Scan(&account.ID, &account.Address, &account.PasswordHash)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find account", zap.Error(err))
		return nil, err
	}
	return &account, nil
}

func (repo *Repository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	query := `
		INSERT INTO accounts (address, password_hash)
		VALUES ($1, $2)
		RETURNING id, created_at
	`
	err := repo.db.QueryRow(ctx, query, account.Address, account.PasswordHash).Scan(&account.ID, &account.CreatedAt)
	if err != nil {
		zap.L().Error("can't save account", zap.Error(err))
		return nil, err
	}
	return account, nil
}

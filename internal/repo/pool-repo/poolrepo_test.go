package poolrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/poolkeeper/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func TestRepository_GetPoolState(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`SELECT total_money::text FROM pool_state WHERE id = 1`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr error
		result    *domain.PoolState
	}{
		{
			name: "Pool state exists",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WillReturnRows(pgxmock.NewRows([]string{"total_money"}).AddRow("55"))
			},
			result: &domain.PoolState{TotalMoney: domain.NewAmount(55)},
		},
		{
			name: "Never initialized",
			mockSetup: func() {
				mock.ExpectQuery(query).WillReturnError(pgx.ErrNoRows)
			},
			expectErr: domain.ErrUninitialized,
		},
		{
			name: "Garbage total",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WillReturnRows(pgxmock.NewRows([]string{"total_money"}).AddRow("-1"))
			},
			expectErr: domain.ErrCorruptedState,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WillReturnError(errors.New("database error"))
			},
			expectErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetPoolState(context.Background())

			if tt.expectErr != nil {
				assert.Error(t, err)
				assert.Nil(t, result)
				if errors.Is(tt.expectErr, domain.ErrUninitialized) || errors.Is(tt.expectErr, domain.ErrCorruptedState) {
					assert.ErrorIs(t, err, tt.expectErr)
				}
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.result, result)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SetPoolState(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`INSERT INTO pool_state (id, total_money) VALUES (1, $1::numeric) ON CONFLICT (id) DO UPDATE SET total_money = EXCLUDED.total_money`)

	mock.ExpectExec(query).WithArgs("30").WillReturnResult(pgxmock.NewResult("INSERT", 1))
	err := repo.SetPoolState(context.Background(), &domain.PoolState{TotalMoney: domain.NewAmount(30)})
	assert.NoError(t, err)

	mock.ExpectExec(query).WithArgs("0").WillReturnError(errors.New("database error"))
	err = repo.SetPoolState(context.Background(), &domain.PoolState{})
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_TokenService(t *testing.T) {
	repo, mock := NewMock(t)
	selectQuery := regexp.QuoteMeta(`SELECT address FROM token_service WHERE id = 1`)
	upsertQuery := regexp.QuoteMeta(`INSERT INTO token_service (id, address) VALUES (1, $1) ON CONFLICT (id) DO UPDATE SET address = EXCLUDED.address`)

	mock.ExpectQuery(selectQuery).WillReturnError(pgx.ErrNoRows)
	_, err := repo.GetTokenService(context.Background())
	assert.ErrorIs(t, err, domain.ErrUninitialized)

	mock.ExpectExec(upsertQuery).WithArgs("token_address").WillReturnResult(pgxmock.NewResult("INSERT", 1))
	assert.NoError(t, repo.SetTokenService(context.Background(), "token_address"))

	mock.ExpectQuery(selectQuery).
		WillReturnRows(pgxmock.NewRows([]string{"address"}).AddRow("token_address"))
	address, err := repo.GetTokenService(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "token_address", address)

	mock.ExpectQuery(selectQuery).WillReturnError(errors.New("database error"))
	_, err = repo.GetTokenService(context.Background())
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

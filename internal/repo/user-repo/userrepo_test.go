package userrepo

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

func TestRepository_GetUser(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`SELECT address, amount::text FROM users WHERE address = $1`)

	tests := []struct {
		name      string
		address   string
		mockSetup func()
		expectErr bool
		result    *domain.UserInfo
	}{
		{
			name:    "Registered user",
			address: "sender0",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("sender0").
					WillReturnRows(pgxmock.NewRows([]string{"address", "amount"}).AddRow("sender0", "10"))
			},
			result: &domain.UserInfo{Address: "sender0", Amount: domain.NewAmount(10)},
		},
		{
			name:    "Unknown user returns nil",
			address: "nobody",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("nobody").WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:    "Database error",
			address: "sender0",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("sender0").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetUser(context.Background(), tt.address)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_PutUser(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`INSERT INTO users (address, amount) VALUES ($1, $2::numeric) ON CONFLICT (address) DO UPDATE SET amount = EXCLUDED.amount`)

	mock.ExpectExec(query).WithArgs("sender1", "15").WillReturnResult(pgxmock.NewResult("INSERT", 1))
	assert.NoError(t, repo.PutUser(context.Background(), &domain.UserInfo{Address: "sender1", Amount: domain.NewAmount(15)}))

	mock.ExpectExec(query).WithArgs("sender1", "15").WillReturnError(errors.New("database error"))
	assert.Error(t, repo.PutUser(context.Background(), &domain.UserInfo{Address: "sender1", Amount: domain.NewAmount(15)}))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListUserIdentities(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`SELECT address FROM users ORDER BY address COLLATE "C" ASC`)

	mock.ExpectQuery(query).
		WillReturnRows(pgxmock.NewRows([]string{"address"}).
			AddRow("sender0").AddRow("sender1").AddRow("sender2"))
	addresses, err := repo.ListUserIdentities(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []string{"sender0", "sender1", "sender2"}, addresses)

	mock.ExpectQuery(query).WillReturnRows(pgxmock.NewRows([]string{"address"}))
	addresses, err = repo.ListUserIdentities(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, addresses)

	mock.ExpectQuery(query).WillReturnError(errors.New("database error"))
	_, err = repo.ListUserIdentities(context.Background())
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

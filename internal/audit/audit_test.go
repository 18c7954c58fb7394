package audit

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/poolkeeper/internal/domain"
)

func NewMock(t *testing.T) (*Auditor, *MockStore) {
	ctrl := gomock.NewController(t)
	store := NewMockStore(ctrl)
	return New(context.Background(), store), store
}

func expectUser(store *MockStore, address string, amount uint64) {
	store.EXPECT().GetUser(gomock.Any(), address).Return(&domain.UserInfo{Address: address, Amount: domain.NewAmount(amount)}, nil)
}

func TestCheck(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name            string
		prepareMock     func(store *MockStore)
		expectedSum     string
		expectedUsers   int
		consistent      bool
		expectedErrorIs error
		expectedError   string
	}{
		{
			name: "Consistent pool",
			prepareMock: func(store *MockStore) {
				store.EXPECT().GetPoolState(ctx).Return(&domain.PoolState{TotalMoney: domain.NewAmount(50)}, nil)
				store.EXPECT().ListUserIdentities(ctx).Return([]string{"S0", "S1", "S2", "S3"}, nil)
				expectUser(store, "S0", 10)
				expectUser(store, "S1", 15)
				expectUser(store, "S2", 5)
				expectUser(store, "S3", 20)
			},
			expectedSum:   "50",
			expectedUsers: 4,
			consistent:    true,
		},
		{
			name: "Divergent pool",
			prepareMock: func(store *MockStore) {
				store.EXPECT().GetPoolState(ctx).Return(&domain.PoolState{TotalMoney: domain.NewAmount(51)}, nil)
				store.EXPECT().ListUserIdentities(ctx).Return([]string{"S0"}, nil)
				expectUser(store, "S0", 50)
			},
			expectedSum:   "50",
			expectedUsers: 1,
			consistent:    false,
		},
		{
			name: "Empty pool",
			prepareMock: func(store *MockStore) {
				store.EXPECT().GetPoolState(ctx).Return(&domain.PoolState{}, nil)
				store.EXPECT().ListUserIdentities(ctx).Return([]string{}, nil)
			},
			expectedSum: "0",
			consistent:  true,
		},
		{
			name: "Missing user record",
			prepareMock: func(store *MockStore) {
				store.EXPECT().GetPoolState(ctx).Return(&domain.PoolState{}, nil)
				store.EXPECT().ListUserIdentities(ctx).Return([]string{"S0"}, nil)
				store.EXPECT().GetUser(gomock.Any(), "S0").Return(nil, nil)
			},
			expectedErrorIs: domain.ErrCorruptedState,
		},
		{
			name: "Pool not initialized",
			prepareMock: func(store *MockStore) {
				store.EXPECT().GetPoolState(ctx).Return(nil, domain.ErrUninitialized)
			},
			expectedErrorIs: domain.ErrUninitialized,
		},
		{
			name: "Store error",
			prepareMock: func(store *MockStore) {
				store.EXPECT().GetPoolState(ctx).Return(&domain.PoolState{}, nil)
				store.EXPECT().ListUserIdentities(ctx).Return(nil, errors.New("db error"))
			},
			expectedError: "db error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auditor, store := NewMock(t)
			tt.prepareMock(store)

			report, err := auditor.Check(ctx)
			switch {
			case tt.expectedErrorIs != nil:
				assert.ErrorIs(t, err, tt.expectedErrorIs)
			case tt.expectedError != "":
				assert.EqualError(t, err, tt.expectedError)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.expectedSum, report.Sum.String())
				assert.Equal(t, tt.expectedUsers, report.Users)
				assert.Equal(t, tt.consistent, report.Consistent())
			}
		})
	}
}

func TestRegister(t *testing.T) {
	auditor, _ := NewMock(t)
	assert.NoError(t, auditor.Register("@every 1m"))
	assert.Error(t, auditor.Register("not a schedule"))

	auditor.Start()
	auditor.Stop()
}

func TestRunLogsWithoutPanicking(t *testing.T) {
	auditor, store := NewMock(t)
	store.EXPECT().GetPoolState(gomock.Any()).Return(&domain.PoolState{TotalMoney: domain.NewAmount(1)}, nil)
	store.EXPECT().ListUserIdentities(gomock.Any()).Return([]string{}, nil)
	auditor.run()

	store.EXPECT().GetPoolState(gomock.Any()).Return(nil, domain.ErrUninitialized)
	auditor.run()
}

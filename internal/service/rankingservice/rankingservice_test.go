package rankingservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/poolkeeper/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockUserRepo) {
	ctrl := gomock.NewController(t)
	userRepo := NewMockUserRepo(ctrl)
	return New(userRepo), userRepo
}

func user(address string, amount uint64) domain.UserInfo {
	return domain.UserInfo{Address: address, Amount: domain.NewAmount(amount)}
}

func expectUsers(ctx context.Context, repo *MockUserRepo, users ...domain.UserInfo) {
	identities := make([]string, 0, len(users))
	for _, u := range users {
		identities = append(identities, u.Address)
	}
	repo.EXPECT().ListUserIdentities(ctx).Return(identities, nil)
	for _, u := range users {
		repo.EXPECT().GetUser(ctx, u.Address).Return(&domain.UserInfo{Address: u.Address, Amount: u.Amount}, nil)
	}
}

func TestTopUsers(t *testing.T) {
	service, userRepo := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name          string
		prepareMock   func()
		expected      []domain.UserInfo
		expectedError error
	}{
		{
			name: "Two highest with tie",
			prepareMock: func() {
				expectUsers(ctx, userRepo, user("A", 10), user("B", 20), user("C", 5), user("D", 20))
			},
			expected: []domain.UserInfo{user("D", 20), user("B", 20)},
		},
		{
			name: "Distinct amounts",
			prepareMock: func() {
				expectUsers(ctx, userRepo, user("S0", 10), user("S1", 15), user("S2", 5), user("S3", 20))
			},
			expected: []domain.UserInfo{user("S3", 20), user("S1", 15)},
		},
		{
			name: "Exactly two users",
			prepareMock: func() {
				expectUsers(ctx, userRepo, user("A", 30), user("B", 1))
			},
			expected: []domain.UserInfo{user("A", 30), user("B", 1)},
		},
		{
			name: "Single user",
			prepareMock: func() {
				expectUsers(ctx, userRepo, user("A", 0))
			},
			expected: []domain.UserInfo{user("A", 0)},
		},
		{
			name: "No users",
			prepareMock: func() {
				userRepo.EXPECT().ListUserIdentities(ctx).Return([]string{}, nil)
			},
			expectedError: domain.ErrCorruptedState,
		},
		{
			name: "Listed identity without record",
			prepareMock: func() {
				userRepo.EXPECT().ListUserIdentities(ctx).Return([]string{"A", "B"}, nil)
				userRepo.EXPECT().GetUser(ctx, "A").Return(&domain.UserInfo{Address: "A", Amount: domain.NewAmount(1)}, nil)
				userRepo.EXPECT().GetUser(ctx, "B").Return(nil, nil)
			},
			expectedError: domain.ErrCorruptedState,
		},
		{
			name: "Store error",
			prepareMock: func() {
				userRepo.EXPECT().ListUserIdentities(ctx).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			users, err := service.TopUsers(ctx)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Nil(t, users)
				if !errors.Is(err, tt.expectedError) {
					assert.Equal(t, tt.expectedError.Error(), err.Error())
				}
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, users)
		})
	}
}

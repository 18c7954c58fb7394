package rankingservice

import (
	"context"
	"fmt"
	"sort"

	"github.com/GlebRadaev/poolkeeper/internal/domain"
)

//go:generate mockgen -source=rankingservice.go -destination=mock_rankingservice.go -package=rankingservice

type UserRepo interface {
	GetUser(ctx context.Context, address string) (*domain.UserInfo, error)
	ListUserIdentities(ctx context.Context) ([]string, error)
}

type Service struct {
	userRepo UserRepo
}

func New(userRepo UserRepo) *Service {
	return &Service{userRepo: userRepo}
}

// TopUsers returns the two largest balances, highest first. Equal balances keep
// the ascending identity order of the store enumeration, so the later identity
// of a tie ranks first. With fewer than two users every user is returned in
// ascending amount order.
func (s *Service) TopUsers(ctx context.Context) ([]domain.UserInfo, error) {
	users, err := s.loadUsers(ctx)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, fmt.Errorf("%w: no registered users to rank", domain.ErrCorruptedState)
	}

	sort.SliceStable(users, func(i, j int) bool {
		return users[i].Amount.Cmp(users[j].Amount) < 0
	})

	if len(users) < 2 {
		return users, nil
	}
	n := len(users)
	return []domain.UserInfo{users[n-1], users[n-2]}, nil
}

func (s *Service) loadUsers(ctx context.Context) ([]domain.UserInfo, error) {
	identities, err := s.userRepo.ListUserIdentities(ctx)
	if err != nil {
		return nil, err
	}
	users := make([]domain.UserInfo, 0, len(identities))
	for _, address := range identities {
		user, err := s.userRepo.GetUser(ctx, address)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, fmt.Errorf("%w: no record for listed user %s", domain.ErrCorruptedState, address)
		}
		users = append(users, *user)
	}
	return users, nil
}

package ledgerservice

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/GlebRadaev/poolkeeper/internal/domain"
	"github.com/GlebRadaev/poolkeeper/pkg/validate"
)

//go:generate mockgen -source=ledgerservice.go -destination=mock_ledgerservice.go -package=ledgerservice

type PoolRepo interface {
	GetPoolState(ctx context.Context) (*domain.PoolState, error)
	SetPoolState(ctx context.Context, state *domain.PoolState) error
	GetTokenService(ctx context.Context) (string, error)
	SetTokenService(ctx context.Context, address string) error
}

type UserRepo interface {
	GetUser(ctx context.Context, address string) (*domain.UserInfo, error)
	PutUser(ctx context.Context, user *domain.UserInfo) error
	ListUserIdentities(ctx context.Context) ([]string, error)
}

// Service is the ledger state machine. Every method is one atomic transition:
// preconditions are checked before the first write, and the caller runs the
// call inside a single transaction together with dispatching the returned
// instruction.
type Service struct {
	poolRepo    PoolRepo
	userRepo    UserRepo
	poolAddress string
}

func New(poolRepo PoolRepo, userRepo UserRepo, poolAddress string) *Service {
	return &Service{
		poolRepo:    poolRepo,
		userRepo:    userRepo,
		poolAddress: poolAddress,
	}
}

// Instantiate sets an empty pool state unless one already exists.
func (s *Service) Instantiate(ctx context.Context) error {
	_, err := s.poolRepo.GetPoolState(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrUninitialized) {
		return err
	}
	if err := s.poolRepo.SetPoolState(ctx, &domain.PoolState{TotalMoney: domain.NewAmount(0)}); err != nil {
		zap.L().Error("failed to initialize pool state", zap.Error(err))
		return err
	}
	zap.L().Info("pool state initialized")
	return nil
}

// RegisterTokenService stores the token service address. Any requester may call it.
func (s *Service) RegisterTokenService(ctx context.Context, requester, address string) error {
	if err := validate.Address(address); err != nil {
		return err
	}
	if err := s.poolRepo.SetTokenService(ctx, address); err != nil {
		return err
	}
	zap.L().Info("token service registered", zap.String("requester", requester), zap.String("address", address))
	return nil
}

// MintOnBuy does not touch the ledger: it only asks the token service to mint
// amount directly to the requester.
func (s *Service) MintOnBuy(ctx context.Context, requester string, amount domain.Amount) (*domain.Instruction, error) {
	token, err := s.poolRepo.GetTokenService(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.Instruction{
		Contract:  token,
		Kind:      domain.InstructionMint,
		Recipient: requester,
		Amount:    amount,
	}, nil
}

// Deposit credits the requester and the pool total, and asks the token
// service to pull amount from the requester into the pool.
func (s *Service) Deposit(ctx context.Context, requester string, amount domain.Amount) (*domain.Instruction, error) {
	state, err := s.poolRepo.GetPoolState(ctx)
	if err != nil {
		return nil, err
	}
	token, err := s.poolRepo.GetTokenService(ctx)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.GetUser(ctx, requester)
	if err != nil {
		return nil, err
	}
	if user == nil {
		user = &domain.UserInfo{Address: requester}
	}

	balance, err := user.Amount.Add(amount)
	if err != nil {
		return nil, fmt.Errorf("deposit of %s for %s: %w", amount, requester, err)
	}
	total, err := state.TotalMoney.Add(amount)
	if err != nil {
		return nil, fmt.Errorf("pool total after deposit of %s: %w", amount, err)
	}

	user.Amount = balance
	if err := s.userRepo.PutUser(ctx, user); err != nil {
		return nil, err
	}
	if err := s.poolRepo.SetPoolState(ctx, &domain.PoolState{TotalMoney: total}); err != nil {
		return nil, err
	}

	return &domain.Instruction{
		Contract:  token,
		Kind:      domain.InstructionTransferFrom,
		Owner:     requester,
		Recipient: s.poolAddress,
		Amount:    amount,
	}, nil
}

// Withdraw debits the requester and the pool total, and asks the token service
// to transfer amount from the pool to the requester.
func (s *Service) Withdraw(ctx context.Context, requester string, amount domain.Amount) (*domain.Instruction, error) {
	state, err := s.poolRepo.GetPoolState(ctx)
	if err != nil {
		return nil, err
	}
	token, err := s.poolRepo.GetTokenService(ctx)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.GetUser(ctx, requester)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: %s has no deposit", domain.ErrUnauthorized, requester)
	}
	if user.Amount.Cmp(amount) < 0 {
		return nil, fmt.Errorf("%w: balance %s, requested %s", domain.ErrInsufficientFunds, user.Amount, amount)
	}

	balance, err := user.Amount.Sub(amount)
	if err != nil {
		return nil, err
	}
	total, err := state.TotalMoney.Sub(amount)
	if err != nil {
		return nil, fmt.Errorf("%w: pool total %s below withdrawal %s", domain.ErrCorruptedState, state.TotalMoney, amount)
	}

	user.Amount = balance
	if err := s.userRepo.PutUser(ctx, user); err != nil {
		return nil, err
	}
	if err := s.poolRepo.SetPoolState(ctx, &domain.PoolState{TotalMoney: total}); err != nil {
		return nil, err
	}

	return &domain.Instruction{
		Contract:  token,
		Kind:      domain.InstructionTransfer,
		Recipient: requester,
		Amount:    amount,
	}, nil
}

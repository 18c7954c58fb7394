package authservice

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/poolkeeper/internal/domain"
	"github.com/GlebRadaev/poolkeeper/pkg/auth"
	"github.com/GlebRadaev/poolkeeper/pkg/validate"
)

//go:generate mockgen -source=authservice.go -destination=mock_authservice.go -package=authservice

const tokenTTL = 15 * time.Minute

type Repo interface {
	FindByAddress(ctx context.Context, address string) (*domain.Account, error)
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
}

// Service binds ledger addresses to passwords. A logged-in address is the
// requester of every execute call.
type Service struct {
	accountRepo Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		accountRepo: repo,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

func (s *Service) Register(ctx context.Context, address, password string) (*domain.Account, error) {
	if err := validate.Address(address); err != nil {
		return nil, err
	}
	existing, err := s.accountRepo.FindByAddress(ctx, address)
	if err != nil {
		zap.L().Error("can't find account: ", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		zap.L().Info("account already exists", zap.String("address", address))
		return nil, fmt.Errorf("%w: %s", domain.ErrAccountExists, address)
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	account, err := s.accountRepo.Create(ctx, &domain.Account{
		Address:      address,
		PasswordHash: hashedPassword,
	})
	if err != nil {
		zap.L().Error("can't create account: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("account successfully registered", zap.String("address", address))
	return account, nil
}

func (s *Service) Authenticate(ctx context.Context, address, password string) (*domain.Account, error) {
	account, err := s.accountRepo.FindByAddress(ctx, address)
	if err != nil || account == nil {
		zap.L().Info("invalid credentials", zap.String("address", address), zap.Error(err))
		return nil, domain.ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(account.PasswordHash, password); !ok {
		zap.L().Info("invalid credentials", zap.String("address", address))
		return nil, domain.ErrInvalidCredentials
	}
	zap.L().Info("account successfully authenticated", zap.String("address", address))
	return account, nil
}

func (s *Service) GenerateToken(address string) (string, error) {
	token, err := s.jwtService.GenerateJWT(address, time.Now().Add(tokenTTL))
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}

package router

import (
	"context"
	"fmt"

	"github.com/GlebRadaev/poolkeeper/internal/domain"
	"github.com/GlebRadaev/poolkeeper/pkg/validate"
)

//go:generate mockgen -source=router.go -destination=mock_router.go -package=router

type Ledger interface {
	RegisterTokenService(ctx context.Context, requester, address string) error
	MintOnBuy(ctx context.Context, requester string, amount domain.Amount) (*domain.Instruction, error)
	Deposit(ctx context.Context, requester string, amount domain.Amount) (*domain.Instruction, error)
	Withdraw(ctx context.Context, requester string, amount domain.Amount) (*domain.Instruction, error)
}

type Ranking interface {
	TopUsers(ctx context.Context) ([]domain.UserInfo, error)
}

type Store interface {
	GetTokenService(ctx context.Context) (string, error)
	GetUser(ctx context.Context, address string) (*domain.UserInfo, error)
	ListUserIdentities(ctx context.Context) ([]string, error)
}

type TokenQuerier interface {
	Balance(ctx context.Context, token, address string) (domain.Amount, error)
}

const (
	ActionSetTokenAddress = "set_token_address"
	ActionBuy             = "buy"
	ActionDeposit         = "deposit"
	ActionWithdraw        = "withdraw"
)

// Router maps a request envelope onto exactly one ledger, ranking or store
// operation. It holds no state.
type Router struct {
	ledger  Ledger
	ranking Ranking
	store   Store
	tokens  TokenQuerier
}

func New(ledger Ledger, ranking Ranking, store Store, tokens TokenQuerier) *Router {
	return &Router{
		ledger:  ledger,
		ranking: ranking,
		store:   store,
		tokens:  tokens,
	}
}

func (r *Router) Execute(ctx context.Context, sender string, msg domain.ExecuteMsg) (*domain.Response, error) {
	if err := msg.Validate(); err != nil {
		return nil, err
	}

	switch {
	case msg.SetTokenAddress != nil:
		if err := r.ledger.RegisterTokenService(ctx, sender, msg.SetTokenAddress.Address); err != nil {
			return nil, err
		}
		return response(ActionSetTokenAddress, nil,
			domain.Attribute{Key: "address", Value: msg.SetTokenAddress.Address}), nil
	case msg.BuyToken != nil:
		instruction, err := r.ledger.MintOnBuy(ctx, sender, msg.BuyToken.Amount)
		if err != nil {
			return nil, err
		}
		return response(ActionBuy, instruction,
			domain.Attribute{Key: "amount", Value: msg.BuyToken.Amount.String()}), nil
	case msg.Deposit != nil:
		instruction, err := r.ledger.Deposit(ctx, sender, msg.Deposit.Amount)
		if err != nil {
			return nil, err
		}
		return response(ActionDeposit, instruction,
			domain.Attribute{Key: "amount", Value: msg.Deposit.Amount.String()}), nil
	default:
		instruction, err := r.ledger.Withdraw(ctx, sender, msg.Withdraw.Amount)
		if err != nil {
			return nil, err
		}
		return response(ActionWithdraw, instruction,
			domain.Attribute{Key: "amount", Value: msg.Withdraw.Amount.String()}), nil
	}
}

func response(action string, instruction *domain.Instruction, attrs ...domain.Attribute) *domain.Response {
	return &domain.Response{
		Attributes:  append([]domain.Attribute{{Key: "action", Value: action}}, attrs...),
		Instruction: instruction,
	}
}

// Query answers a read request. The result is one of string, []string,
// domain.UserInfo, []domain.UserInfo or domain.BalanceResponse.
func (r *Router) Query(ctx context.Context, msg domain.QueryMsg) (any, error) {
	if err := msg.Validate(); err != nil {
		return nil, err
	}

	switch {
	case msg.GetTokenAddress != nil:
		return r.store.GetTokenService(ctx)
	case msg.GetBalance != nil:
		return r.balance(ctx, msg.GetBalance.Address)
	case msg.GetAllUsers != nil:
		return r.store.ListUserIdentities(ctx)
	case msg.GetUserInfo != nil:
		return r.userInfo(ctx, msg.GetUserInfo.Address)
	default:
		return r.ranking.TopUsers(ctx)
	}
}

func (r *Router) balance(ctx context.Context, address string) (domain.BalanceResponse, error) {
	if err := validate.Address(address); err != nil {
		return domain.BalanceResponse{}, err
	}
	token, err := r.store.GetTokenService(ctx)
	if err != nil {
		return domain.BalanceResponse{}, err
	}
	balance, err := r.tokens.Balance(ctx, token, address)
	if err != nil {
		return domain.BalanceResponse{}, err
	}
	return domain.BalanceResponse{Balance: balance}, nil
}

func (r *Router) userInfo(ctx context.Context, address string) (domain.UserInfo, error) {
	if err := validate.Address(address); err != nil {
		return domain.UserInfo{}, err
	}
	user, err := r.store.GetUser(ctx, address)
	if err != nil {
		return domain.UserInfo{}, err
	}
	if user == nil {
		return domain.UserInfo{}, fmt.Errorf("%w: %s", domain.ErrUserNotFound, address)
	}
	return *user, nil
}

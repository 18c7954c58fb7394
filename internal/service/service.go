package service

import (
	authhandlers "github.com/GlebRadaev/poolkeeper/internal/handlers/auth"
	ledgerhandlers "github.com/GlebRadaev/poolkeeper/internal/handlers/ledger"

	pkgauth "github.com/GlebRadaev/poolkeeper/pkg/auth"

	"github.com/GlebRadaev/poolkeeper/internal/repo"
	"github.com/GlebRadaev/poolkeeper/internal/router"
	"github.com/GlebRadaev/poolkeeper/internal/service/authservice"
	"github.com/GlebRadaev/poolkeeper/internal/service/ledgerservice"
	"github.com/GlebRadaev/poolkeeper/internal/service/rankingservice"
	"github.com/GlebRadaev/poolkeeper/internal/settlement"
)

// TokenService settles instructions and answers balance queries.
type TokenService interface {
	settlement.Dispatcher
	router.TokenQuerier
}

type Services struct {
	AuthService   authhandlers.Service
	LedgerService ledgerhandlers.Service
	Ledger        *ledgerservice.Service
}

func New(repos *repo.Repositories, tokens TokenService, publisher settlement.Publisher, poolAddress string) *Services {
	ledger := ledgerservice.New(repos.PoolRepo, repos.UserRepo, poolAddress)
	ranking := rankingservice.New(repos.UserRepo)
	requests := router.New(ledger, ranking, repos.State(), tokens)
	authService := authservice.New(repos.AccountRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:   authService,
		LedgerService: settlement.New(requests, repos.TXManager, repos.InstructionRepo, tokens, publisher),
		Ledger:        ledger,
	}
}

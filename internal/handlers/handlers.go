package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/poolkeeper/docs"
	authhandlers "github.com/GlebRadaev/poolkeeper/internal/handlers/auth"
	ledgerhandlers "github.com/GlebRadaev/poolkeeper/internal/handlers/ledger"
	"github.com/GlebRadaev/poolkeeper/internal/service"
	"github.com/GlebRadaev/poolkeeper/pkg/auth"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type LedgerHandler interface {
	Execute(w http.ResponseWriter, r *http.Request)
	Query(w http.ResponseWriter, r *http.Request)
	GetTokenAddress(w http.ResponseWriter, r *http.Request)
	GetAllUsers(w http.ResponseWriter, r *http.Request)
	GetUserInfo(w http.ResponseWriter, r *http.Request)
	GetTopUsers(w http.ResponseWriter, r *http.Request)
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetInstructions(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler   AuthHandler
	LedgerHandler LedgerHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:   authhandlers.New(s.AuthService),
		LedgerHandler: ledgerhandlers.New(s.LedgerService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api/accounts", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)
	})
	r.Route("/api/ledger", func(r chi.Router) {
		r.Post("/query", h.LedgerHandler.Query)
		r.Get("/token", h.LedgerHandler.GetTokenAddress)
		r.Get("/users", h.LedgerHandler.GetAllUsers)
		r.Get("/users/{address}", h.LedgerHandler.GetUserInfo)
		r.Get("/top", h.LedgerHandler.GetTopUsers)
		r.Get("/balance/{address}", h.LedgerHandler.GetBalance)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Post("/execute", h.LedgerHandler.Execute)
			r.Get("/instructions", h.LedgerHandler.GetInstructions)
		})
	})

	return r
}

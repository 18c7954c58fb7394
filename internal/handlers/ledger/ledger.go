package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/poolkeeper/internal/domain"
	"github.com/GlebRadaev/poolkeeper/internal/dto"
	"github.com/GlebRadaev/poolkeeper/pkg/auth"
	"github.com/GlebRadaev/poolkeeper/pkg/utils"
)

//go:generate mockgen -source=ledger.go -destination=mock_ledger.go -package=ledger

type Service interface {
	Execute(ctx context.Context, sender string, msg domain.ExecuteMsg) (*domain.Response, error)
	Query(ctx context.Context, msg domain.QueryMsg) (any, error)
	Instructions(ctx context.Context, sender string) ([]domain.InstructionRecord, error)
}

type LedgerHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
	}
}

// statusFor maps ledger errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidAddress),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrAmountOverflow),
		errors.Is(err, domain.ErrInvalidMessage):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusPaymentRequired
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUninitialized):
		return http.StatusConflict
	case errors.Is(err, domain.ErrSettlementRejected):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func respondWithLedgerError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		zap.L().Error("ledger request failed", zap.Error(err))
		utils.RespondWithError(w, status, "Internal server error")
		return
	}
	utils.RespondWithError(w, status, err.Error())
}

// Execute godoc
//
//	@Summary		Execute a ledger request
//	@Description	Run set_token_address, buy_token, deposit or withdraw on behalf of the authenticated address.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ExecuteRequestDTO	true	"Execute envelope"
//	@Success		200		{object}	domain.Response
//	@Failure		400		{object}	utils.Response	"Malformed request"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient funds"
//	@Failure		403		{object}	utils.Response	"No deposit on record"
//	@Failure		409		{object}	utils.Response	"Token service not registered"
//	@Failure		502		{object}	utils.Response	"Token service rejected the instruction"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/ledger/execute [post]
func (h *LedgerHandler) Execute(w http.ResponseWriter, r *http.Request) {
	sender, ok := auth.AddressFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var msg domain.ExecuteMsg
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.ledgerService.Execute(r.Context(), sender, msg)
	if err != nil {
		respondWithLedgerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Query godoc
//
//	@Summary		Query the ledger
//	@Description	Answer get_token_address, get_balance, get_all_users, get_user_info or get_top_users.
//	@Tags			Ledger
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.QueryRequestDTO	true	"Query envelope"
//	@Success		200
//	@Failure		400	{object}	utils.Response	"Malformed request"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		409	{object}	utils.Response	"Token service not registered"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/ledger/query [post]
func (h *LedgerHandler) Query(w http.ResponseWriter, r *http.Request) {
	var msg domain.QueryMsg
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	h.query(w, r, msg)
}

func (h *LedgerHandler) query(w http.ResponseWriter, r *http.Request, msg domain.QueryMsg) {
	result, err := h.ledgerService.Query(r.Context(), msg)
	if err != nil {
		respondWithLedgerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}

// GetTokenAddress godoc
//
//	@Summary	Token service address
//	@Tags		Ledger
//	@Produce	json
//	@Success	200	{object}	dto.TokenAddressResponseDTO
//	@Failure	409	{object}	utils.Response	"Token service not registered"
//	@Router		/api/ledger/token [get]
func (h *LedgerHandler) GetTokenAddress(w http.ResponseWriter, r *http.Request) {
	result, err := h.ledgerService.Query(r.Context(), domain.QueryMsg{GetTokenAddress: &domain.GetTokenAddress{}})
	if err != nil {
		respondWithLedgerError(w, err)
		return
	}
	address, _ := result.(string)
	utils.RespondWithJSON(w, http.StatusOK, dto.TokenAddressResponseDTO{Address: address})
}

// GetAllUsers godoc
//
//	@Summary	Registered user addresses in ascending order
//	@Tags		Ledger
//	@Produce	json
//	@Success	200	{array}	string
//	@Router		/api/ledger/users [get]
func (h *LedgerHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	h.query(w, r, domain.QueryMsg{GetAllUsers: &domain.GetAllUsers{}})
}

// GetUserInfo godoc
//
//	@Summary	Balance on deposit for one user
//	@Tags		Ledger
//	@Produce	json
//	@Param		address	path		string	true	"User address"
//	@Success	200		{object}	domain.UserInfo
//	@Failure	400		{object}	utils.Response	"Invalid address"
//	@Failure	404		{object}	utils.Response	"User not found"
//	@Router		/api/ledger/users/{address} [get]
func (h *LedgerHandler) GetUserInfo(w http.ResponseWriter, r *http.Request) {
	h.query(w, r, domain.QueryMsg{GetUserInfo: &domain.GetUserInfo{Address: chi.URLParam(r, "address")}})
}

// GetTopUsers godoc
//
//	@Summary	Two largest balances, highest first
//	@Tags		Ledger
//	@Produce	json
//	@Success	200	{array}		domain.UserInfo
//	@Failure	500	{object}	utils.Response	"No users to rank"
//	@Router		/api/ledger/top [get]
func (h *LedgerHandler) GetTopUsers(w http.ResponseWriter, r *http.Request) {
	h.query(w, r, domain.QueryMsg{GetTopUsers: &domain.GetTopUsers{}})
}

// GetBalance godoc
//
//	@Summary	Token balance held by an address, as reported by the token service
//	@Tags		Ledger
//	@Produce	json
//	@Param		address	path		string	true	"Address"
//	@Success	200		{object}	domain.BalanceResponse
//	@Failure	400		{object}	utils.Response	"Invalid address"
//	@Failure	502		{object}	utils.Response	"Token service error"
//	@Router		/api/ledger/balance/{address} [get]
func (h *LedgerHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	h.query(w, r, domain.QueryMsg{GetBalance: &domain.GetBalance{Address: chi.URLParam(r, "address")}})
}

// GetInstructions godoc
//
//	@Summary		Instructions committed for the authenticated address
//	@Description	Newest first.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		domain.InstructionRecord
//	@Success		204	{string}	string			"No instructions"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/ledger/instructions [get]
func (h *LedgerHandler) GetInstructions(w http.ResponseWriter, r *http.Request) {
	sender, ok := auth.AddressFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	records, err := h.ledgerService.Instructions(r.Context(), sender)
	if err != nil {
		respondWithLedgerError(w, err)
		return
	}
	if len(records) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, records)
}

package ledger

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/valorhood/internal/domain"
	"github.com/GlebRadaev/valorhood/internal/dto"
	"github.com/GlebRadaev/valorhood/internal/handlers/respond"
	"github.com/GlebRadaev/valorhood/pkg/auth"
	"github.com/GlebRadaev/valorhood/pkg/utils"
)

type Service interface {
	GetBalance(ctx context.Context, userID string) (int64, error)
	GetTransactions(ctx context.Context, userID string) ([]domain.Transaction, error)
	SpendAura(ctx context.Context, userID string, amount, minAuraFloor int64) (*domain.LedgerResult, error)
}

type LedgerHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
	}
}

// GetBalance godoc
//
//	@Summary		Get current aura balance
//	@Description	Retrieve the aura balance of the authenticated user.
//	@Tags			Aura
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO	"Current balance"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		404	{object}	utils.Response			"User not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/balance [get]
func (h *LedgerHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	balance, err := h.ledgerService.GetBalance(r.Context(), userID)
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{Aura: balance})
}

// GetTransactions godoc
//
//	@Summary		Get aura transaction history
//	@Description	List the authenticated user's transactions, newest first.
//	@Tags			Aura
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TransactionDTO	"Transaction history"
//	@Success		204	{object}	utils.Response		"No transactions"
//	@Failure		401	{object}	utils.Response		"User not authorized"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/user/transactions [get]
func (h *LedgerHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	txs, err := h.ledgerService.GetTransactions(r.Context(), userID)
	if err != nil {
		respond.Error(w, err)
		return
	}
	if len(txs) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTransactionDTOs(txs))
}

// Spend godoc
//
//	@Summary		Spend aura
//	@Description	Debit aura from the authenticated user, keeping the balance at or above min_aura.
//	@Tags			Aura
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SpendRequestDTO	true	"Spend request payload"
//	@Success		200		{object}	dto.LedgerResultDTO	"Spend applied"
//	@Failure		400		{object}	utils.Response		"Invalid amount or floor"
//	@Failure		401		{object}	utils.Response		"User not authorized"
//	@Failure		402		{object}	utils.Response		"Insufficient balance"
//	@Failure		409		{object}	utils.Response		"Concurrent update"
//	@Failure		500		{object}	utils.Response		"Internal server error"
//	@Router			/api/user/aura/spend [post]
func (h *LedgerHandler) Spend(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.SpendRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.ledgerService.SpendAura(r.Context(), userID, req.Amount, req.MinAura)
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewLedgerResultDTO(result))
}

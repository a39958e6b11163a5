package balance

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/bookstore/internal/domain"
	"github.com/GlebRadaev/bookstore/internal/dto"
	"github.com/GlebRadaev/bookstore/internal/handlers/apiutil"
	"github.com/GlebRadaev/bookstore/pkg/utils"
)

type Service interface {
	GetBalance(ctx context.Context, userID domain.ID) (*domain.Balance, error)
	TopUp(ctx context.Context, userID domain.ID, token string, coins int64) (*domain.TopUpResult, error)
	GetTopUps(ctx context.Context, userID domain.ID) ([]domain.TopUp, error)
}

type BalanceHandler struct {
	balanceService Service
}

func New(balanceService Service) *BalanceHandler {
	return &BalanceHandler{
		balanceService: balanceService,
	}
}

// GetBalance godoc
//
//	@Summary		Get current user balance
//	@Description	Retrieve the coin balance and the owned books of the authenticated user.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO	"Current balance and owned books"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		404	{object}	utils.Response			"User not found"
//	@Failure		503	{object}	utils.Response			"Store temporarily unavailable"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/balance [get]
func (h *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID, ok := apiutil.UserID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	balance, err := h.balanceService.GetBalance(r.Context(), userID)
	if err != nil {
		apiutil.RespondWithError(w, err)
		return
	}

	owned := make([]string, len(balance.OwnedBooks))
	for i, id := range balance.OwnedBooks {
		owned[i] = id.String()
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Coins:      balance.Coins,
		OwnedBooks: owned,
	})
}

// TopUp godoc
//
//	@Summary		Apply a confirmed top-up
//	@Description	Credit coins once per idempotency token. Replaying the same token returns the current balance with duplicate set.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TopUpRequestDTO		true	"Top-up request payload"
//	@Success		200		{object}	dto.TopUpResponseDTO	"Balance after the top-up"
//	@Failure		400		{object}	utils.Response			"Invalid request"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		403		{object}	utils.Response			"User mismatch"
//	@Failure		404		{object}	utils.Response			"User not found"
//	@Failure		409		{object}	utils.Response			"Token used for another top-up"
//	@Failure		503		{object}	utils.Response			"Store temporarily unavailable"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/user/balance/topup [post]
func (h *BalanceHandler) TopUp(w http.ResponseWriter, r *http.Request) {
	var req dto.TopUpRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID, err := apiutil.ResolveUser(r, req.UserID)
	if err != nil {
		apiutil.RespondWithError(w, err)
		return
	}

	result, err := h.balanceService.TopUp(r.Context(), userID, req.IdempotencyToken, req.CoinsToCredit)
	if err != nil {
		apiutil.RespondWithError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TopUpResponseDTO{
		Balance:   result.Balance,
		Duplicate: result.Duplicate,
	})
}

// GetTopUps godoc
//
//	@Summary		Get top-up history
//	@Description	Get the applied top-ups of the authenticated user, newest first
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TopUpHistoryResponseDTO	"Top-up history"
//	@Success		204	{object}	utils.Response				"No top-ups"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		503	{object}	utils.Response				"Store temporarily unavailable"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/user/topups [get]
func (h *BalanceHandler) GetTopUps(w http.ResponseWriter, r *http.Request) {
	userID, ok := apiutil.UserID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	topUps, err := h.balanceService.GetTopUps(r.Context(), userID)
	if err != nil {
		apiutil.RespondWithError(w, err)
		return
	}

	if len(topUps) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Top-ups not found")
		return
	}

	response := make([]dto.TopUpHistoryResponseDTO, len(topUps))
	for i, tp := range topUps {
		response[i] = dto.TopUpHistoryResponseDTO{
			Token:     tp.Token,
			Coins:     tp.Coins,
			AppliedAt: tp.AppliedAt,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}

package purchases

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
	Purchase(ctx context.Context, userID, bookID domain.ID, price int64) (*domain.PurchaseResult, error)
	GetPurchases(ctx context.Context, userID domain.ID) ([]domain.Purchase, error)
}

type PurchaseHandler struct {
	purchaseService Service
}

func New(purchaseService Service) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseService: purchaseService,
	}
}

// Purchase godoc
//
//	@Summary		Buy a book with coins
//	@Description	Debit the book price from the balance and grant ownership in one step. The price must match the current catalog price.
//	@Tags			Purchases
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PurchaseRequestDTO	true	"Purchase request payload"
//	@Success		200		{object}	dto.PurchaseResponseDTO	"Balance after the purchase"
//	@Failure		400		{object}	utils.Response			"Invalid request or insufficient balance"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		403		{object}	utils.Response			"User mismatch"
//	@Failure		404		{object}	utils.Response			"User or book not found"
//	@Failure		409		{object}	utils.Response			"Book already owned or price changed"
//	@Failure		503		{object}	utils.Response			"Store temporarily unavailable"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/user/purchases [post]
func (h *PurchaseHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	var req dto.PurchaseRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID, err := apiutil.ResolveUser(r, req.UserID)
	if err != nil {
		apiutil.RespondWithError(w, err)
		return
	}

	rawBookID := req.BookID
	if rawBookID == "" {
		rawBookID = req.ItemID
	}
	bookID, err := domain.ParseID(rawBookID)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid book id")
		return
	}
	if req.Price <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Price must be positive")
		return
	}

	result, err := h.purchaseService.Purchase(r.Context(), userID, bookID, req.Price)
	if err != nil {
		apiutil.RespondWithError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PurchaseResponseDTO{
		BookID:  result.BookID.String(),
		Balance: result.Balance,
	})
}

// GetPurchases godoc
//
//	@Summary		Get purchase history
//	@Description	Get the books bought by the authenticated user, newest first
//	@Tags			Purchases
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.PurchaseHistoryResponseDTO	"Purchase history"
//	@Success		204	{object}	utils.Response					"No purchases"
//	@Failure		401	{object}	utils.Response					"User not authorized"
//	@Failure		503	{object}	utils.Response					"Store temporarily unavailable"
//	@Failure		500	{object}	utils.Response					"Internal server error"
//	@Router			/api/user/purchases [get]
func (h *PurchaseHandler) GetPurchases(w http.ResponseWriter, r *http.Request) {
	userID, ok := apiutil.UserID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	purchases, err := h.purchaseService.GetPurchases(r.Context(), userID)
	if err != nil {
		apiutil.RespondWithError(w, err)
		return
	}
	if len(purchases) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Purchases not found")
		return
	}

	response := make([]dto.PurchaseHistoryResponseDTO, len(purchases))
	for i, p := range purchases {
		response[i] = dto.PurchaseHistoryResponseDTO{
			BookID:      p.BookID.String(),
			Price:       p.Price,
			PurchasedAt: p.PurchasedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

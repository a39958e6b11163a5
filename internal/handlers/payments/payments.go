package payments

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
	Initiate(ctx context.Context, userID domain.ID, email string, items []domain.PaymentItem) (*domain.PendingTopUp, error)
}

type PaymentHandler struct {
	paymentService Service
}

func New(paymentService Service) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// Initiate godoc
//
//	@Summary		Start a coin purchase
//	@Description	Initialize a gateway payment for the items and return the authorization URL. The reference is the idempotency token of the resulting top-up.
//	@Tags			Payments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PaymentRequestDTO	true	"Payment request payload"
//	@Success		200		{object}	dto.PaymentResponseDTO	"Pending top-up"
//	@Failure		400		{object}	utils.Response			"Invalid request"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		502		{object}	utils.Response			"Payment gateway error"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/user/payments [post]
func (h *PaymentHandler) Initiate(w http.ResponseWriter, r *http.Request) {
	userID, ok := apiutil.UserID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.PaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	items := make([]domain.PaymentItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = domain.PaymentItem{Name: item.Name, Price: item.Price, Quantity: item.Quantity}
	}

	pending, err := h.paymentService.Initiate(r.Context(), userID, req.Email, items)
	if err != nil {
		apiutil.RespondWithError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PaymentResponseDTO{
		AuthorizationURL: pending.AuthorizationURL,
		Reference:        pending.Reference,
		Coins:            pending.Coins,
		Amount:           pending.Amount,
	})
}

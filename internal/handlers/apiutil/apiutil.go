// Package apiutil holds what every handler area shares: the caller's
// identity and the mapping of domain errors onto HTTP statuses.
package apiutil

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/GlebRadaev/bookstore/internal/domain"
	"github.com/GlebRadaev/bookstore/pkg/auth"
	"github.com/GlebRadaev/bookstore/pkg/utils"
)

const retryAfterSeconds = "1"

var ErrForeignUser = errors.New("request user does not match the authenticated user")

// UserID returns the identity set by auth.AuthMiddleware.
func UserID(r *http.Request) (domain.ID, bool) {
	id, ok := r.Context().Value(auth.UserIDKey).(uuid.UUID)
	if !ok {
		return domain.NilID, false
	}
	return domain.ID(id), true
}

// ResolveUser checks an optional body userId against the authenticated one.
func ResolveUser(r *http.Request, bodyUserID string) (domain.ID, error) {
	userID, ok := UserID(r)
	if !ok {
		return domain.NilID, auth.ErrInvalidToken
	}
	if bodyUserID == "" {
		return userID, nil
	}
	requested, err := domain.ParseID(bodyUserID)
	if err != nil {
		return domain.NilID, domain.ErrInvalidInput
	}
	if requested != userID {
		return domain.NilID, ErrForeignUser
	}
	return userID, nil
}

func Status(err error) int {
	switch {
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrInsufficientBalance):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUserExists), errors.Is(err, domain.ErrAlreadyOwned),
		errors.Is(err, domain.ErrPriceChanged), errors.Is(err, domain.ErrTokenConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrNotOwned), errors.Is(err, ErrForeignUser):
		return http.StatusForbidden
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrInvalidIDToken),
		errors.Is(err, auth.ErrGoogleLoginDisabled):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrPaymentGateway):
		return http.StatusBadGateway
	case errors.Is(err, domain.ErrTransientStoreFailure):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// RespondWithError writes err with its status. Internal failures are not
// echoed to the client.
func RespondWithError(w http.ResponseWriter, err error) {
	status := Status(err)
	switch status {
	case http.StatusServiceUnavailable:
		w.Header().Set("Retry-After", retryAfterSeconds)
		utils.RespondWithError(w, status, "Service temporarily unavailable")
	case http.StatusInternalServerError:
		utils.RespondWithError(w, status, "Internal server error")
	default:
		utils.RespondWithError(w, status, err.Error())
	}
}

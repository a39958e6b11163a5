package apiutil

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/bookstore/internal/domain"
	"github.com/GlebRadaev/bookstore/pkg/auth"
	"github.com/GlebRadaev/bookstore/pkg/utils"
)

const testUserID = "0b4f3c4e-6a0e-4bde-9d55-6c4b1f1a7e10"

func requestWithUser(userID string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if userID == "" {
		return req
	}
	ctx := context.WithValue(req.Context(), auth.UserIDKey, uuid.MustParse(userID))
	return req.WithContext(ctx)
}

func TestStatus(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrItemNotFound, http.StatusNotFound},
		{fmt.Errorf("%w: coins must be positive", domain.ErrInvalidInput), http.StatusBadRequest},
		{domain.ErrInsufficientBalance, http.StatusBadRequest},
		{domain.ErrUserExists, http.StatusConflict},
		{domain.ErrAlreadyOwned, http.StatusConflict},
		{domain.ErrPriceChanged, http.StatusConflict},
		{domain.ErrTokenConflict, http.StatusConflict},
		{domain.ErrNotOwned, http.StatusForbidden},
		{ErrForeignUser, http.StatusForbidden},
		{auth.ErrInvalidIDToken, http.StatusUnauthorized},
		{fmt.Errorf("%w: timeout", domain.ErrPaymentGateway), http.StatusBadGateway},
		{fmt.Errorf("%w: %w", domain.ErrTransientStoreFailure, context.DeadlineExceeded), http.StatusServiceUnavailable},
		{domain.ErrInvariantViolation, http.StatusInternalServerError},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.status, Status(tt.err))
		})
	}
}

func TestRespondWithError(t *testing.T) {
	t.Run("Transient failure sets Retry-After", func(t *testing.T) {
		rr := httptest.NewRecorder()
		RespondWithError(rr, domain.ErrTransientStoreFailure)

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
		assert.Equal(t, "1", rr.Header().Get("Retry-After"))
	})

	t.Run("Internal details are hidden", func(t *testing.T) {
		rr := httptest.NewRecorder()
		RespondWithError(rr, fmt.Errorf("%w: coins=-5", domain.ErrInvariantViolation))

		var resp utils.Response
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "Internal server error", resp.Message)
	})

	t.Run("Business errors are echoed", func(t *testing.T) {
		rr := httptest.NewRecorder()
		RespondWithError(rr, domain.ErrInsufficientBalance)

		var resp utils.Response
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, domain.ErrInsufficientBalance.Error(), resp.Message)
	})
}

func TestResolveUser(t *testing.T) {
	tests := []struct {
		name        string
		ctxUser     string
		bodyUser    string
		expectedErr error
	}{
		{name: "Body user omitted", ctxUser: testUserID},
		{name: "Body user matches", ctxUser: testUserID, bodyUser: testUserID},
		{name: "Body user differs", ctxUser: testUserID, bodyUser: "5f2d1a3b-7c8e-4d9f-a1b2-c3d4e5f60718", expectedErr: ErrForeignUser},
		{name: "Body user malformed", ctxUser: testUserID, bodyUser: "42", expectedErr: domain.ErrInvalidInput},
		{name: "No authenticated user", expectedErr: auth.ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID, err := ResolveUser(requestWithUser(tt.ctxUser), tt.bodyUser)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testUserID, userID.String())
		})
	}
}

package purchases

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/bookstore/internal/domain"
	"github.com/GlebRadaev/bookstore/internal/dto"
	"github.com/GlebRadaev/bookstore/pkg/auth"
)

const (
	testUser  = "0b4f3c4e-6a0e-4bde-9d55-6c4b1f1a7e10"
	otherUser = "5f2d1a3b-7c8e-4d9f-a1b2-c3d4e5f60718"
	testBook  = "9c1e7a52-3b4d-4f6a-8e2b-1d0c9f8e7a65"
)

var (
	testUserID = domain.MustParseID(testUser)
	testBookID = domain.MustParseID(testBook)
)

func NewMock(t *testing.T) (*PurchaseHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func withUser(r *http.Request) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), auth.UserIDKey, uuid.MustParse(testUser)))
}

func TestPurchaseHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		expectedBody *dto.PurchaseResponseDTO
	}{
		{
			name: "Successful purchase",
			body: fmt.Sprintf(`{"userId":%q,"bookId":%q,"price":40}`, testUser, testBook),
			prepareMock: func() {
				service.EXPECT().Purchase(gomock.Any(), testUserID, testBookID, int64(40)).
					Return(&domain.PurchaseResult{BookID: testBookID, Balance: 60}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &dto.PurchaseResponseDTO{BookID: testBook, Balance: 60},
		},
		{
			name: "itemId alias",
			body: fmt.Sprintf(`{"itemId":%q,"price":40}`, testBook),
			prepareMock: func() {
				service.EXPECT().Purchase(gomock.Any(), testUserID, testBookID, int64(40)).
					Return(&domain.PurchaseResult{BookID: testBookID, Balance: 0}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &dto.PurchaseResponseDTO{BookID: testBook, Balance: 0},
		},
		{
			name: "Insufficient balance",
			body: fmt.Sprintf(`{"bookId":%q,"price":40}`, testBook),
			prepareMock: func() {
				service.EXPECT().Purchase(gomock.Any(), testUserID, testBookID, int64(40)).
					Return(nil, domain.ErrInsufficientBalance)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Book not found",
			body: fmt.Sprintf(`{"bookId":%q,"price":40}`, testBook),
			prepareMock: func() {
				service.EXPECT().Purchase(gomock.Any(), testUserID, testBookID, int64(40)).
					Return(nil, domain.ErrItemNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Already owned",
			body: fmt.Sprintf(`{"bookId":%q,"price":40}`, testBook),
			prepareMock: func() {
				service.EXPECT().Purchase(gomock.Any(), testUserID, testBookID, int64(40)).
					Return(nil, domain.ErrAlreadyOwned)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Invariant violation",
			body: fmt.Sprintf(`{"bookId":%q,"price":40}`, testBook),
			prepareMock: func() {
				service.EXPECT().Purchase(gomock.Any(), testUserID, testBookID, int64(40)).
					Return(nil, domain.ErrInvariantViolation)
			},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name:         "Foreign user",
			body:         fmt.Sprintf(`{"userId":%q,"bookId":%q,"price":40}`, otherUser, testBook),
			prepareMock:  func() {},
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "Malformed book id",
			body:         `{"bookId":"65a1f0c2e4b0a1b2c3d4e5f6","price":40}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Non-positive price",
			body:         fmt.Sprintf(`{"bookId":%q,"price":0}`, testBook),
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Invalid body",
			body:         `[]`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := withUser(httptest.NewRequest(http.MethodPost, "/api/user/purchases", bytes.NewBufferString(tt.body)))
			w := httptest.NewRecorder()

			handler.Purchase(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != nil {
				var body dto.PurchaseResponseDTO
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, *tt.expectedBody, body)
			}
		})
	}
}

func TestGetPurchasesHandler(t *testing.T) {
	handler, service := NewMock(t)
	purchasedAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody []dto.PurchaseHistoryResponseDTO
	}{
		{
			name: "History",
			prepareMock: func() {
				service.EXPECT().GetPurchases(gomock.Any(), testUserID).Return([]domain.Purchase{
					{UserID: testUserID, BookID: testBookID, Price: 40, PurchasedAt: purchasedAt},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: []dto.PurchaseHistoryResponseDTO{{BookID: testBook, Price: 40, PurchasedAt: purchasedAt}},
		},
		{
			name: "No purchases",
			prepareMock: func() {
				service.EXPECT().GetPurchases(gomock.Any(), testUserID).Return([]domain.Purchase{}, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Store unavailable",
			prepareMock: func() {
				service.EXPECT().GetPurchases(gomock.Any(), testUserID).Return(nil, domain.ErrTransientStoreFailure)
			},
			expectedCode: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := withUser(httptest.NewRequest(http.MethodGet, "/api/user/purchases", nil))
			w := httptest.NewRecorder()

			handler.GetPurchases(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != nil {
				var body []dto.PurchaseHistoryResponseDTO
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

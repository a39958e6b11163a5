package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/bookstore/internal/handlers/auth"
	"github.com/GlebRadaev/bookstore/internal/handlers/balance"
	"github.com/GlebRadaev/bookstore/internal/handlers/books"
	"github.com/GlebRadaev/bookstore/internal/handlers/payments"
	"github.com/GlebRadaev/bookstore/internal/handlers/purchases"
	"github.com/GlebRadaev/bookstore/internal/service"
	pkgauth "github.com/GlebRadaev/bookstore/pkg/auth"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)

	services := &service.Services{
		AuthService:     auth.NewMockService(ctrl),
		BalanceService:  balance.NewMockService(ctrl),
		PurchaseService: purchases.NewMockService(ctrl),
		CatalogService:  books.NewMockService(ctrl),
		PaymentService:  payments.NewMockService(ctrl),
		JWTService:      pkgauth.NewMockJWTServiceInterface(ctrl),
	}

	h := New(services, time.Second)
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.PaymentHandler)
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockBalanceHandler := NewMockBalanceHandler(ctrl)
	mockPurchaseHandler := NewMockPurchaseHandler(ctrl)
	mockBookHandler := NewMockBookHandler(ctrl)
	mockPaymentHandler := NewMockPaymentHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().GoogleLogin(gomock.Any(), gomock.Any()).AnyTimes()
	mockBalanceHandler.EXPECT().GetBalance(gomock.Any(), gomock.Any()).AnyTimes()
	mockBalanceHandler.EXPECT().TopUp(gomock.Any(), gomock.Any()).AnyTimes()
	mockBalanceHandler.EXPECT().GetTopUps(gomock.Any(), gomock.Any()).AnyTimes()
	mockPurchaseHandler.EXPECT().Purchase(gomock.Any(), gomock.Any()).AnyTimes()
	mockPurchaseHandler.EXPECT().GetPurchases(gomock.Any(), gomock.Any()).AnyTimes()
	mockBookHandler.EXPECT().GetBook(gomock.Any(), gomock.Any()).AnyTimes()
	mockBookHandler.EXPECT().GetContent(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentHandler.EXPECT().Initiate(gomock.Any(), gomock.Any()).AnyTimes()

	jwtService := pkgauth.NewJWTService("test-secret")
	h := &Handlers{
		AuthHandler:     mockAuthHandler,
		BalanceHandler:  mockBalanceHandler,
		PurchaseHandler: mockPurchaseHandler,
		BookHandler:     mockBookHandler,
		PaymentHandler:  mockPaymentHandler,
		jwtService:      jwtService,
		requestTimeout:  time.Second,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	token, err := jwtService.GenerateJWT("0b4f3c4e-6a0e-4bde-9d55-6c4b1f1a7e10", time.Now().Add(time.Hour))
	require.NoError(t, err)

	tests := []struct {
		method string
		url    string
		token  string
		status int
	}{
		{"POST", "/api/user/register", "", http.StatusOK},
		{"POST", "/api/user/login", "", http.StatusOK},
		{"POST", "/api/user/login/google", "", http.StatusOK},
		{"GET", "/api/books/9c1e7a52-3b4d-4f6a-8e2b-1d0c9f8e7a65", "", http.StatusOK},
		{"GET", "/api/user/balance", "", http.StatusUnauthorized},
		{"POST", "/api/user/balance/topup", "", http.StatusUnauthorized},
		{"GET", "/api/user/topups", "", http.StatusUnauthorized},
		{"POST", "/api/user/purchases", "", http.StatusUnauthorized},
		{"GET", "/api/user/purchases", "", http.StatusUnauthorized},
		{"GET", "/api/user/books/9c1e7a52-3b4d-4f6a-8e2b-1d0c9f8e7a65/content", "", http.StatusUnauthorized},
		{"POST", "/api/user/payments", "", http.StatusUnauthorized},
		{"GET", "/api/user/balance", "garbage", http.StatusUnauthorized},
		{"GET", "/api/user/balance", token, http.StatusOK},
		{"POST", "/api/user/purchases", token, http.StatusOK},
		{"POST", "/api/user/payments", token, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

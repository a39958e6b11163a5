package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/bookstore/docs"
	authhandlers "github.com/GlebRadaev/bookstore/internal/handlers/auth"
	balancehandlers "github.com/GlebRadaev/bookstore/internal/handlers/balance"
	bookshandlers "github.com/GlebRadaev/bookstore/internal/handlers/books"
	paymentshandlers "github.com/GlebRadaev/bookstore/internal/handlers/payments"
	purchaseshandlers "github.com/GlebRadaev/bookstore/internal/handlers/purchases"
	"github.com/GlebRadaev/bookstore/internal/service"
	"github.com/GlebRadaev/bookstore/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	GoogleLogin(w http.ResponseWriter, r *http.Request)
}

type BalanceHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	TopUp(w http.ResponseWriter, r *http.Request)
	GetTopUps(w http.ResponseWriter, r *http.Request)
}

type PurchaseHandler interface {
	Purchase(w http.ResponseWriter, r *http.Request)
	GetPurchases(w http.ResponseWriter, r *http.Request)
}

type BookHandler interface {
	GetBook(w http.ResponseWriter, r *http.Request)
	GetContent(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	Initiate(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler     AuthHandler
	BalanceHandler  BalanceHandler
	PurchaseHandler PurchaseHandler
	BookHandler     BookHandler
	PaymentHandler  PaymentHandler

	jwtService     auth.JWTServiceInterface
	requestTimeout time.Duration
}

func New(s *service.Services, requestTimeout time.Duration) *Handlers {
	return &Handlers{
		AuthHandler:     authhandlers.New(s.AuthService),
		BalanceHandler:  balancehandlers.New(s.BalanceService),
		PurchaseHandler: purchaseshandlers.New(s.PurchaseService),
		BookHandler:     bookshandlers.New(s.CatalogService),
		PaymentHandler:  paymentshandlers.New(s.PaymentService),
		jwtService:      s.JWTService,
		requestTimeout:  requestTimeout,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	if h.requestTimeout > 0 {
		r.Use(middleware.Timeout(h.requestTimeout))
	}
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Get("/api/books/{id}", h.BookHandler.GetBook)
	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)
		r.Post("/login/google", h.AuthHandler.GoogleLogin)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware(h.jwtService))
			r.Route("/balance", func(r chi.Router) {
				r.Get("/", h.BalanceHandler.GetBalance)
				r.Post("/topup", h.BalanceHandler.TopUp)
			})
			r.Get("/topups", h.BalanceHandler.GetTopUps)
			r.Route("/purchases", func(r chi.Router) {
				r.Post("/", h.PurchaseHandler.Purchase)
				r.Get("/", h.PurchaseHandler.GetPurchases)
			})
			r.Get("/books/{id}/content", h.BookHandler.GetContent)
			r.Post("/payments", h.PaymentHandler.Initiate)
		})
	})

	return r
}

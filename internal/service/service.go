package service

import (
	"github.com/GlebRadaev/bookstore/internal/config"
	"github.com/GlebRadaev/bookstore/internal/handlers/auth"
	"github.com/GlebRadaev/bookstore/internal/handlers/balance"
	"github.com/GlebRadaev/bookstore/internal/handlers/books"
	"github.com/GlebRadaev/bookstore/internal/handlers/payments"
	"github.com/GlebRadaev/bookstore/internal/handlers/purchases"

	pkgauth "github.com/GlebRadaev/bookstore/pkg/auth"
	"github.com/GlebRadaev/bookstore/pkg/paystack"

	"github.com/GlebRadaev/bookstore/internal/repo"
	authservice "github.com/GlebRadaev/bookstore/internal/service/authservice"
	balanceservice "github.com/GlebRadaev/bookstore/internal/service/balanceservice"
	catalogservice "github.com/GlebRadaev/bookstore/internal/service/catalogservice"
	paymentservice "github.com/GlebRadaev/bookstore/internal/service/paymentservice"
	purchaseservice "github.com/GlebRadaev/bookstore/internal/service/purchaseservice"
)

type Services struct {
	AuthService     auth.Service
	BalanceService  balance.Service
	PurchaseService purchases.Service
	CatalogService  books.Service
	PaymentService  payments.Service
	JWTService      pkgauth.JWTServiceInterface
}

func New(repo *repo.Repositories, cfg *config.Config) *Services {
	jwtService := pkgauth.NewJWTService(cfg.JWTSecret)
	authService := authservice.New(repo.UserRepo, pkgauth.NewHashService(), jwtService,
		pkgauth.NewGoogleVerifier(cfg.Google.ClientID), cfg.TokenTTL)
	balanceService := balanceservice.New(repo.UserRepo, repo.TopUpRepo, repo.PurchaseRepo, repo.TxManager)
	purchaseService := purchaseservice.New(repo.UserRepo, repo.BookRepo, repo.PurchaseRepo, repo.TxManager)
	catalogService := catalogservice.New(repo.BookRepo, repo.PurchaseRepo)
	paymentService := paymentservice.New(
		paystack.NewDefault(cfg.Payment.PaystackURL, cfg.Payment.PaystackSecretKey),
		paymentservice.Config{
			Currency:     cfg.Payment.Currency,
			CallbackURL:  cfg.Payment.CallbackURL,
			CoinsPerUnit: cfg.Payment.CoinsPerUnit,
		},
	)

	return &Services{
		AuthService:     authService,
		BalanceService:  balanceService,
		PurchaseService: purchaseService,
		CatalogService:  catalogService,
		PaymentService:  paymentService,
		JWTService:      jwtService,
	}
}

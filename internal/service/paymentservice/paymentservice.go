package paymentservice

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/bookstore/internal/domain"
	"github.com/GlebRadaev/bookstore/pkg/paystack"
	"github.com/GlebRadaev/bookstore/pkg/validate"
)

const (
	// minor units per currency unit (kobo per naira)
	minorUnits   = 100
	maxLineTotal = 10_000_000
	maxItems     = 100
)

type Gateway interface {
	Initialize(ctx context.Context, req *paystack.InitializeRequest) (*paystack.Authorization, error)
}

type Config struct {
	Currency     string
	CallbackURL  string
	CoinsPerUnit int64
}

type Service struct {
	gateway Gateway
	cfg     Config
	newRef  func() string
}

func New(gateway Gateway, cfg Config) *Service {
	return &Service{
		gateway: gateway,
		cfg:     cfg,
		newRef:  uuid.NewString,
	}
}

// Initiate asks the gateway for an authorization URL covering the items.
// The returned reference is the idempotency token of the top-up that the
// confirmed payment will later apply.
func (s *Service) Initiate(ctx context.Context, userID domain.ID, email string, items []domain.PaymentItem) (*domain.PendingTopUp, error) {
	if !validate.IsEmail(email) {
		return nil, fmt.Errorf("%w: malformed email", domain.ErrInvalidInput)
	}
	if len(items) == 0 || len(items) > maxItems {
		return nil, fmt.Errorf("%w: between 1 and %d items are required", domain.ErrInvalidInput, maxItems)
	}

	var total int64
	for _, item := range items {
		if strings.TrimSpace(item.Name) == "" || item.Price <= 0 || item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: item needs a name, a positive price and quantity", domain.ErrInvalidInput)
		}
		if item.Price > maxLineTotal/item.Quantity {
			return nil, fmt.Errorf("%w: item %q total is too large", domain.ErrInvalidInput, item.Name)
		}
		total += item.Price * item.Quantity
	}

	pending := &domain.PendingTopUp{
		UserID:    userID,
		Reference: s.newRef(),
		Coins:     total * s.cfg.CoinsPerUnit,
		Amount:    total * minorUnits,
	}

	auth, err := s.gateway.Initialize(ctx, &paystack.InitializeRequest{
		Email:       validate.NormalizeEmail(email),
		Amount:      pending.Amount,
		Currency:    s.cfg.Currency,
		Reference:   pending.Reference,
		CallbackURL: s.cfg.CallbackURL,
		Metadata: map[string]string{
			"user_id": userID.String(),
			"coins":   strconv.FormatInt(pending.Coins, 10),
		},
	})
	if err != nil {
		zap.L().Error("failed to initialize payment", zap.String("reference", pending.Reference), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", domain.ErrPaymentGateway, err)
	}
	pending.AuthorizationURL = auth.AuthorizationURL

	zap.L().Info("payment initialized",
		zap.String("user_id", userID.String()),
		zap.String("reference", pending.Reference),
		zap.Int64("amount", pending.Amount))
	return pending, nil
}

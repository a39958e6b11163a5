package purchaseservice

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/GlebRadaev/bookstore/internal/domain"
	"github.com/GlebRadaev/bookstore/internal/pg"
)

type UserRepo interface {
	LockByID(ctx context.Context, id domain.ID) (int64, error)
	AdjustCoins(ctx context.Context, id domain.ID, delta int64) (int64, error)
}

type BookRepo interface {
	GetPrice(ctx context.Context, id domain.ID) (int64, error)
}

type PurchaseRepo interface {
	Create(ctx context.Context, purchase *domain.Purchase) error
	ListByUserID(ctx context.Context, userID domain.ID) ([]domain.Purchase, error)
}

type Service struct {
	userRepo     UserRepo
	bookRepo     BookRepo
	purchaseRepo PurchaseRepo
	txManager    pg.TXManager
}

func New(userRepo UserRepo, bookRepo BookRepo, purchaseRepo PurchaseRepo, txManager pg.TXManager) *Service {
	return &Service{
		userRepo:     userRepo,
		bookRepo:     bookRepo,
		purchaseRepo: purchaseRepo,
		txManager:    txManager,
	}
}

// Purchase debits the catalog price of the book and adds it to the user's
// owned set in one transaction. The user row stays locked from the balance
// read until commit, so purchases of the same user are serialized.
// price is the price the client saw; it must match the catalog.
func (s *Service) Purchase(ctx context.Context, userID, bookID domain.ID, price int64) (*domain.PurchaseResult, error) {
	if price <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", domain.ErrInvalidInput)
	}

	var result *domain.PurchaseResult
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		coins, err := s.userRepo.LockByID(ctx, userID)
		if err != nil {
			return err
		}

		catalogPrice, err := s.bookRepo.GetPrice(ctx, bookID)
		if err != nil {
			return err
		}
		if catalogPrice != price {
			return domain.ErrPriceChanged
		}

		if err := s.purchaseRepo.Create(ctx, &domain.Purchase{
			UserID: userID,
			BookID: bookID,
			Price:  catalogPrice,
		}); err != nil {
			return err
		}

		if coins < catalogPrice {
			return domain.ErrInsufficientBalance
		}

		balance, err := s.userRepo.AdjustCoins(ctx, userID, -catalogPrice)
		if err != nil {
			return err
		}
		if balance < 0 || balance != coins-catalogPrice {
			return fmt.Errorf("%w: user %s had %d, paid %d, store returned %d",
				domain.ErrInvariantViolation, userID, coins, catalogPrice, balance)
		}

		result = &domain.PurchaseResult{BookID: bookID, Balance: balance}
		return nil
	})
	if err != nil {
		err = pg.Classify(err)
		logPurchaseError(userID, bookID, err)
		return nil, err
	}

	zap.L().Info("book purchased",
		zap.String("user_id", userID.String()),
		zap.String("book_id", bookID.String()),
		zap.Int64("balance", result.Balance))
	return result, nil
}

func logPurchaseError(userID, bookID domain.ID, err error) {
	fields := []zap.Field{
		zap.String("user_id", userID.String()),
		zap.String("book_id", bookID.String()),
		zap.Error(err),
	}
	switch {
	case errors.Is(err, domain.ErrInvariantViolation):
		zap.L().Error("balance invariant violated on purchase", fields...)
	case errors.Is(err, domain.ErrTransientStoreFailure):
		zap.L().Warn("purchase failed on transient store error", fields...)
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrItemNotFound),
		errors.Is(err, domain.ErrInsufficientBalance),
		errors.Is(err, domain.ErrAlreadyOwned),
		errors.Is(err, domain.ErrPriceChanged):
		zap.L().Info("purchase rejected", fields...)
	default:
		zap.L().Error("failed to purchase book", fields...)
	}
}

func (s *Service) GetPurchases(ctx context.Context, userID domain.ID) ([]domain.Purchase, error) {
	var purchases []domain.Purchase
	err := pg.WithReadRetry(ctx, func(ctx context.Context) error {
		var err error
		purchases, err = s.purchaseRepo.ListByUserID(ctx, userID)
		return err
	})
	if err != nil {
		zap.L().Error("failed to fetch purchases", zap.Error(err))
		return nil, pg.Classify(err)
	}
	return purchases, nil
}

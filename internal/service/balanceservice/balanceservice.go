package balanceservice

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/GlebRadaev/bookstore/internal/domain"
	"github.com/GlebRadaev/bookstore/internal/pg"
)

type UserRepo interface {
	FindByID(ctx context.Context, id domain.ID) (*domain.User, error)
	LockByID(ctx context.Context, id domain.ID) (int64, error)
	AdjustCoins(ctx context.Context, id domain.ID, delta int64) (int64, error)
}

type TopUpRepo interface {
	Create(ctx context.Context, topUp *domain.TopUp) (bool, error)
	FindByToken(ctx context.Context, token string) (*domain.TopUp, error)
	ListByUserID(ctx context.Context, userID domain.ID) ([]domain.TopUp, error)
}

type OwnershipRepo interface {
	ListBookIDs(ctx context.Context, userID domain.ID) ([]domain.ID, error)
}

type Service struct {
	userRepo      UserRepo
	topUpRepo     TopUpRepo
	ownershipRepo OwnershipRepo
	txManager     pg.TXManager
}

func New(userRepo UserRepo, topUpRepo TopUpRepo, ownershipRepo OwnershipRepo, txManager pg.TXManager) *Service {
	return &Service{
		userRepo:      userRepo,
		topUpRepo:     topUpRepo,
		ownershipRepo: ownershipRepo,
		txManager:     txManager,
	}
}

const maxTokenLength = 128

// GetBalance reads coins and the owned list from one snapshot, so a purchase
// committing between the two reads is seen either fully or not at all.
func (s *Service) GetBalance(ctx context.Context, userID domain.ID) (*domain.Balance, error) {
	var balance domain.Balance
	err := pg.WithReadRetry(ctx, func(ctx context.Context) error {
		return s.txManager.Snapshot(ctx, func(ctx context.Context) error {
			user, err := s.userRepo.FindByID(ctx, userID)
			if err != nil {
				return err
			}
			if user == nil {
				return domain.ErrUserNotFound
			}
			owned, err := s.ownershipRepo.ListBookIDs(ctx, userID)
			if err != nil {
				return err
			}
			balance = domain.Balance{Coins: user.Coins, OwnedBooks: owned}
			return nil
		})
	})
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			zap.L().Error("failed to get balance", zap.Error(err))
		}
		return nil, pg.Classify(err)
	}
	return &balance, nil
}

// TopUp credits coins once per token. The token is written to the ledger in
// the same transaction as the credit. Replaying a token with the same user
// and amount credits nothing and reports Duplicate with the current balance.
// Reusing it with a different user or amount is domain.ErrTokenConflict.
func (s *Service) TopUp(ctx context.Context, userID domain.ID, token string, coins int64) (*domain.TopUpResult, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, fmt.Errorf("%w: idempotency token is required", domain.ErrInvalidInput)
	}
	if len(token) > maxTokenLength {
		return nil, fmt.Errorf("%w: idempotency token exceeds %d bytes", domain.ErrInvalidInput, maxTokenLength)
	}
	if coins <= 0 {
		return nil, fmt.Errorf("%w: coins to credit must be positive", domain.ErrInvalidInput)
	}

	var result *domain.TopUpResult
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		current, err := s.userRepo.LockByID(ctx, userID)
		if err != nil {
			return err
		}
		if coins > math.MaxInt64-current {
			return fmt.Errorf("%w: crediting %d coins would overflow the balance", domain.ErrInvalidInput, coins)
		}

		inserted, err := s.topUpRepo.Create(ctx, &domain.TopUp{Token: token, UserID: userID, Coins: coins})
		if err != nil {
			return err
		}
		if !inserted {
			existing, err := s.topUpRepo.FindByToken(ctx, token)
			if err != nil {
				return err
			}
			if existing == nil {
				return fmt.Errorf("%w: top-up %s not visible after conflict", domain.ErrTransientStoreFailure, token)
			}
			if existing.UserID != userID || existing.Coins != coins {
				return domain.ErrTokenConflict
			}
			result = &domain.TopUpResult{Balance: current, Duplicate: true}
			return nil
		}

		balance, err := s.userRepo.AdjustCoins(ctx, userID, coins)
		if err != nil {
			return err
		}
		if balance != current+coins {
			return fmt.Errorf("%w: user %s had %d, credited %d, store returned %d",
				domain.ErrInvariantViolation, userID, current, coins, balance)
		}
		result = &domain.TopUpResult{Balance: balance}
		return nil
	})
	if err != nil {
		err = pg.Classify(err)
		switch {
		case errors.Is(err, domain.ErrInvariantViolation):
			zap.L().Error("balance invariant violated on top-up", zap.String("user_id", userID.String()), zap.Error(err))
		case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrTokenConflict),
			errors.Is(err, domain.ErrInvalidInput):
			zap.L().Info("top-up rejected", zap.String("user_id", userID.String()), zap.Error(err))
		default:
			zap.L().Error("failed to top up balance", zap.String("user_id", userID.String()), zap.Error(err))
		}
		return nil, err
	}

	if result.Duplicate {
		zap.L().Info("top-up already applied", zap.String("user_id", userID.String()))
	} else {
		zap.L().Info("balance topped up",
			zap.String("user_id", userID.String()),
			zap.Int64("coins", coins),
			zap.Int64("balance", result.Balance))
	}
	return result, nil
}

func (s *Service) GetTopUps(ctx context.Context, userID domain.ID) ([]domain.TopUp, error) {
	var topUps []domain.TopUp
	err := pg.WithReadRetry(ctx, func(ctx context.Context) error {
		var err error
		topUps, err = s.topUpRepo.ListByUserID(ctx, userID)
		return err
	})
	if err != nil {
		zap.L().Error("failed to fetch top-ups", zap.Error(err))
		return nil, pg.Classify(err)
	}
	return topUps, nil
}

package topuprepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/bookstore/internal/domain"
	"github.com/GlebRadaev/bookstore/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Create records the token in the ledger. It returns false without error
// when the token is already there.
func (r *Repository) Create(ctx context.Context, topUp *domain.TopUp) (bool, error) {
	query := `
		INSERT INTO topups (token, user_id, coins)
		VALUES ($1, $2, $3)
		ON CONFLICT (token) DO NOTHING
		RETURNING applied_at
	`
	err := r.db.QueryRow(ctx, query, topUp.Token, topUp.UserID.String(), topUp.Coins).Scan(&topUp.AppliedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		zap.L().Error("failed to create top-up", zap.Error(err))
		return false, pg.Classify(err)
	}
	return true, nil
}

func (r *Repository) FindByToken(ctx context.Context, token string) (*domain.TopUp, error) {
	var (
		topUp  = domain.TopUp{Token: token}
		userID string
	)
	err := r.db.QueryRow(ctx, "SELECT user_id, coins, applied_at FROM topups WHERE token = $1", token).
		Scan(&userID, &topUp.Coins, &topUp.AppliedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to find top-up", zap.Error(err))
		return nil, pg.Classify(err)
	}
	if topUp.UserID, err = domain.ParseID(userID); err != nil {
		return nil, err
	}
	return &topUp, nil
}

func (r *Repository) ListByUserID(ctx context.Context, userID domain.ID) ([]domain.TopUp, error) {
	query := `
		SELECT token, coins, applied_at
		FROM topups
		WHERE user_id = $1
		ORDER BY applied_at DESC
	`
	rows, err := r.db.Query(ctx, query, userID.String())
	if err != nil {
		zap.L().Error("failed to get top-ups", zap.Error(err))
		return nil, pg.Classify(err)
	}
	defer rows.Close()

	var topUps []domain.TopUp
	for rows.Next() {
		topUp := domain.TopUp{UserID: userID}
		if err := rows.Scan(&topUp.Token, &topUp.Coins, &topUp.AppliedAt); err != nil {
			zap.L().Error("failed to scan top-up", zap.Error(err))
			return nil, err
		}
		topUps = append(topUps, topUp)
	}
	if err := rows.Err(); err != nil {
		return nil, pg.Classify(err)
	}
	return topUps, nil
}

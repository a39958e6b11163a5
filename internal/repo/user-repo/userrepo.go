package userrepo

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

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		user domain.User
		id   string
	)
	if err := row.Scan(&id, &user.Email, &user.Name, &user.PasswordHash, &user.Coins, &user.CreatedAt); err != nil {
		return nil, err
	}
	parsed, err := domain.ParseID(id)
	if err != nil {
		return nil, err
	}
	user.ID = parsed
	return &user, nil
}

func (repo *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, email, name, COALESCE(password_hash, ''), coins, created_at
		FROM users
		WHERE lower(email) = lower($1)
	`
	user, err := scanUser(repo.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user by email", zap.Error(err))
		return nil, pg.Classify(err)
	}
	return user, nil
}

func (repo *Repository) FindByID(ctx context.Context, id domain.ID) (*domain.User, error) {
	query := `
		SELECT id, email, name, COALESCE(password_hash, ''), coins, created_at
		FROM users
		WHERE id = $1
	`
	user, err := scanUser(repo.db.QueryRow(ctx, query, id.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user by id", zap.Error(err))
		return nil, pg.Classify(err)
	}
	return user, nil
}

// Create stores a user with a zero balance. An empty PasswordHash is stored
// as NULL.
func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (email, name, password_hash)
		VALUES ($1, $2, NULLIF($3, ''))
		RETURNING id, coins, created_at
	`
	var id string
	err := repo.db.QueryRow(ctx, query, user.Email, user.Name, user.PasswordHash).Scan(&id, &user.Coins, &user.CreatedAt)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, domain.ErrUserExists
		}
		zap.L().Error("can't save user", zap.Error(err))
		return nil, pg.Classify(err)
	}
	if user.ID, err = domain.ParseID(id); err != nil {
		return nil, err
	}
	return user, nil
}

// LockByID takes the row lock on the user for the rest of the current
// transaction and returns the balance it guards.
func (repo *Repository) LockByID(ctx context.Context, id domain.ID) (int64, error) {
	var coins int64
	err := repo.db.QueryRow(ctx, "SELECT coins FROM users WHERE id = $1 FOR UPDATE", id.String()).Scan(&coins)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrUserNotFound
		}
		zap.L().Error("can't lock user", zap.Error(err))
		return 0, pg.Classify(err)
	}
	return coins, nil
}

// AdjustCoins adds delta to the balance and returns the stored result.
func (repo *Repository) AdjustCoins(ctx context.Context, id domain.ID, delta int64) (int64, error) {
	var coins int64
	err := repo.db.QueryRow(ctx, "UPDATE users SET coins = coins + $1 WHERE id = $2 RETURNING coins", delta, id.String()).Scan(&coins)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrUserNotFound
		}
		zap.L().Error("can't update user coins", zap.Error(err))
		return 0, pg.Classify(err)
	}
	return coins, nil
}

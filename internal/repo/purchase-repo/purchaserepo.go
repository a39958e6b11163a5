package purchaserepo

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

// Create adds the book to the user's owned set. A book that is already
// owned is left untouched and reported as domain.ErrAlreadyOwned.
func (r *Repository) Create(ctx context.Context, purchase *domain.Purchase) error {
	query := `
        INSERT INTO purchases (user_id, book_id, price)
        VALUES ($1, $2, $3)
        ON CONFLICT (user_id, book_id) DO NOTHING
        RETURNING purchased_at
    `
	err := r.db.QueryRow(ctx, query, purchase.UserID.String(), purchase.BookID.String(), purchase.Price).Scan(&purchase.PurchasedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrAlreadyOwned
		}
		zap.L().Error("can't save purchase", zap.Error(err))
		return pg.Classify(err)
	}
	return nil
}

func (r *Repository) Exists(ctx context.Context, userID, bookID domain.ID) (bool, error) {
	var exists bool
	query := "SELECT EXISTS (SELECT 1 FROM purchases WHERE user_id = $1 AND book_id = $2)"
	if err := r.db.QueryRow(ctx, query, userID.String(), bookID.String()).Scan(&exists); err != nil {
		zap.L().Error("can't check purchase", zap.Error(err))
		return false, pg.Classify(err)
	}
	return exists, nil
}

func (r *Repository) ListByUserID(ctx context.Context, userID domain.ID) ([]domain.Purchase, error) {
	query := `
        SELECT book_id, price, purchased_at
        FROM purchases
        WHERE user_id = $1
        ORDER BY purchased_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID.String())
	if err != nil {
		zap.L().Error("can't get purchases", zap.Error(err))
		return nil, pg.Classify(err)
	}
	defer rows.Close()

	var purchases []domain.Purchase
	for rows.Next() {
		var (
			purchase = domain.Purchase{UserID: userID}
			bookID   string
		)
		if err := rows.Scan(&bookID, &purchase.Price, &purchase.PurchasedAt); err != nil {
			zap.L().Error("can't scan purchase row", zap.Error(err))
			return nil, err
		}
		if purchase.BookID, err = domain.ParseID(bookID); err != nil {
			return nil, err
		}
		purchases = append(purchases, purchase)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate purchases", zap.Error(err))
		return nil, pg.Classify(err)
	}
	return purchases, nil
}

func (r *Repository) ListBookIDs(ctx context.Context, userID domain.ID) ([]domain.ID, error) {
	rows, err := r.db.Query(ctx, "SELECT book_id FROM purchases WHERE user_id = $1 ORDER BY purchased_at", userID.String())
	if err != nil {
		zap.L().Error("can't get owned books", zap.Error(err))
		return nil, pg.Classify(err)
	}
	defer rows.Close()

	ids := []domain.ID{}
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			zap.L().Error("can't scan owned book", zap.Error(err))
			return nil, err
		}
		id, err := domain.ParseID(raw)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, pg.Classify(err)
	}
	return ids, nil
}

package bookrepo

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

func (r *Repository) FindByID(ctx context.Context, id domain.ID) (*domain.Book, error) {
	query := `
        SELECT id, name, author, description, subject, year, cover_page, content, price
        FROM books
        WHERE id = $1
    `
	var (
		book  domain.Book
		rawID string
	)
	err := r.db.QueryRow(ctx, query, id.String()).Scan(
		&rawID, &book.Name, &book.Author, &book.Description, &book.Subject,
		&book.Year, &book.CoverPage, &book.Content, &book.Price,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find book", zap.Error(err))
		return nil, pg.Classify(err)
	}
	if book.ID, err = domain.ParseID(rawID); err != nil {
		return nil, err
	}
	return &book, nil
}

// GetPrice returns the catalog price, which is the only price a purchase
// may debit.
func (r *Repository) GetPrice(ctx context.Context, id domain.ID) (int64, error) {
	var price int64
	err := r.db.QueryRow(ctx, "SELECT price FROM books WHERE id = $1", id.String()).Scan(&price)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrItemNotFound
		}
		zap.L().Error("can't get book price", zap.Error(err))
		return 0, pg.Classify(err)
	}
	return price, nil
}

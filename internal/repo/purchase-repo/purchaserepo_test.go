package purchaserepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/bookstore/internal/domain"
)

const (
	rawUserID = "0b4f3c4e-6a0e-4bde-9d55-6c4b1f1a7e10"
	rawBookID = "6f1c2a8e-3d4b-4e5f-8a9b-0c1d2e3f4a5b"
)

var (
	userID = domain.MustParseID(rawUserID)
	bookID = domain.MustParseID(rawBookID)
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	purchasedAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(`
        INSERT INTO purchases (user_id, book_id, price)
        VALUES ($1, $2, $3)
        ON CONFLICT (user_id, book_id) DO NOTHING
        RETURNING purchased_at
    `)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr error
	}{
		{
			name: "Book granted",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(rawUserID, rawBookID, int64(40)).
					WillReturnRows(pgxmock.NewRows([]string{"purchased_at"}).AddRow(purchasedAt))
			},
		},
		{
			name: "Already owned",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(rawUserID, rawBookID, int64(40)).WillReturnError(pgx.ErrNoRows)
			},
			expectErr: domain.ErrAlreadyOwned,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(rawUserID, rawBookID, int64(40)).WillReturnError(errors.New("database error"))
			},
			expectErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			purchase := &domain.Purchase{UserID: userID, BookID: bookID, Price: 40}
			err := repo.Create(context.Background(), purchase)
			if tt.expectErr != nil {
				assert.EqualError(t, err, tt.expectErr.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, purchasedAt, purchase.PurchasedAt)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Exists(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS (SELECT 1 FROM purchases WHERE user_id = $1 AND book_id = $2)")).
		WithArgs(rawUserID, rawBookID).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	owned, err := repo.Exists(context.Background(), userID, bookID)
	assert.NoError(t, err)
	assert.True(t, owned)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	purchasedAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM purchases WHERE user_id = $1 ORDER BY purchased_at DESC")).
		WithArgs(rawUserID).
		WillReturnRows(pgxmock.NewRows([]string{"book_id", "price", "purchased_at"}).AddRow(rawBookID, int64(40), purchasedAt))

	purchases, err := repo.ListByUserID(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, []domain.Purchase{{UserID: userID, BookID: bookID, Price: 40, PurchasedAt: purchasedAt}}, purchases)

	mock.ExpectQuery(regexp.QuoteMeta("FROM purchases WHERE user_id = $1 ORDER BY purchased_at DESC")).
		WithArgs(rawUserID).
		WillReturnError(errors.New("database error"))

	_, err = repo.ListByUserID(context.Background(), userID)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListBookIDs(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT book_id FROM purchases WHERE user_id = $1 ORDER BY purchased_at")).
		WithArgs(rawUserID).
		WillReturnRows(pgxmock.NewRows([]string{"book_id"}))

	ids, err := repo.ListBookIDs(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, []domain.ID{}, ids)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT book_id FROM purchases WHERE user_id = $1 ORDER BY purchased_at")).
		WithArgs(rawUserID).
		WillReturnRows(pgxmock.NewRows([]string{"book_id"}).AddRow(rawBookID))

	ids, err = repo.ListBookIDs(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, []domain.ID{bookID}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

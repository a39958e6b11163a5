package bookrepo

import (
	"context"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/bookstore/internal/domain"
)

const rawBookID = "6f1c2a8e-3d4b-4e5f-8a9b-0c1d2e3f4a5b"

var bookID = domain.MustParseID(rawBookID)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`SELECT id, name, author, description, subject, year, cover_page, content, price FROM books WHERE id = $1`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Book
	}{
		{
			name: "Book found",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "name", "author", "description", "subject", "year", "cover_page", "content", "price"}).
					AddRow(rawBookID, "Dune", "Frank Herbert", "Desert planet", "Fiction", 1965, "dune.jpg", "dune.pdf", int64(40))
				mock.ExpectQuery(query).WithArgs(rawBookID).WillReturnRows(rows)
			},
			result: &domain.Book{
				ID: bookID, Name: "Dune", Author: "Frank Herbert", Description: "Desert planet",
				Subject: "Fiction", Year: 1965, CoverPage: "dune.jpg", Content: "dune.pdf", Price: 40,
			},
		},
		{
			name: "Book not found",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(rawBookID).WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(rawBookID).WillReturnError(&pgconn.PgError{Code: "XX000"})
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), bookID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetPrice(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("SELECT price FROM books WHERE id = $1")

	mock.ExpectQuery(query).WithArgs(rawBookID).WillReturnRows(pgxmock.NewRows([]string{"price"}).AddRow(int64(40)))
	price, err := repo.GetPrice(context.Background(), bookID)
	assert.NoError(t, err)
	assert.Equal(t, int64(40), price)

	mock.ExpectQuery(query).WithArgs(rawBookID).WillReturnError(pgx.ErrNoRows)
	_, err = repo.GetPrice(context.Background(), bookID)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	mock.ExpectQuery(query).WithArgs(rawBookID).WillReturnError(&pgconn.PgError{Code: "57014"})
	_, err = repo.GetPrice(context.Background(), bookID)
	assert.ErrorIs(t, err, domain.ErrTransientStoreFailure)

	assert.NoError(t, mock.ExpectationsWereMet())
}

package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/bookstore/internal/pg"
	bookrepo "github.com/GlebRadaev/bookstore/internal/repo/book-repo"
	purchaserepo "github.com/GlebRadaev/bookstore/internal/repo/purchase-repo"
	topuprepo "github.com/GlebRadaev/bookstore/internal/repo/topup-repo"
	userrepo "github.com/GlebRadaev/bookstore/internal/repo/user-repo"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mockDB.Close)

	mockTxManager := pg.NewMockTXManager(ctrl)
	repo := New(pg.New(mockDB), mockTxManager)

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.TxManager)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &bookrepo.Repository{}, repo.BookRepo)
	assert.IsType(t, &purchaserepo.Repository{}, repo.PurchaseRepo)
	assert.IsType(t, &topuprepo.Repository{}, repo.TopUpRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}

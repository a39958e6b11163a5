package repo

import (
	"github.com/GlebRadaev/bookstore/internal/pg"
	bookrepo "github.com/GlebRadaev/bookstore/internal/repo/book-repo"
	purchaserepo "github.com/GlebRadaev/bookstore/internal/repo/purchase-repo"
	topuprepo "github.com/GlebRadaev/bookstore/internal/repo/topup-repo"
	userrepo "github.com/GlebRadaev/bookstore/internal/repo/user-repo"
	"github.com/GlebRadaev/bookstore/internal/service/authservice"
	"github.com/GlebRadaev/bookstore/internal/service/balanceservice"
	"github.com/GlebRadaev/bookstore/internal/service/catalogservice"
	"github.com/GlebRadaev/bookstore/internal/service/purchaseservice"
)

type UserRepo interface {
	authservice.Repo
	balanceservice.UserRepo
	purchaseservice.UserRepo
}

type BookRepo interface {
	catalogservice.BookRepo
	purchaseservice.BookRepo
}

type PurchaseRepo interface {
	purchaseservice.PurchaseRepo
	balanceservice.OwnershipRepo
	catalogservice.OwnershipRepo
}

type Repositories struct {
	UserRepo     UserRepo
	BookRepo     BookRepo
	PurchaseRepo PurchaseRepo
	TopUpRepo    balanceservice.TopUpRepo
	TxManager    pg.TXManager
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:     userrepo.New(conn),
		BookRepo:     bookrepo.New(conn),
		PurchaseRepo: purchaserepo.New(conn),
		TopUpRepo:    topuprepo.New(conn),
		TxManager:    txManager,
	}
}

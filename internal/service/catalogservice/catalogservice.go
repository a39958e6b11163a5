package catalogservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/bookstore/internal/domain"
	"github.com/GlebRadaev/bookstore/internal/pg"
)

type BookRepo interface {
	FindByID(ctx context.Context, id domain.ID) (*domain.Book, error)
}

type OwnershipRepo interface {
	Exists(ctx context.Context, userID, bookID domain.ID) (bool, error)
}

type Service struct {
	bookRepo      BookRepo
	ownershipRepo OwnershipRepo
}

func New(bookRepo BookRepo, ownershipRepo OwnershipRepo) *Service {
	return &Service{
		bookRepo:      bookRepo,
		ownershipRepo: ownershipRepo,
	}
}

// GetBook returns the catalog entry without its content link.
func (s *Service) GetBook(ctx context.Context, id domain.ID) (*domain.Book, error) {
	book, err := s.findBook(ctx, id)
	if err != nil {
		return nil, err
	}
	book.Content = ""
	return book, nil
}

// GetContent returns the content link of a book the user owns.
func (s *Service) GetContent(ctx context.Context, userID, bookID domain.ID) (string, error) {
	book, err := s.findBook(ctx, bookID)
	if err != nil {
		return "", err
	}

	var owned bool
	err = pg.WithReadRetry(ctx, func(ctx context.Context) error {
		owned, err = s.ownershipRepo.Exists(ctx, userID, bookID)
		return err
	})
	if err != nil {
		zap.L().Error("failed to check ownership", zap.Error(err))
		return "", pg.Classify(err)
	}
	if !owned {
		return "", domain.ErrNotOwned
	}
	return book.Content, nil
}

func (s *Service) findBook(ctx context.Context, id domain.ID) (*domain.Book, error) {
	var book *domain.Book
	err := pg.WithReadRetry(ctx, func(ctx context.Context) error {
		var err error
		book, err = s.bookRepo.FindByID(ctx, id)
		return err
	})
	if err != nil {
		zap.L().Error("failed to get book", zap.Error(err))
		return nil, pg.Classify(err)
	}
	if book == nil {
		return nil, domain.ErrItemNotFound
	}
	return book, nil
}

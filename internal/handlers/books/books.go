package books

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/bookstore/internal/domain"
	"github.com/GlebRadaev/bookstore/internal/dto"
	"github.com/GlebRadaev/bookstore/internal/handlers/apiutil"
	"github.com/GlebRadaev/bookstore/pkg/utils"
)

type Service interface {
	GetBook(ctx context.Context, id domain.ID) (*domain.Book, error)
	GetContent(ctx context.Context, userID, bookID domain.ID) (string, error)
}

type BookHandler struct {
	catalogService Service
}

func New(catalogService Service) *BookHandler {
	return &BookHandler{
		catalogService: catalogService,
	}
}

// GetBook godoc
//
//	@Summary		Get a book
//	@Description	Get catalog metadata of a book. The content link is only available to owners.
//	@Tags			Books
//	@Produce		json
//	@Param			id	path		string				true	"Book id"
//	@Success		200	{object}	dto.BookResponseDTO	"Book"
//	@Failure		400	{object}	utils.Response		"Invalid book id"
//	@Failure		404	{object}	utils.Response		"Book not found"
//	@Failure		503	{object}	utils.Response		"Store temporarily unavailable"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/books/{id} [get]
func (h *BookHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	bookID, err := domain.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid book id")
		return
	}

	book, err := h.catalogService.GetBook(r.Context(), bookID)
	if err != nil {
		apiutil.RespondWithError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BookResponseDTO{
		ID:          book.ID.String(),
		Name:        book.Name,
		Author:      book.Author,
		Description: book.Description,
		Subject:     book.Subject,
		Year:        book.Year,
		CoverPage:   book.CoverPage,
		Price:       book.Price,
	})
}

// GetContent godoc
//
//	@Summary		Get book content
//	@Description	Get the content link of a book owned by the authenticated user
//	@Tags			Books
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string						true	"Book id"
//	@Success		200	{object}	dto.BookContentResponseDTO	"Content link"
//	@Failure		400	{object}	utils.Response				"Invalid book id"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		403	{object}	utils.Response				"Book not owned"
//	@Failure		404	{object}	utils.Response				"Book not found"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/user/books/{id}/content [get]
func (h *BookHandler) GetContent(w http.ResponseWriter, r *http.Request) {
	userID, ok := apiutil.UserID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	bookID, err := domain.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid book id")
		return
	}

	content, err := h.catalogService.GetContent(r.Context(), userID, bookID)
	if err != nil {
		apiutil.RespondWithError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BookContentResponseDTO{
		BookID:  bookID.String(),
		Content: content,
	})
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
	"github.com/snnyvrz/bookcatalog/internal/dto"
	"github.com/snnyvrz/bookcatalog/internal/repository"
	"github.com/snnyvrz/bookcatalog/internal/validation"
	"gorm.io/gorm"
)

const (
	listPath   = "/list"
	deletePath = "/delete"
)

type BookHandler struct {
	repo repository.BookRepository
}

func NewBookHandler(repo repository.BookRepository) *BookHandler {
	return &BookHandler{repo: repo}
}

func (h *BookHandler) RegisterRoutes(r gin.IRoutes) {
	r.GET(listPath, h.ListBooks)
	r.DELETE(deletePath, h.DeleteBook)
}

// ListBooks godoc
// @Summary      List books
// @Description  Get every book with its authors and genre
// @Tags         books
// @Produce      json
// @Success      200  {array}   dto.BookDTO
// @Failure      500  {string}  string  "Internal Server Error"
// @Router       /list [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	books, err := h.repo.ListWithDetails(c.Request.Context())
	if err != nil {
		logFailure(c, "failed to list books", err)
		writeMessage(c, http.StatusInternalServerError, dto.MessageInternalError)
		return
	}

	writeJSON(c, http.StatusOK, dto.ContentTypeJSONUTF8, toBookDTOs(books))
}

// DeleteBook godoc
// @Summary      Delete a book
// @Description  Delete a book by its ID
// @Tags         books
// @Produce      json
// @Param        id   query     int     true  "Book ID"  minimum(1)
// @Success      200  {string}  string  "Deleted."
// @Failure      400  {string}  string  "Invalid ID!"
// @Failure      404  {string}  string  "Book does not exist!"
// @Failure      500  {string}  string  "Internal Server Error"
// @Router       /delete [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	ctx := c.Request.Context()

	var q DeleteBookQuery
	err := validation.BindQuery(c, &q)
	var id int
	if err == nil {
		id, err = q.BookID()
	}
	if err != nil {
		logger.FromContext(ctx).Warn("invalid delete request", logger.Data{
			"query": c.Request.URL.RawQuery,
			"error": err.Error(),
		})
		writeMessage(c, http.StatusBadRequest, dto.MessageInvalidID)
		return
	}

	if err := h.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeMessage(c, http.StatusNotFound, dto.MessageBookNotFound)
			return
		}

		logFailure(c, "failed to delete book", err)
		writeMessage(c, http.StatusInternalServerError, dto.MessageInternalError)
		return
	}

	logger.FromContext(ctx).Info("book deleted", logger.Data{"book_id": id})
	writeMessage(c, http.StatusOK, dto.MessageDeleted)
}

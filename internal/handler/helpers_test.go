package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robinjoseph08/golib/logger"
	"github.com/snnyvrz/bookcatalog/internal/model"
	"github.com/snnyvrz/bookcatalog/internal/repository"
	"gorm.io/gorm"
)

type fakeBookRepo struct {
	ListWithDetailsFn func(ctx context.Context) ([]model.Book, error)
	FindByIDFn        func(ctx context.Context, id int) (*model.Book, error)
	DeleteFn          func(ctx context.Context, id int) error

	calls int
}

func (f *fakeBookRepo) ListWithDetails(ctx context.Context) ([]model.Book, error) {
	f.calls++
	if f.ListWithDetailsFn != nil {
		return f.ListWithDetailsFn(ctx)
	}
	return nil, nil
}

func (f *fakeBookRepo) FindByID(ctx context.Context, id int) (*model.Book, error) {
	f.calls++
	if f.FindByIDFn != nil {
		return f.FindByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeBookRepo) Delete(ctx context.Context, id int) error {
	f.calls++
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, id)
	}
	return nil
}

func setupRouterWithRepo(bookRepo repository.BookRepository) http.Handler {
	gin.SetMode(gin.TestMode)
	return NewRouter(logger.New(), NewBookHandler(bookRepo), nil)
}

func setupTestRouter(db *gorm.DB) http.Handler {
	gin.SetMode(gin.TestMode)

	bookRepo := repository.NewGormBookRepository(db)
	health := NewHealthHandler(db, time.Now(), "test")

	return NewRouter(logger.New(), NewBookHandler(bookRepo), health)
}

package repository

import (
	"context"

	"github.com/pkg/errors"
	"github.com/snnyvrz/bookcatalog/internal/model"
	"gorm.io/gorm"
)

type BookRepository interface {
	ListWithDetails(ctx context.Context) ([]model.Book, error)
	FindByID(ctx context.Context, id int) (*model.Book, error)
	Delete(ctx context.Context, id int) error
}

type GormBookRepository struct {
	db *gorm.DB
}

func NewGormBookRepository(db *gorm.DB) *GormBookRepository {
	return &GormBookRepository{db: db}
}

func orderedAuthors(db *gorm.DB) *gorm.DB {
	return db.Order("authors.author_id")
}

// ListWithDetails returns every book with its authors and genre loaded.
func (r *GormBookRepository) ListWithDetails(ctx context.Context) ([]model.Book, error) {
	var books []model.Book
	if err := r.db.WithContext(ctx).
		Preload("Authors", orderedAuthors).
		Preload("Genre").
		Order("books.book_id").
		Find(&books).Error; err != nil {

		return nil, errors.WithStack(err)
	}
	return books, nil
}

// FindByID returns gorm.ErrRecordNotFound unwrapped when the book is absent.
func (r *GormBookRepository) FindByID(ctx context.Context, id int) (*model.Book, error) {
	return findBook(r.db.WithContext(ctx), id)
}

// Delete removes the book and its author links in a single transaction.
// Authors themselves are left in place.
func (r *GormBookRepository) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		book, err := findBook(tx, id)
		if err != nil {
			return err
		}

		if err := tx.Select("Authors").Delete(book).Error; err != nil {
			return errors.WithStack(err)
		}
		return nil
	})
}

func findBook(db *gorm.DB, id int) (*model.Book, error) {
	var book model.Book
	if err := db.
		Preload("Authors", orderedAuthors).
		First(&book, "book_id = ?", id).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, errors.WithStack(err)
	}
	return &book, nil
}

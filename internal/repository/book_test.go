package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/robinjoseph08/golib/pointerutil"
	"github.com/snnyvrz/bookcatalog/internal/model"
	"github.com/snnyvrz/bookcatalog/internal/testutil"
	"gorm.io/gorm"
)

func seedBooks(t *testing.T, db *gorm.DB) (model.Book, model.Book) {
	t.Helper()

	fantasy := testutil.SeedGenre(t, db, "Fantasy")

	pratchett := testutil.SeedAuthor(t, db, "Terry Pratchett", pointerutil.Int(1948))
	gaiman := testutil.SeedAuthor(t, db, "Neil Gaiman", pointerutil.Int(1960))
	unknown := testutil.SeedAuthor(t, db, "Unknown", nil)

	omens := testutil.SeedBook(t, db, "Good Omens", pointerutil.Int(1990), &fantasy, pratchett, gaiman)
	beowulf := testutil.SeedBook(t, db, "Beowulf", nil, nil, unknown)

	return omens, beowulf
}

func TestGormBookRepository_ListWithDetails_LoadsAuthorsAndGenre(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGormBookRepository(db)

	omens, beowulf := seedBooks(t, db)

	books, err := repo.ListWithDetails(context.Background())
	if err != nil {
		t.Fatalf("ListWithDetails returned error: %v", err)
	}

	if len(books) != 2 {
		t.Fatalf("expected 2 books, got %d", len(books))
	}

	if books[0].BookID != omens.BookID || books[1].BookID != beowulf.BookID {
		t.Fatalf("unexpected order: got [%d, %d]", books[0].BookID, books[1].BookID)
	}

	if books[0].Genre == nil || books[0].Genre.GenreName != "Fantasy" {
		t.Errorf("expected genre Fantasy, got %+v", books[0].Genre)
	}
	if books[1].Genre != nil {
		t.Errorf("expected no genre for Beowulf, got %+v", books[1].Genre)
	}

	if len(books[0].Authors) != 2 {
		t.Fatalf("expected 2 authors, got %d", len(books[0].Authors))
	}
	if books[0].Authors[0].Name != "Terry Pratchett" || books[0].Authors[1].Name != "Neil Gaiman" {
		t.Errorf("unexpected author order: [%s, %s]", books[0].Authors[0].Name, books[0].Authors[1].Name)
	}
}

func TestGormBookRepository_ListWithDetails_Empty(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGormBookRepository(db)

	books, err := repo.ListWithDetails(context.Background())
	if err != nil {
		t.Fatalf("ListWithDetails returned error: %v", err)
	}

	if len(books) != 0 {
		t.Fatalf("expected no books, got %d", len(books))
	}
}

func TestGormBookRepository_ListWithDetails_StoreError(t *testing.T) {
	db := testutil.NewUnmigratedDB(t)
	repo := NewGormBookRepository(db)

	if _, err := repo.ListWithDetails(context.Background()); err == nil {
		t.Fatalf("expected error listing from a store without tables")
	}
}

func TestGormBookRepository_FindByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGormBookRepository(db)

	omens, _ := seedBooks(t, db)

	book, err := repo.FindByID(context.Background(), omens.BookID)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}

	if book.Title != "Good Omens" {
		t.Errorf("expected title Good Omens, got %q", book.Title)
	}
	if len(book.Authors) != 2 {
		t.Errorf("expected 2 authors, got %d", len(book.Authors))
	}
}

func TestGormBookRepository_FindByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGormBookRepository(db)

	_, err := repo.FindByID(context.Background(), 42)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected gorm.ErrRecordNotFound, got %v", err)
	}
}

func TestGormBookRepository_Delete_RemovesBookAndLinksOnly(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGormBookRepository(db)

	omens, beowulf := seedBooks(t, db)

	if err := repo.Delete(context.Background(), omens.BookID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	var remaining []model.Book
	if err := db.Find(&remaining).Error; err != nil {
		t.Fatalf("failed to read books: %v", err)
	}
	if len(remaining) != 1 || remaining[0].BookID != beowulf.BookID {
		t.Fatalf("expected only Beowulf to remain, got %+v", remaining)
	}

	if n := testutil.CountBookAuthorLinks(t, db, omens.BookID); n != 0 {
		t.Errorf("expected author links to be removed, got %d", n)
	}
	if n := testutil.CountBookAuthorLinks(t, db, beowulf.BookID); n != 1 {
		t.Errorf("expected Beowulf links untouched, got %d", n)
	}

	var authors int64
	if err := db.Model(&model.Author{}).Count(&authors).Error; err != nil {
		t.Fatalf("failed to count authors: %v", err)
	}
	if authors != 3 {
		t.Errorf("expected authors to be kept, got %d", authors)
	}
}

func TestGormBookRepository_Delete_NotFoundLeavesStoreUnchanged(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGormBookRepository(db)

	seedBooks(t, db)

	for i := 0; i < 2; i++ {
		err := repo.Delete(context.Background(), 999)
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			t.Fatalf("expected gorm.ErrRecordNotFound, got %v", err)
		}
	}

	var count int64
	if err := db.Model(&model.Book{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count books: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 books, got %d", count)
	}
}

func TestGormBookRepository_Delete_Twice(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGormBookRepository(db)

	_, beowulf := seedBooks(t, db)

	if err := repo.Delete(context.Background(), beowulf.BookID); err != nil {
		t.Fatalf("first Delete returned error: %v", err)
	}

	err := repo.Delete(context.Background(), beowulf.BookID)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected gorm.ErrRecordNotFound on second delete, got %v", err)
	}
}

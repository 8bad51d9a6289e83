package testutil

import (
	"testing"

	"github.com/google/uuid"
	"github.com/snnyvrz/bookcatalog/internal/db"
	"github.com/snnyvrz/bookcatalog/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func open(t *testing.T, prefix string) *gorm.DB {
	t.Helper()

	dsn := "file:" + prefix + "_" + uuid.New().String() + "?mode=memory&cache=shared&_foreign_keys=on"

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB from gorm: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return gdb
}

// NewTestDB returns a migrated in-memory sqlite database private to t.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb := open(t, "testdb")
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return gdb
}

// NewUnmigratedDB returns a database without any tables, so every catalog
// query against it fails.
func NewUnmigratedDB(t *testing.T) *gorm.DB {
	t.Helper()

	return open(t, "errdb")
}

func SeedGenre(t *testing.T, gdb *gorm.DB, name string) model.Genre {
	t.Helper()

	genre := model.Genre{GenreName: name}
	if err := gdb.Create(&genre).Error; err != nil {
		t.Fatalf("failed to seed genre %q: %v", name, err)
	}

	return genre
}

func SeedAuthor(t *testing.T, gdb *gorm.DB, name string, birthYear *int) model.Author {
	t.Helper()

	author := model.Author{
		Name:      name,
		BirthYear: birthYear,
	}

	if err := gdb.Create(&author).Error; err != nil {
		t.Fatalf("failed to seed author %q: %v", name, err)
	}

	return author
}

func SeedBook(t *testing.T, gdb *gorm.DB, title string, year *int, genre *model.Genre, authors ...model.Author) model.Book {
	t.Helper()

	book := model.Book{
		Title:           title,
		PublicationYear: year,
		Authors:         authors,
	}
	if genre != nil {
		book.GenreID = &genre.ID
	}

	if err := gdb.Omit("Authors.*").Create(&book).Error; err != nil {
		t.Fatalf("failed to seed book %q: %v", title, err)
	}

	return book
}

// CountBookAuthorLinks returns the number of join rows pointing at bookID.
func CountBookAuthorLinks(t *testing.T, gdb *gorm.DB, bookID int) int64 {
	t.Helper()

	var count int64
	if err := gdb.Table("book_authors").Where("book_id = ?", bookID).Count(&count).Error; err != nil {
		t.Fatalf("failed to count book_authors: %v", err)
	}

	return count
}

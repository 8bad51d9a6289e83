package db

import (
	"context"

	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/pointerutil"
	"github.com/snnyvrz/bookcatalog/internal/model"
	"gorm.io/gorm"
)

// Seed fills an empty catalog with a handful of books so a fresh install has
// something to list. It reports whether anything was inserted.
func Seed(ctx context.Context, db *gorm.DB) (bool, error) {
	seeded := false

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Book{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		fantasy := model.Genre{GenreName: "Fantasy"}
		dystopia := model.Genre{GenreName: "Dystopian"}
		if err := tx.Create(&[]*model.Genre{&fantasy, &dystopia}).Error; err != nil {
			return err
		}

		tolkien := model.Author{Name: "J. R. R. Tolkien", BirthYear: pointerutil.Int(1892)}
		orwell := model.Author{Name: "George Orwell", BirthYear: pointerutil.Int(1903)}
		pratchett := model.Author{Name: "Terry Pratchett", BirthYear: pointerutil.Int(1948)}
		gaiman := model.Author{Name: "Neil Gaiman", BirthYear: pointerutil.Int(1960)}
		anonymous := model.Author{Name: "Anonymous"}
		if err := tx.Create(&[]*model.Author{&tolkien, &orwell, &pratchett, &gaiman, &anonymous}).Error; err != nil {
			return err
		}

		books := []model.Book{
			{
				Title:           "The Hobbit",
				PublicationYear: pointerutil.Int(1937),
				GenreID:         &fantasy.ID,
				Authors:         []model.Author{tolkien},
			},
			{
				Title:           "Nineteen Eighty-Four",
				PublicationYear: pointerutil.Int(1949),
				GenreID:         &dystopia.ID,
				Authors:         []model.Author{orwell},
			},
			{
				Title:           "Good Omens",
				PublicationYear: pointerutil.Int(1990),
				GenreID:         &fantasy.ID,
				Authors:         []model.Author{pratchett, gaiman},
			},
			{
				Title:   "Beowulf",
				Authors: []model.Author{anonymous},
			},
		}

		if err := tx.Omit("Authors.*").Create(&books).Error; err != nil {
			return err
		}

		seeded = true
		return nil
	})

	return seeded, errors.WithStack(err)
}

package handler

import (
	"github.com/snnyvrz/bookcatalog/internal/dto"
	"github.com/snnyvrz/bookcatalog/internal/model"
)

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func toAuthorDTO(a model.Author) dto.AuthorDTO {
	return dto.AuthorDTO{
		Name:      a.Name,
		BirthYear: intOrZero(a.BirthYear),
	}
}

func toBookDTO(b model.Book) dto.BookDTO {
	genre := ""
	if b.Genre != nil {
		genre = b.Genre.GenreName
	}

	authors := make([]dto.AuthorDTO, 0, len(b.Authors))
	for _, a := range b.Authors {
		authors = append(authors, toAuthorDTO(a))
	}

	return dto.BookDTO{
		BookID:          b.BookID,
		Title:           b.Title,
		PublicationYear: intOrZero(b.PublicationYear),
		Genres:          genre,
		Authors:         authors,
	}
}

// toBookDTOs never returns nil so an empty catalog encodes as [].
func toBookDTOs(books []model.Book) []dto.BookDTO {
	out := make([]dto.BookDTO, 0, len(books))
	for _, b := range books {
		out = append(out, toBookDTO(b))
	}
	return out
}

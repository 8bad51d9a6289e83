package dto

// BookDTO is the wire record of a book returned by GET /list.
type BookDTO struct {
	BookID          int         `json:"bookId"`
	Title           string      `json:"title"`
	PublicationYear int         `json:"publicationYear"`
	Genres          string      `json:"genres"`
	Authors         []AuthorDTO `json:"authors"`
}

type AuthorDTO struct {
	Name      string `json:"name"`
	BirthYear int    `json:"birthYear"`
}

// Wire messages of the catalog API. Every one of them is sent as a JSON string.
const (
	MessageDeleted       = "Deleted."
	MessageInvalidID     = "Invalid ID!"
	MessageBookNotFound  = "Book does not exist!"
	MessageNotFound      = "Not Found"
	MessageInternalError = "Internal Server Error"
	ContentTypeJSONUTF8  = "application/json; charset=utf-8"
)

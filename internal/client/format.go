package client

import (
	"strconv"
	"strings"

	"github.com/snnyvrz/bookcatalog/internal/dto"
)

// Stringify renders books one block per book:
//
//	#1 Good Omens (1990)
//	   Genre:   Fantasy
//	   Authors: Terry Pratchett (b. 1948), Neil Gaiman (b. 1960)
//
// A year or genre of zero value prints as "unknown".
func Stringify(books []dto.BookDTO) string {
	var sb strings.Builder

	for i, b := range books {
		if i > 0 {
			sb.WriteString("\n")
		}

		sb.WriteString("#")
		sb.WriteString(strconv.Itoa(b.BookID))
		sb.WriteString(" ")
		sb.WriteString(b.Title)
		sb.WriteString(" (")
		sb.WriteString(yearOrUnknown(b.PublicationYear))
		sb.WriteString(")\n")

		genre := b.Genres
		if genre == "" {
			genre = "unknown"
		}
		sb.WriteString("   Genre:   ")
		sb.WriteString(genre)
		sb.WriteString("\n")

		names := make([]string, 0, len(b.Authors))
		for _, a := range b.Authors {
			names = append(names, a.Name+" (b. "+yearOrUnknown(a.BirthYear)+")")
		}
		authors := strings.Join(names, ", ")
		if authors == "" {
			authors = "none"
		}
		sb.WriteString("   Authors: ")
		sb.WriteString(authors)
		sb.WriteString("\n")
	}

	return sb.String()
}

func yearOrUnknown(year int) string {
	if year == 0 {
		return "unknown"
	}
	return strconv.Itoa(year)
}

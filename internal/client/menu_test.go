package client

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/snnyvrz/bookcatalog/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	books     []dto.BookDTO
	listErr   error
	deleteMsg string
	deleteErr error

	listCalls int
	deleted   []int
}

func (f *fakeAPI) ListBooks(ctx context.Context) ([]dto.BookDTO, error) {
	f.listCalls++
	return f.books, f.listErr
}

func (f *fakeAPI) DeleteBook(ctx context.Context, id int) (string, error) {
	f.deleted = append(f.deleted, id)
	return f.deleteMsg, f.deleteErr
}

func runMenu(t *testing.T, api BookAPI, input string) string {
	t.Helper()

	var out bytes.Buffer
	err := NewMenu(api, strings.NewReader(input), &out).Run(context.Background())
	require.NoError(t, err)
	return out.String()
}

func TestMenu_RejectsInvalidOptionsWithoutCalls(t *testing.T) {
	api := &fakeAPI{}

	out := runMenu(t, api, "0\n4\nabc\n\n-1\n3\n")

	assert.Equal(t, 5, strings.Count(out, invalidOptionMessage))
	assert.Equal(t, 0, api.listCalls)
	assert.Empty(t, api.deleted)
	assert.Contains(t, out, exitMessage)
}

func TestMenu_ExitStopsLoop(t *testing.T) {
	api := &fakeAPI{}

	out := runMenu(t, api, "3\n1\n")

	assert.Contains(t, out, exitMessage)
	assert.Equal(t, 0, api.listCalls)
}

func TestMenu_EOFStopsLoop(t *testing.T) {
	api := &fakeAPI{}

	out := runMenu(t, api, "1\n")

	assert.Equal(t, 1, api.listCalls)
	assert.NotContains(t, out, exitMessage)
}

func TestMenu_ListEmptyPrintsBrackets(t *testing.T) {
	api := &fakeAPI{books: []dto.BookDTO{}}

	out := runMenu(t, api, "1\n3\n")

	assert.Equal(t, 1, api.listCalls)
	assert.Contains(t, out, "Choose an option: []\n")
}

func TestMenu_ListPrintsBooks(t *testing.T) {
	api := &fakeAPI{books: []dto.BookDTO{
		{
			BookID:          1,
			Title:           "Good Omens",
			PublicationYear: 1990,
			Genres:          "Fantasy",
			Authors: []dto.AuthorDTO{
				{Name: "Terry Pratchett", BirthYear: 1948},
				{Name: "Neil Gaiman", BirthYear: 1960},
			},
		},
	}}

	out := runMenu(t, api, " 1 \n3\n")

	assert.Contains(t, out, "#1 Good Omens (1990)")
	assert.Contains(t, out, "Terry Pratchett (b. 1948), Neil Gaiman (b. 1960)")
}

func TestMenu_ListRequestFailureKeepsLooping(t *testing.T) {
	api := &fakeAPI{listErr: errors.New("connection refused")}

	out := runMenu(t, api, "1\n1\n3\n")

	assert.Equal(t, 2, api.listCalls)
	assert.Equal(t, 2, strings.Count(out, "Request failed: connection refused"))
	assert.Contains(t, out, exitMessage)
}

func TestMenu_ListAPIErrorPrintsMessage(t *testing.T) {
	api := &fakeAPI{listErr: &APIError{StatusCode: 500, Message: "Internal Server Error"}}

	out := runMenu(t, api, "1\n3\n")

	assert.Contains(t, out, "Internal Server Error\n")
	assert.NotContains(t, out, "Request failed")
}

func TestMenu_DeleteRepromptsUntilValidID(t *testing.T) {
	api := &fakeAPI{deleteMsg: "Deleted."}

	out := runMenu(t, api, "2\nabc\n0\n-5\n\n7\n3\n")

	assert.Equal(t, 4, strings.Count(out, invalidIDMessage))
	assert.Equal(t, []int{7}, api.deleted)
	assert.Contains(t, out, "Deleted.\n")
}

func TestMenu_DeletePrintsServerMessage(t *testing.T) {
	api := &fakeAPI{deleteMsg: "Book does not exist!"}

	out := runMenu(t, api, "2\n99\n3\n")

	assert.Equal(t, []int{99}, api.deleted)
	assert.Contains(t, out, "Book does not exist!\n")
}

func TestMenu_DeleteEOFWhileAskingForID(t *testing.T) {
	api := &fakeAPI{}

	runMenu(t, api, "2\nabc\n")

	assert.Empty(t, api.deleted)
}

func TestMenu_DeleteRequestFailure(t *testing.T) {
	api := &fakeAPI{deleteErr: errors.New("timeout")}

	out := runMenu(t, api, "2\n5\n3\n")

	assert.Contains(t, out, "Request failed: timeout")
	assert.Contains(t, out, exitMessage)
}

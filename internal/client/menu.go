package client

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/snnyvrz/bookcatalog/internal/dto"
)

const (
	optionList   = 1
	optionDelete = 2
	optionExit   = 3

	invalidOptionMessage = "Invalid option, please try again with only integers in 1–3 range."
	invalidIDMessage     = "Invalid ID!"
	exitMessage          = "Exited!"
)

// BookAPI is what the menu needs from the server.
type BookAPI interface {
	ListBooks(ctx context.Context) ([]dto.BookDTO, error)
	DeleteBook(ctx context.Context, id int) (string, error)
}

type Menu struct {
	api BookAPI
	in  *bufio.Scanner
	out io.Writer
}

func NewMenu(api BookAPI, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		api: api,
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Run loops over the main menu until the user picks exit or input runs out.
// Request failures are printed and the loop goes on.
func (m *Menu) Run(ctx context.Context) error {
	for {
		m.printMainMenu()

		line, ok := m.readLine()
		if !ok {
			return m.in.Err()
		}

		option, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || option < optionList || option > optionExit {
			fmt.Fprintln(m.out, invalidOptionMessage)
			continue
		}

		switch option {
		case optionList:
			m.listBooks(ctx)
		case optionDelete:
			if !m.deleteBook(ctx) {
				return m.in.Err()
			}
		case optionExit:
			fmt.Fprintln(m.out, exitMessage)
			return nil
		}
	}
}

func (m *Menu) readLine() (string, bool) {
	if !m.in.Scan() {
		return "", false
	}
	return m.in.Text(), true
}

func (m *Menu) printMainMenu() {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "========== Library ==========")
	fmt.Fprintln(m.out, "1. List all books")
	fmt.Fprintln(m.out, "2. Delete a book by ID")
	fmt.Fprintln(m.out, "3. Exit")
	fmt.Fprint(m.out, "Choose an option: ")
}

func (m *Menu) listBooks(ctx context.Context) {
	books, err := m.api.ListBooks(ctx)
	if err != nil {
		m.printRequestError(err)
		return
	}

	if len(books) == 0 {
		fmt.Fprintln(m.out, "[]")
		return
	}

	fmt.Fprint(m.out, Stringify(books))
}

// deleteBook returns false when input ran out before a valid id was read.
func (m *Menu) deleteBook(ctx context.Context) bool {
	var id int
	for {
		fmt.Fprint(m.out, "Enter the ID of the book to delete: ")

		line, ok := m.readLine()
		if !ok {
			return false
		}

		parsed, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || parsed < 1 {
			fmt.Fprintln(m.out, invalidIDMessage)
			continue
		}
		id = parsed
		break
	}

	msg, err := m.api.DeleteBook(ctx, id)
	if err != nil {
		m.printRequestError(err)
		return true
	}

	fmt.Fprintln(m.out, msg)
	return true
}

func (m *Menu) printRequestError(err error) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		fmt.Fprintln(m.out, apiErr.Message)
		return
	}
	fmt.Fprintf(m.out, "Request failed: %v\n", err)
}

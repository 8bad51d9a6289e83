package handler

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// DeleteBookQuery is the query string of DELETE /delete. A repeated id is
// rejected rather than picking one of the values.
type DeleteBookQuery struct {
	ID []string `form:"id" binding:"required,len=1"`
}

// BookID parses the single id value. Surrounding whitespace and a leading
// sign are accepted; the value must fit in 32 bits and be positive.
func (q DeleteBookQuery) BookID() (int, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(q.ID[0]), 10, 32)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	if n < 1 {
		return 0, errors.Errorf("id must be a positive 32-bit integer, got %d", n)
	}
	return int(n), nil
}

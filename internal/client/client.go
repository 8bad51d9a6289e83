package client

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/segmentio/encoding/json"
	"github.com/snnyvrz/bookcatalog/internal/dto"
)

const (
	apiList   = "/list"
	apiDelete = "/delete"
)

// APIError is returned when the server answers a list request with something
// other than 200.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return strconv.Itoa(e.StatusCode) + " " + e.Message
}

type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client rooted at baseURL (http://host:port). A nil
// httpClient means http.DefaultClient.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

func (c *Client) do(ctx context.Context, method, path string) (*http.Response, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to read response body")
	}

	return resp, body, nil
}

// ListBooks fetches the whole catalog. Field names are matched without
// regard to case.
func (c *Client) ListBooks(ctx context.Context) ([]dto.BookDTO, error) {
	resp, body, err := c.do(ctx, http.MethodGet, apiList)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: messageOrBody(body)}
	}

	var books []dto.BookDTO
	if err := json.Unmarshal(body, &books); err != nil {
		return nil, errors.Wrap(err, "failed to decode book list")
	}
	if books == nil {
		books = []dto.BookDTO{}
	}

	return books, nil
}

// DeleteBook asks the server to remove the book and returns what it said,
// unquoted when the body is a JSON string and verbatim otherwise. The status
// code is not inspected; the message already tells the user what happened.
func (c *Client) DeleteBook(ctx context.Context, id int) (string, error) {
	path := apiDelete + "?id=" + url.QueryEscape(strconv.Itoa(id))

	_, body, err := c.do(ctx, http.MethodDelete, path)
	if err != nil {
		return "", err
	}

	return messageOrBody(body), nil
}

func messageOrBody(body []byte) string {
	var msg *string
	if err := json.Unmarshal(body, &msg); err != nil || msg == nil {
		return string(body)
	}
	return *msg
}

package boj

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// ProblemID identifies a problem on the judge.
type ProblemID uint32

func (p ProblemID) String() string { return strconv.FormatUint(uint64(p), 10) }

// ParseProblemID parses a positive decimal problem id.
func ParseProblemID(s string) (ProblemID, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid problem id %q: %w", s, err)
	}
	if n == 0 {
		return 0, fmt.Errorf("invalid problem id %q: must be positive", s)
	}
	return ProblemID(n), nil
}

// CsrfKey is a one-time token scraped from a submit page.
type CsrfKey string

// Client runs the judge's scrape-and-submit protocol over one Session.
type Client struct {
	session *Session
}

func NewClient(session *Session) *Client {
	return &Client{session: session}
}

func (c *Client) Session() *Session { return c.session }

const usernameSelector = ".username"

// CurrentUsername returns the name of the user the session is logged in as.
// A missing username element means the cookies were rejected; the error then
// matches both ErrNotAuthenticated and ErrElementNotFound.
func (c *Client) CurrentUsername(ctx context.Context) (string, error) {
	doc, err := c.session.Fetch(ctx, http.MethodGet, "/", nil)
	if err != nil {
		return "", fmt.Errorf("failed to fetch home page: %w", err)
	}

	sel := doc.Find(usernameSelector).First()
	if sel.Length() == 0 {
		return "", fmt.Errorf("%w: %w", ErrNotAuthenticated, notFound("home", usernameSelector))
	}
	return strings.TrimSpace(sel.Text()), nil
}

const csrfSelector = `input[name="csrf_key"]`

func submitPath(id ProblemID) string {
	return "/submit/" + id.String()
}

// FetchCsrfKey scrapes a fresh token from the problem's submit page.
func (c *Client) FetchCsrfKey(ctx context.Context, id ProblemID) (CsrfKey, error) {
	doc, err := c.session.Fetch(ctx, http.MethodGet, submitPath(id), nil)
	if err != nil {
		return "", fmt.Errorf("failed to fetch submit page: %w", err)
	}

	sel := doc.Find(csrfSelector).First()
	if sel.Length() == 0 {
		return "", notFound("submit/"+id.String(), csrfSelector)
	}
	value, ok := sel.Attr("value")
	if !ok {
		return "", notFound("submit/"+id.String(), csrfSelector+"[value]")
	}
	return CsrfKey(value), nil
}

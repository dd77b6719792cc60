package boj

import (
	"errors"
	"fmt"
)

var (
	// ErrElementNotFound is matched by scrape errors whose selector found nothing.
	ErrElementNotFound = errors.New("element not found")
	// ErrUnparseable is matched by scrape errors whose element was found but could not be read.
	ErrUnparseable = errors.New("element unparseable")
	// ErrNotAuthenticated means the judge did not recognise the session cookies.
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrUnknownLanguage  = errors.New("unknown programming language")
)

// TransportError is returned when a request never produced an HTTP response
// (dial failure, timeout, cancelled context, broken body).
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// HTTPError is returned for a response outside the 2xx range.
type HTTPError struct {
	Method     string
	URL        string
	StatusCode int
	Status     string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %s", e.Method, e.URL, e.Status)
}

type ScrapeErrorKind int

const (
	ElementNotFound ScrapeErrorKind = iota
	Unparseable
)

func (k ScrapeErrorKind) String() string {
	switch k {
	case ElementNotFound:
		return "element not found"
	case Unparseable:
		return "element unparseable"
	}
	return "unknown scrape error"
}

// ScrapeError reports that a page did not have the shape the scraper expects.
type ScrapeError struct {
	Kind     ScrapeErrorKind
	Page     string
	Selector string
	Err      error
}

func (e *ScrapeError) Error() string {
	msg := fmt.Sprintf("%s: %s %q", e.Page, e.Kind, e.Selector)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ScrapeError) Unwrap() error { return e.Err }

func (e *ScrapeError) Is(target error) bool {
	switch target {
	case ErrElementNotFound:
		return e.Kind == ElementNotFound
	case ErrUnparseable:
		return e.Kind == Unparseable
	}
	return false
}

func notFound(page, selector string) *ScrapeError {
	return &ScrapeError{Kind: ElementNotFound, Page: page, Selector: selector}
}

func unparseable(page, selector string, err error) *ScrapeError {
	return &ScrapeError{Kind: Unparseable, Page: page, Selector: selector, Err: err}
}

// DecodeError is returned when a JSON body or one of its coerced fields is malformed.
type DecodeError struct {
	Field string
	Err   error
}

func (e *DecodeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("failed to decode response: %v", e.Err)
	}
	return fmt.Sprintf("failed to decode field %q: %v", e.Field, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

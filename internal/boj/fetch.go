package boj

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Fetch performs an authenticated request and parses the response as HTML.
// For GET the values are sent as the query string, for POST as a
// form-encoded body. Nothing is retried or cached.
func (s *Session) Fetch(ctx context.Context, method, path string, values url.Values) (*goquery.Document, error) {
	resp, err := s.do(ctx, method, path, values, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, &TransportError{Method: method, URL: resp.Request.URL.String(), Err: err}
	}
	return doc, nil
}

// FetchBody is like Fetch but returns the raw body.
func (s *Session) FetchBody(ctx context.Context, method, path string, values url.Values, header http.Header) ([]byte, error) {
	resp, err := s.do(ctx, method, path, values, header)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Method: method, URL: resp.Request.URL.String(), Err: err}
	}
	return body, nil
}

func (s *Session) do(ctx context.Context, method, path string, values url.Values, header http.Header) (*http.Response, error) {
	target := s.resolve(path)

	var body io.Reader
	switch method {
	case http.MethodGet:
		if len(values) > 0 {
			target += "?" + values.Encode()
		}
	case http.MethodPost:
		body = strings.NewReader(values.Encode())
	default:
		return nil, fmt.Errorf("unsupported method %s", method)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request %s %s: %w", method, target, err)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if method == http.MethodPost {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	req.Header.Set("User-Agent", s.userAgent)

	s.logger.DebugContext(ctx, "judge request", "method", method, "url", target)
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &TransportError{Method: method, URL: target, Err: err}
	}
	s.logger.DebugContext(ctx, "judge response", "method", method, "url", target, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		return nil, &HTTPError{Method: method, URL: target, StatusCode: resp.StatusCode, Status: resp.Status}
	}
	return resp, nil
}

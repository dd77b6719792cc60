package boj

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"github.com/klauspost/compress/gzhttp"
	"golang.org/x/net/publicsuffix"
)

const (
	DefaultBaseURL   = "https://www.acmicpc.net/"
	DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) bojsubmit/1.0"
	DefaultTimeout   = 30 * time.Second

	autoLoginCookie   = "bojautologin"
	onlineJudgeCookie = "OnlineJudge"
)

// LoginCookie holds the two authentication cookie values copied from a
// logged-in browser.
type LoginCookie struct {
	AutoLogin   string
	OnlineJudge string
}

// Session is one judge identity: a cookie jar scoped to the base URL and an
// HTTP client that reads and writes it on every request.
type Session struct {
	baseURL   *url.URL
	jar       http.CookieJar
	client    *http.Client
	userAgent string
	logger    *slog.Logger
}

type sessionConfig struct {
	baseURL   string
	transport http.RoundTripper
	timeout   time.Duration
	userAgent string
	logger    *slog.Logger
}

type SessionOption func(*sessionConfig)

func WithBaseURL(baseURL string) SessionOption {
	return func(c *sessionConfig) { c.baseURL = baseURL }
}

// WithTransport replaces the network transport, e.g. with an httptest server's.
func WithTransport(rt http.RoundTripper) SessionOption {
	return func(c *sessionConfig) { c.transport = rt }
}

func WithTimeout(d time.Duration) SessionOption {
	return func(c *sessionConfig) { c.timeout = d }
}

func WithUserAgent(ua string) SessionOption {
	return func(c *sessionConfig) { c.userAgent = ua }
}

func WithLogger(logger *slog.Logger) SessionOption {
	return func(c *sessionConfig) { c.logger = logger }
}

// NewSession creates a session with an empty cookie jar.
func NewSession(opts ...SessionOption) (*Session, error) {
	cfg := sessionConfig{
		baseURL:   DefaultBaseURL,
		transport: http.DefaultTransport,
		timeout:   DefaultTimeout,
		userAgent: DefaultUserAgent,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	base, err := url.Parse(cfg.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base url %q: %w", cfg.baseURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", cfg.baseURL)
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	return &Session{
		baseURL: base,
		jar:     jar,
		client: &http.Client{
			Jar:       jar,
			Transport: gzhttp.Transport(cfg.transport),
			Timeout:   cfg.timeout,
		},
		userAgent: cfg.userAgent,
		logger:    cfg.logger,
	}, nil
}

// Apply installs the login cookies for the base URL. Applying the same
// cookie again overwrites the previous values. An invalid cookie value is a
// programming error and panics; validate configuration before calling.
func (s *Session) Apply(login LoginCookie) {
	cookies := []*http.Cookie{
		{Name: autoLoginCookie, Value: login.AutoLogin, Path: "/"},
		{Name: onlineJudgeCookie, Value: login.OnlineJudge, Path: "/"},
	}
	for _, c := range cookies {
		if err := c.Valid(); err != nil {
			panic(fmt.Errorf("invalid login cookie %s: %w", c.Name, err))
		}
	}
	s.jar.SetCookies(s.baseURL, cookies)
}

// Cookies returns the cookies the session would send to the base URL.
func (s *Session) Cookies() []*http.Cookie {
	return s.jar.Cookies(s.baseURL)
}

// resolve appends path to the base URL, keeping any path prefix it has.
func (s *Session) resolve(path string) string {
	return s.baseURL.JoinPath(path).String()
}

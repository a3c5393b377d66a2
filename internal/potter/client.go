package potter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// BookFetcher is the single read the UI needs from the books API.
// It is implemented by *Client and faked in tests.
type BookFetcher interface {
	FetchRandomBook(ctx context.Context) (Book, error)
}

// Ensure Client implements BookFetcher at compile time.
var _ BookFetcher = (*Client)(nil)

// Client talks to the Harry Potter books API.
type Client struct {
	baseURL   *url.URL
	lang      string
	http      *http.Client
	userAgent string
	validate  *shapeValidator
}

const (
	DefaultBaseURL   = "https://potterapi-fedeperin.vercel.app"
	DefaultLanguage  = "en"
	defaultUserAgent = "shelf/0.1"
	requestTimeout   = 10 * time.Second
	maxBodyBytes     = 1 << 20
)

// Option adjusts a Client at construction time.
type Option func(*Client)

// WithLanguage selects the localized API tree (en, es, fr, it, pt, uk).
func WithLanguage(lang string) Option {
	return func(c *Client) {
		if trimmed := strings.Trim(strings.TrimSpace(lang), "/"); trimmed != "" {
			c.lang = trimmed
		}
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithDebugLogging routes requests through a transport that logs each
// round trip at debug level.
func WithDebugLogging(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger == nil {
			return
		}
		c.http.Transport = &LoggingTransport{Base: c.http.Transport, Logger: logger}
	}
}

// NewClient builds a Client rooted at baseURL. An empty baseURL uses the
// public deployment.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	c := &Client{
		baseURL: base,
		lang:    DefaultLanguage,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
		validate:  newShapeValidator(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Endpoint returns the absolute URL used for random book requests.
func (c *Client) Endpoint() string {
	return c.randomURL().String()
}

// FetchRandomBook issues one GET for a random book. It does not retry or
// cache. Every failure is a *FetchError.
func (c *Client) FetchRandomBook(ctx context.Context) (Book, error) {
	if c == nil {
		return Book{}, fetchErr(StageRequest, fmt.Errorf("client is nil"))
	}
	var book Book
	if err := c.getJSON(ctx, c.randomURL(), &book); err != nil {
		return Book{}, err
	}
	if err := c.validate.check(book); err != nil {
		return Book{}, fetchErr(StageValidate, err)
	}
	return book, nil
}

func (c *Client) randomURL() *url.URL {
	rel := &url.URL{Path: "/" + c.lang + "/books/random"}
	return c.baseURL.ResolveReference(rel)
}

func (c *Client) getJSON(ctx context.Context, reqURL *url.URL, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fetchErr(StageRequest, fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fetchErr(StageRequest, fmt.Errorf("execute request: %w", err))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fetchErr(StageStatus, fmt.Errorf("api %s returned status %d", reqURL.Path, resp.StatusCode))
	}
	decoder := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes))
	if err := decoder.Decode(dest); err != nil {
		return fetchErr(StageDecode, fmt.Errorf("decode response: %w", err))
	}
	return nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api url %q: missing host", raw)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}

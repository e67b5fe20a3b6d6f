// Package rest implements the repository contracts over the storefront
// REST API: JSON over HTTPS against a fixed base URL, credentialed via
// an HTTP-only cookie session. Call sites only name method, path and
// payload; encoding, decoding and error mapping live here.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"

	"storefront/config"
	"storefront/internal/domain/apierror"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
)

const (
	csrfCookieName = "csrf_access_token"
	csrfHeader     = "X-CSRF-TOKEN"

	// AccessTokenCookieName is the HTTP-only cookie carrying the
	// short-lived access token.
	AccessTokenCookieName = "access_token_cookie"
)

// Client is the configured HTTP client every repository shares. There
// is no retry or backoff; a failed request surfaces immediately to the
// caller.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient builds the shared client. The cookie jar carries the auth
// session set by the server, mirroring a browser's credentialed fetch.
func NewClient(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimSuffix(cfg.API.BaseURL, "/"))
	if err != nil {
		return nil, errors.Wrap(err, "parse api base url")
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, errors.Wrap(err, "create cookie jar")
	}

	return &Client{
		baseURL: base,
		httpClient: &http.Client{
			Jar:     jar,
			Timeout: cfg.API.Timeout,
		},
		logger: logger,
	}, nil
}

// Cookie returns the named session cookie, or nil when absent.
func (c *Client) Cookie(name string) *http.Cookie {
	for _, cookie := range c.httpClient.Jar.Cookies(c.baseURL) {
		if cookie.Name == name {
			return cookie
		}
	}

	return nil
}

// Cookies exports the session cookies for persistence.
func (c *Client) Cookies() []*http.Cookie {
	return c.httpClient.Jar.Cookies(c.baseURL)
}

// SetCookies seeds the jar from a persisted session.
func (c *Client) SetCookies(cookies []*http.Cookie) {
	c.httpClient.Jar.SetCookies(c.baseURL, cookies)
}

// ClearCookies drops the whole credentialed session.
func (c *Client) ClearCookies() {
	jar, err := cookiejar.New(nil)
	if err != nil {
		// cookiejar.New with nil options cannot fail today; keep the
		// old jar rather than panic if that ever changes.
		return
	}
	c.httpClient.Jar = jar
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL.String() + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encode request body")
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return errors.Wrap(err, "build request")
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method != http.MethodGet {
		// Double-submit CSRF: echo the cookie the server set at login.
		if cookie := c.Cookie(csrfCookieName); cookie != nil {
			req.Header.Set(csrfHeader, cookie.Value)
		}
	}

	c.logger.Debug("API request", slog.String("method", method), slog.String("path", path))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apierror.Network(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return apierror.Network(err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return apierror.FromStatus(resp.StatusCode, errorMessage(data))
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return errors.Wrap(err, "decode response")
		}
	}

	return nil
}

// errorMessage extracts the server's message from an error body. The
// API uses "message" on most routes and "error" on a few admin ones.
func errorMessage(data []byte) string {
	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return ""
	}
	if envelope.Message != "" {
		return envelope.Message
	}

	return envelope.Error
}

// listQuery serializes pagination options; only set values appear.
func listQuery(opts repository.ListOptions) url.Values {
	query := url.Values{}
	if opts.Page > 0 {
		query.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.PerPage > 0 {
		query.Set("per_page", strconv.Itoa(opts.PerPage))
	}

	return query
}

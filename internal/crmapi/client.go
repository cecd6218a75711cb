// Package crmapi is the HTTP client for the external CRM backend. Every
// request carries the session cookie the backend set at sign-in; failures map
// onto the console error taxonomy so callers can show the server message
// without inspecting HTTP details.
package crmapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/helixcrm/console/pkg/config"
	pkgerrors "github.com/helixcrm/console/pkg/errors"
)

const responseBodyReadLimit int64 = 4096

var errBaseURLRequired = errors.New("crm api base url is required")

// Client talks to the CRM backend. The zero value is not usable; construct
// with NewClient so the cookie jar holding the session cookie exists.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client. The replacement keeps its
// own cookie jar, so tests can inject one that skips cookies entirely.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// NewClient builds a CRM API client from configuration.
func NewClient(cfg config.APIConfig, opts ...Option) (*Client, error) {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		return nil, errBaseURLRequired
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("building cookie jar: %w", err)
	}

	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout, Jar: jar},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}
	return client, nil
}

// SignIn authenticates against the backend. On success the session cookie is
// retained by the client's jar for subsequent requests. A 401 maps to an
// unauthorized error carrying the server message.
func (c *Client) SignIn(ctx context.Context, req SignInRequest) (*User, error) {
	if c == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "crm api client not configured")
	}

	var user User
	if err := c.do(ctx, http.MethodPost, "/api/auth/signin", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// SignOut invalidates the backend session. The server clears the cookie; local
// session state is the caller's responsibility.
func (c *Client) SignOut(ctx context.Context) error {
	if c == nil {
		return pkgerrors.New(pkgerrors.CodeDependency, "crm api client not configured")
	}
	return c.do(ctx, http.MethodPost, "/api/auth/signout", nil, nil)
}

// UpdateUser submits edited profile fields and returns the updated account.
func (c *Client) UpdateUser(ctx context.Context, id int64, req UserUpdateRequest) (*User, error) {
	if c == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "crm api client not configured")
	}
	if id <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}

	var user User
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/user/update/%d", id), req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// SetPasswordStatus flips the account's passwordChanged flag.
func (c *Client) SetPasswordStatus(ctx context.Context, id int64, changed bool) (*User, error) {
	if c == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "crm api client not configured")
	}
	if id <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}

	var user User
	req := PasswordStatusRequest{PasswordChanged: changed}
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/user/passwordstatus/%d", id), req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, dest any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "marshal request body")
		}
		reader = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "build request")
	}
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "execute request")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return c.errorFromResponse(resp)
	}
	if dest == nil {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, responseBodyReadLimit))
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode response")
	}
	return nil
}

// errorFromResponse maps an error status to the console taxonomy, preferring
// the server's {message} body over a generic fallback.
func (c *Client) errorFromResponse(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, responseBodyReadLimit))

	message := ""
	var body errorBody
	if err := json.Unmarshal(raw, &body); err == nil {
		message = strings.TrimSpace(body.Message)
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		if message == "" {
			message = "invalid credentials"
		}
		return pkgerrors.New(pkgerrors.CodeUnauthorized, message)
	case http.StatusForbidden:
		if message == "" {
			message = "access denied"
		}
		return pkgerrors.New(pkgerrors.CodeForbidden, message)
	case http.StatusNotFound:
		if message == "" {
			message = "resource not found"
		}
		return pkgerrors.New(pkgerrors.CodeNotFound, message)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		if message == "" {
			message = "request rejected"
		}
		return pkgerrors.New(pkgerrors.CodeValidation, message)
	}

	if message == "" {
		message = strings.TrimSpace(string(raw))
	}
	return pkgerrors.Wrap(pkgerrors.CodeDependency, fmt.Errorf("status %d: %s", resp.StatusCode, message), "crm api request failed")
}

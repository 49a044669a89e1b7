package capsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client is a client for the capability service. It provides access to the
// unauthenticated endpoints and can create authenticated Sessions.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a capability service client with a sane default timeout.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Login authenticates with an email and password and returns an
// authenticated Session. A 401 yields ErrIncorrectCredentials.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	body, err := json.Marshal(LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/auth/login", bytes.NewReader(body), map[string]string{
		"Content-Type": "application/json",
	})
	if err != nil {
		return nil, err
	}

	var tokenResp TokenResponse
	if err := decodeJSON(resp, &tokenResp, http.StatusOK); err != nil {
		return nil, err
	}

	return &Session{
		client: c,
		token:  tokenResp.AccessToken,
		email:  tokenResp.Email,
		role:   tokenResp.Role,
	}, nil
}

// ResumeSession validates a previously stored access token against the
// service and returns a Session for it. The token is never trusted on its
// own: a round trip to /auth/me both checks it and recovers the email and
// role it belongs to.
func (c *Client) ResumeSession(ctx context.Context, token string) (*Session, error) {
	s := &Session{client: c, token: token}

	info, err := s.Me(ctx)
	if err != nil {
		return nil, err
	}

	s.email = info.Email
	s.role = info.Role
	return s, nil
}

// Capabilities fetches the full catalog. No authentication is required.
func (c *Client) Capabilities(ctx context.Context) (Catalog, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/capabilities", nil, nil)
	if err != nil {
		return nil, err
	}

	var catalog Catalog
	if err := decodeJSON(resp, &catalog, http.StatusOK); err != nil {
		return nil, err
	}
	return catalog, nil
}

// Health fetches the liveness probe.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/livez", nil, nil)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}

func (c *Client) url(path string) string {
	return c.BaseURL + path
}

func (c *Client) doRequest(
	ctx context.Context,
	method, path string,
	body io.Reader,
	headers map[string]string,
) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	return resp, nil
}

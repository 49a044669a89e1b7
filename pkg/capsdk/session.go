package capsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Session is an authenticated handle on the capability service. It carries
// the access token plus the email and role the service reported for it.
// Sessions are created by Client.Login or Client.ResumeSession.
type Session struct {
	client *Client

	token string
	email string
	role  string
}

// Token returns the session's access token, e.g. for persisting to disk.
func (s *Session) Token() string { return s.token }

// Email returns the authenticated user's email.
func (s *Session) Email() string { return s.email }

// Role returns the authenticated user's role.
func (s *Session) Role() string { return s.role }

// Me fetches the current user from the service. This is the authoritative
// check that the session's token is still valid.
func (s *Session) Me(ctx context.Context) (*UserInfoResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/auth/me", nil, nil)
	if err != nil {
		return nil, err
	}

	var info UserInfoResponse
	if err := decodeJSON(resp, &info, http.StatusOK); err != nil {
		return nil, err
	}
	return &info, nil
}

// Register adds a consultant to the named capability's roster. The service
// rejects Consultants registering anyone but themselves.
func (s *Session) Register(ctx context.Context, capability, email string) (*MessageResponse, error) {
	path := fmt.Sprintf("/capabilities/%s/register?email=%s",
		url.PathEscape(capability), url.QueryEscape(email))

	resp, err := s.doAuthRequest(ctx, http.MethodPost, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var msg MessageResponse
	if err := decodeJSON(resp, &msg, http.StatusOK); err != nil {
		return nil, err
	}
	return &msg, nil
}

// Unregister removes a consultant from the named capability's roster.
// The service restricts this to Admins and Approvers.
func (s *Session) Unregister(ctx context.Context, capability, email string) (*MessageResponse, error) {
	path := fmt.Sprintf("/capabilities/%s/unregister?email=%s",
		url.PathEscape(capability), url.QueryEscape(email))

	resp, err := s.doAuthRequest(ctx, http.MethodDelete, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var msg MessageResponse
	if err := decodeJSON(resp, &msg, http.StatusOK); err != nil {
		return nil, err
	}
	return &msg, nil
}

// CreateUser provisions a new account. The service restricts this to Admins.
func (s *Session) CreateUser(ctx context.Context, email, password, role string) (*MessageResponse, error) {
	body, err := json.Marshal(CreateUserRequest{Email: email, Password: password, Role: role})
	if err != nil {
		return nil, err
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/auth/register", bytes.NewReader(body), map[string]string{
		"Content-Type": "application/json",
	})
	if err != nil {
		return nil, err
	}

	var msg MessageResponse
	if err := decodeJSON(resp, &msg, http.StatusOK); err != nil {
		return nil, err
	}
	return &msg, nil
}

// Capabilities fetches the catalog through the session's client.
func (s *Session) Capabilities(ctx context.Context) (Catalog, error) {
	return s.client.Capabilities(ctx)
}

// doAuthRequest performs an HTTP request with the session's bearer token.
func (s *Session) doAuthRequest(
	ctx context.Context,
	method, path string,
	body io.Reader,
	headers map[string]string,
) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, s.client.url(path), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+s.token)
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := s.client.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	return resp, nil
}

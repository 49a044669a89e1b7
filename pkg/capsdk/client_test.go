package capsdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func newStubServer(t *testing.T) (*httptest.Server, *Client) {
	t.Helper()

	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		if req.Email != "alice@example.com" || req.Password != "open sesame" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(ErrorResponse{Detail: "Incorrect email or password"})
			return
		}
		_ = json.NewEncoder(w).Encode(TokenResponse{
			AccessToken: "stub-token",
			TokenType:   "bearer",
			Email:       "alice@example.com",
			Role:        "Admin",
		})
	})

	mux.HandleFunc("GET /auth/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer stub-token" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(ErrorResponse{Detail: "Could not validate credentials"})
			return
		}
		_ = json.NewEncoder(w).Encode(UserInfoResponse{Email: "alice@example.com", Role: "Admin"})
	})

	mux.HandleFunc("GET /capabilities", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(Catalog{
			"Cloud Architecture": {
				Description:  "Design and implement scalable cloud solutions",
				PracticeArea: "Technology",
				Capacity:     40,
				Consultants:  []string{"alice.smith@example.com"},
			},
		})
	})

	mux.HandleFunc("POST /capabilities/{name}/register", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer stub-token" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(ErrorResponse{Detail: "Not authenticated"})
			return
		}
		name := r.PathValue("name")
		if name != "Cloud Architecture" {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(ErrorResponse{Detail: "Capability not found"})
			return
		}
		email := r.URL.Query().Get("email")
		_ = json.NewEncoder(w).Encode(MessageResponse{Message: "Registered " + email + " for " + name})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL)
	return srv, client
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	_, client := newStubServer(t)

	t.Run("success returns session with identity", func(t *testing.T) {
		session, err := client.Login(ctx, "alice@example.com", "open sesame")
		require.NoError(t, err)
		require.Equal(t, "stub-token", session.Token())
		require.Equal(t, "alice@example.com", session.Email())
		require.Equal(t, "Admin", session.Role())
	})

	t.Run("bad credentials yield typed error", func(t *testing.T) {
		_, err := client.Login(ctx, "alice@example.com", "wrong")
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
		require.Equal(t, "Incorrect email or password", apiErr.Detail)
	})
}

func TestResumeSession(t *testing.T) {
	ctx := context.Background()
	_, client := newStubServer(t)

	t.Run("valid token recovers identity", func(t *testing.T) {
		session, err := client.ResumeSession(ctx, "stub-token")
		require.NoError(t, err)
		require.Equal(t, "alice@example.com", session.Email())
		require.Equal(t, "Admin", session.Role())
	})

	t.Run("stale token is rejected", func(t *testing.T) {
		_, err := client.ResumeSession(ctx, "expired-token")
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	})
}

func TestCapabilities(t *testing.T) {
	ctx := context.Background()
	_, client := newStubServer(t)

	catalog, err := client.Capabilities(ctx)
	require.NoError(t, err)
	require.Contains(t, catalog, "Cloud Architecture")
	require.Equal(t, 40, catalog["Cloud Architecture"].Capacity)
}

func TestSessionRegister(t *testing.T) {
	ctx := context.Background()
	_, client := newStubServer(t)

	session, err := client.Login(ctx, "alice@example.com", "open sesame")
	require.NoError(t, err)

	t.Run("success returns confirmation message", func(t *testing.T) {
		msg, err := session.Register(ctx, "Cloud Architecture", "bob@example.com")
		require.NoError(t, err)
		require.Equal(t, "Registered bob@example.com for Cloud Architecture", msg.Message)
	})

	t.Run("unknown capability yields 404 detail", func(t *testing.T) {
		_, err := session.Register(ctx, "No Such Thing", "bob@example.com")
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusNotFound, apiErr.StatusCode)
		require.Equal(t, "Capability not found", apiErr.Detail)
	})
}

func TestParseErrorResponseFallbacks(t *testing.T) {
	t.Parallel()

	mkResp := func(code int) *http.Response {
		return &http.Response{StatusCode: code}
	}

	t.Run("prefers detail field", func(t *testing.T) {
		err := parseErrorResponse(mkResp(400), []byte(`{"detail":"nope"}`))
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, "nope", apiErr.Detail)
	})

	t.Run("falls back to message field", func(t *testing.T) {
		err := parseErrorResponse(mkResp(400), []byte(`{"message":"still nope"}`))
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, "still nope", apiErr.Detail)
	})

	t.Run("falls back to status text for unparseable bodies", func(t *testing.T) {
		err := parseErrorResponse(mkResp(502), []byte(`<html>bad gateway</html>`))
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, 502, apiErr.StatusCode)
		require.Equal(t, "HTTP 502: Bad Gateway", apiErr.Detail)
	})

	t.Run("2xx is not an error", func(t *testing.T) {
		require.NoError(t, parseErrorResponse(mkResp(200), nil))
	})
}

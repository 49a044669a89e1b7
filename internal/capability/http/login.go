package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rovillalobos-slalom/capabilities/internal/capability/service"
	"github.com/rovillalobos-slalom/capabilities/pkg/capsdk"
	"github.com/rovillalobos-slalom/capabilities/pkg/httpx"
	"github.com/rovillalobos-slalom/capabilities/pkg/slogx"
)

type LoginHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP handles password login.
//
//	@Summary		Authenticate and obtain an access token
//	@Description	Verifies the email and password and returns a signed bearer token along with the user's email and role.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		capsdk.LoginRequest		true	"Credentials"
//	@Success		200		{object}	capsdk.TokenResponse	"access_token, token_type, email, role"
//	@Failure		400		{object}	capsdk.ErrorResponse	"Malformed request body"
//	@Failure		401		{object}	capsdk.ErrorResponse	"Incorrect email or password"
//	@Failure		500		{object}	capsdk.ErrorResponse	"Internal server error"
//	@Router			/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req capsdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		capsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	token, user, err := h.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			w.Header().Set("WWW-Authenticate", "Bearer")
			capsdk.ErrIncorrectCredentials.WriteError(w)
			return
		}
		log.Error("login failed", "err", err)
		capsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, capsdk.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		Email:       user.Email,
		Role:        string(user.Role),
	})
}

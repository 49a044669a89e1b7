package http

import (
	"errors"
	"net/http"

	"github.com/rovillalobos-slalom/capabilities/internal/capability/service"
	"github.com/rovillalobos-slalom/capabilities/pkg/capsdk"
	"github.com/rovillalobos-slalom/capabilities/pkg/httpx"
	"github.com/rovillalobos-slalom/capabilities/pkg/slogx"
)

type MeHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP returns the authenticated user's identity.
//
//	@Summary		Get current user
//	@Description	Resolves the bearer token back to the user it belongs to. A token for a deleted user is rejected.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	capsdk.UserInfoResponse	"email, role"
//	@Failure		401	{object}	capsdk.ErrorResponse	"Invalid or missing access token"
//	@Failure		500	{object}	capsdk.ErrorResponse	"Internal server error"
//	@Router			/auth/me [get].
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	email := httpx.UserEmailFromCtx(ctx)
	if email == "" {
		capsdk.ErrInvalidToken.WriteError(w)
		return
	}

	user, err := h.AuthService.CurrentUser(ctx, email)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			capsdk.ErrUserNotFound.WriteError(w)
			return
		}
		log.Warn("failed to load user", "email", email, "err", err)
		capsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, capsdk.UserInfoResponse{
		Email: user.Email,
		Role:  string(user.Role),
	})
}

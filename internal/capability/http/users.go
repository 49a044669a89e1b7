package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rovillalobos-slalom/capabilities/internal/capability/domain"
	"github.com/rovillalobos-slalom/capabilities/internal/capability/service"
	"github.com/rovillalobos-slalom/capabilities/pkg/capsdk"
	"github.com/rovillalobos-slalom/capabilities/pkg/httpx"
	"github.com/rovillalobos-slalom/capabilities/pkg/slogx"
)

type UsersHandler struct {
	AuthService *service.AuthService
}

// HandleCreate provisions a new user account.
//
//	@Summary		Register a new user
//	@Description	Creates an account with the given email, password, and role. Restricted to Admins.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		capsdk.CreateUserRequest	true	"New user"
//	@Success		200		{object}	capsdk.MessageResponse		"Confirmation message"
//	@Failure		400		{object}	capsdk.ErrorResponse		"Invalid body, unknown role, or duplicate email"
//	@Failure		401		{object}	capsdk.ErrorResponse		"Invalid or missing access token"
//	@Failure		403		{object}	capsdk.ErrorResponse		"Caller is not an Admin"
//	@Failure		500		{object}	capsdk.ErrorResponse		"Internal server error"
//	@Router			/auth/register [post].
func (h *UsersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req capsdk.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		capsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	_, err := h.AuthService.CreateUser(ctx, req.Email, req.Password, domain.Role(req.Role))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserExists):
			capsdk.ErrUserExists.WriteError(w)
		case errors.Is(err, service.ErrInvalidRole):
			capsdk.NewAPIError(http.StatusBadRequest, "Invalid role").WriteError(w)
		default:
			log.Error("failed to create user", "email", req.Email, "err", err)
			capsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, capsdk.MessageResponse{
		Message: fmt.Sprintf("User %s registered successfully", req.Email),
	})
}

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/rovillalobos-slalom/capabilities/internal/capability/domain"
	"github.com/rovillalobos-slalom/capabilities/internal/capability/service"
	"github.com/rovillalobos-slalom/capabilities/pkg/capsdk"
	"github.com/rovillalobos-slalom/capabilities/pkg/httpx"
	"github.com/rovillalobos-slalom/capabilities/pkg/slogx"
)

type RegistrationHandler struct {
	CapabilityService *service.CapabilityService
}

// HandleRegister adds a consultant to a capability's roster.
//
//	@Summary		Register a consultant for a capability
//	@Description	Adds the consultant identified by the email query parameter to the named capability. Consultants may only register themselves; Admins and Approvers may register anyone.
//	@Tags			Capabilities
//	@Security		BearerAuth
//	@Produce		json
//	@Param			name	path		string					true	"Capability name"
//	@Param			email	query		string					true	"Consultant email"
//	@Success		200		{object}	capsdk.MessageResponse	"Confirmation message"
//	@Failure		400		{object}	capsdk.ErrorResponse	"Missing email or consultant already registered"
//	@Failure		401		{object}	capsdk.ErrorResponse	"Invalid or missing access token"
//	@Failure		403		{object}	capsdk.ErrorResponse	"Consultant registering someone else"
//	@Failure		404		{object}	capsdk.ErrorResponse	"Capability not found"
//	@Failure		500		{object}	capsdk.ErrorResponse	"Internal server error"
//	@Router			/capabilities/{name}/register [post].
func (h *RegistrationHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	name := r.PathValue("name")
	email := r.URL.Query().Get("email")
	if email == "" {
		capsdk.NewAPIError(http.StatusBadRequest, "Email query parameter is required").WriteError(w)
		return
	}

	actor := httpx.UserEmailFromCtx(ctx)
	actorRole := domain.Role(httpx.RoleFromCtx(ctx))

	_, err := h.CapabilityService.Register(ctx, name, email, actor, actorRole)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRegisterOtherDenied):
			capsdk.ErrRegisterSelfOnly.WriteError(w)
		case errors.Is(err, service.ErrCapabilityNotFound):
			capsdk.ErrCapabilityNotFound.WriteError(w)
		case errors.Is(err, service.ErrAlreadyRegistered):
			capsdk.ErrAlreadyRegistered.WriteError(w)
		default:
			log.Error("failed to register consultant", "capability", name, "email", email, "err", err)
			capsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, capsdk.MessageResponse{
		Message: fmt.Sprintf("Registered %s for %s", email, name),
	})
}

// HandleUnregister removes a consultant from a capability's roster.
//
//	@Summary		Unregister a consultant from a capability
//	@Description	Removes the consultant identified by the email query parameter from the named capability. Restricted to Admins and Approvers.
//	@Tags			Capabilities
//	@Security		BearerAuth
//	@Produce		json
//	@Param			name	path		string					true	"Capability name"
//	@Param			email	query		string					true	"Consultant email"
//	@Success		200		{object}	capsdk.MessageResponse	"Confirmation message"
//	@Failure		400		{object}	capsdk.ErrorResponse	"Missing email or consultant not registered"
//	@Failure		401		{object}	capsdk.ErrorResponse	"Invalid or missing access token"
//	@Failure		403		{object}	capsdk.ErrorResponse	"Caller is not an Admin or Approver"
//	@Failure		404		{object}	capsdk.ErrorResponse	"Capability not found"
//	@Failure		500		{object}	capsdk.ErrorResponse	"Internal server error"
//	@Router			/capabilities/{name}/unregister [delete].
func (h *RegistrationHandler) HandleUnregister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	name := r.PathValue("name")
	email := r.URL.Query().Get("email")
	if email == "" {
		capsdk.NewAPIError(http.StatusBadRequest, "Email query parameter is required").WriteError(w)
		return
	}

	actor := httpx.UserEmailFromCtx(ctx)

	_, err := h.CapabilityService.Unregister(ctx, name, email, actor)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCapabilityNotFound):
			capsdk.ErrCapabilityNotFound.WriteError(w)
		case errors.Is(err, service.ErrNotRegistered):
			capsdk.ErrNotRegistered.WriteError(w)
		default:
			log.Error("failed to unregister consultant", "capability", name, "email", email, "err", err)
			capsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, capsdk.MessageResponse{
		Message: fmt.Sprintf("Unregistered %s from %s", email, name),
	})
}

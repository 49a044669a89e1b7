package http

import (
	"net/http"

	"github.com/rovillalobos-slalom/capabilities/internal/capability/domain"
	"github.com/rovillalobos-slalom/capabilities/internal/capability/service"
	"github.com/rovillalobos-slalom/capabilities/pkg/capsdk"
	"github.com/rovillalobos-slalom/capabilities/pkg/httpx"
	"github.com/rovillalobos-slalom/capabilities/pkg/slogx"
)

type CapabilitiesHandler struct {
	CapabilityService *service.CapabilityService
}

// HandleList returns the full catalog keyed by capability name.
//
//	@Summary		List capabilities
//	@Description	Returns every capability with its description, practice area, skill levels, certifications, industry verticals, capacity, and consultant roster.
//	@Tags			Capabilities
//	@Produce		json
//	@Success		200	{object}	capsdk.Catalog			"Capability name to entry"
//	@Failure		500	{object}	capsdk.ErrorResponse	"Internal server error"
//	@Router			/capabilities [get].
func (h *CapabilitiesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	caps, err := h.CapabilityService.List(ctx)
	if err != nil {
		log.Error("failed to list capabilities", "err", err)
		capsdk.ErrServerError.WriteError(w)
		return
	}

	catalog := make(capsdk.Catalog, len(caps))
	for _, c := range caps {
		catalog[c.Name] = toSDKCapability(c)
	}

	httpx.WriteJSON(w, http.StatusOK, catalog)
}

func toSDKCapability(c domain.Capability) capsdk.Capability {
	return capsdk.Capability{
		Description:       c.Description,
		PracticeArea:      c.PracticeArea,
		SkillLevels:       emptyIfNil(c.SkillLevels),
		Certifications:    emptyIfNil(c.Certifications),
		IndustryVerticals: emptyIfNil(c.IndustryVerticals),
		Capacity:          c.Capacity,
		Consultants:       emptyIfNil(c.Consultants),
	}
}

// Rosters and tag lists marshal as [] rather than null.
func emptyIfNil(ss []string) []string {
	if ss == nil {
		return []string{}
	}
	return ss
}

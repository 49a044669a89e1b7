package http

import (
	"net/http"
	"time"

	"github.com/rovillalobos-slalom/capabilities/internal/capability/store"
	"github.com/rovillalobos-slalom/capabilities/pkg/capsdk"
	"github.com/rovillalobos-slalom/capabilities/pkg/httpx"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe endpoint that verifies the database is reachable before reporting the service as ready
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	capsdk.HealthResponse	"status, uptime, version"
//	@Failure		503	{object}	capsdk.HealthResponse	"status, uptime, version - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			status = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, statusCode, capsdk.HealthResponse{
			Status:  status,
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}

package httpx

import (
	"fmt"
	"net/http"
	"slices"
	"strings"
)

// RequireRole lets the request through only when the authenticated caller
// holds one of the listed roles. It must run after AuthnMiddleware.
func RequireRole(roles ...string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			have := RoleFromCtx(r.Context())
			if slices.Contains(roles, have) {
				next.ServeHTTP(w, r)
				return
			}

			WriteDetail(w, http.StatusForbidden,
				fmt.Sprintf("Access denied. Required role: %s", strings.Join(roles, ", ")))
		})
	}
}

package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/rovillalobos-slalom/capabilities/internal/capability/domain"
	"github.com/rovillalobos-slalom/capabilities/internal/capability/service"
	"github.com/rovillalobos-slalom/capabilities/internal/capability/store"
	"github.com/rovillalobos-slalom/capabilities/pkg/httpx"
	"github.com/rovillalobos-slalom/capabilities/pkg/jwtx"
	"github.com/rovillalobos-slalom/capabilities/pkg/slogx"

	_ "github.com/rovillalobos-slalom/capabilities/api" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store             store.Store
	AuthService       *service.AuthService
	CapabilityService *service.CapabilityService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerCapabilities()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Capability Catalog Service API
//	@version		0.1.0
//	@description	API for managing consulting capabilities and consultant expertise.
//	@description
//	@description				Access tokens are HS256-signed JWTs obtained from the login endpoint.
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	// POST /auth/login - strict rate limit by IP (authentication attempts)
	loginHandler := &LoginHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /auth/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// GET /auth/me - lenient rate limit by user (polled on every page load)
	meHandler := &MeHandler{AuthService: r.AuthService}
	r.Mux.Handle("GET /auth/me",
		httpx.Chain(meHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	// POST /auth/register - Admin only, moderate rate limit by user
	usersHandler := &UsersHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /auth/register",
		httpx.Chain(http.HandlerFunc(usersHandler.HandleCreate),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireRole(string(domain.RoleAdmin)),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerCapabilities() {
	catalogHandler := &CapabilitiesHandler{CapabilityService: r.CapabilityService}
	registration := &RegistrationHandler{CapabilityService: r.CapabilityService}

	// GET /capabilities - public catalog, high limit
	r.Mux.Handle("GET /capabilities",
		httpx.Chain(http.HandlerFunc(catalogHandler.HandleList),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	// POST /capabilities/{name}/register - any authenticated user; the
	// service enforces the consultant self-only rule
	r.Mux.Handle("POST /capabilities/{name}/register",
		httpx.Chain(http.HandlerFunc(registration.HandleRegister),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// DELETE /capabilities/{name}/unregister - Admin and Approver only
	r.Mux.Handle("DELETE /capabilities/{name}/unregister",
		httpx.Chain(http.HandlerFunc(registration.HandleUnregister),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireRole(string(domain.RoleAdmin), string(domain.RoleApprover)),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

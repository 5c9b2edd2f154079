package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aryamangoenka/User-Management-System/internal/identity/domain"
	"github.com/aryamangoenka/User-Management-System/internal/identity/service"
	"github.com/aryamangoenka/User-Management-System/internal/identity/store"
	"github.com/aryamangoenka/User-Management-System/pkg/httpx"
	"github.com/aryamangoenka/User-Management-System/pkg/jwtx"
	"github.com/aryamangoenka/User-Management-System/pkg/slogx"

	_ "github.com/aryamangoenka/User-Management-System/api/identity" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	codec        jwtx.Codec
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store

	Authenticator *service.Authenticator
	Bridge        *service.Bridge // nil when the bridge is disabled
	Gate          *service.Gate
	TokenService  *service.TokenService
	UserService   *service.UserService
	RolesService  *service.RolesService
}

func NewRouter(
	codec jwtx.Codec,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		codec:        codec,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerBridge()
	r.registerRoles()
	r.registerUsers()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Identity Service API
//	@version		0.1.0
//	@description	Unified identity service bridging a legacy session-token system and JWT-based authentication.
//	@description
//	@description				Tokens are HS256-signed with a secret shared with the legacy issuer. Opaque legacy
//	@description				session tokens can be exchanged for unified bearer tokens at /v1/auth/legacy/login.
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer access token, or an opaque legacy session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	authn := AuthnMiddleware(r.Authenticator)

	// POST /register - strict rate limit by IP (public account creation)
	registerHandler := &RegisterHandler{UserService: r.UserService}
	r.Mux.Handle("POST /v1/auth/register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /login - strict rate limit by IP + username to slow brute force
	loginHandler := &LoginHandler{TokenService: r.TokenService}
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIPAndFormField(httpx.StrictLimit, "username"),
		),
	)

	loginJSONHandler := &LoginJSONHandler{TokenService: r.TokenService}
	r.Mux.Handle("POST /v1/auth/login-json",
		httpx.Chain(loginJSONHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("GET /v1/auth/me",
		httpx.Chain(&MeHandler{},
			authn,
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	profileHandler := &ProfileHandler{UserService: r.UserService}
	r.Mux.Handle("PATCH /v1/auth/me",
		httpx.Chain(profileHandler,
			authn,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	passwordHandler := &PasswordHandler{UserService: r.UserService}
	r.Mux.Handle("PUT /v1/auth/me/password",
		httpx.Chain(passwordHandler,
			authn,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	refreshHandler := &RefreshHandler{TokenService: r.TokenService}
	r.Mux.Handle("POST /v1/auth/refresh",
		httpx.Chain(refreshHandler,
			authn,
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerBridge() {
	statusHandler := &LegacyStatusHandler{Enabled: r.Bridge != nil}
	r.Mux.Handle("GET /v1/auth/legacy/status",
		httpx.Chain(statusHandler,
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	// The bridge endpoints only exist when the bridge is wired; a disabled
	// bridge serves 404, not 401, so nothing can probe it with tokens.
	if r.Bridge == nil {
		return
	}

	authn := AuthnMiddleware(r.Authenticator)

	loginHandler := &LegacyLoginHandler{Bridge: r.Bridge}
	r.Mux.Handle("POST /v1/auth/legacy/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	syncHandler := &LegacySyncHandler{UserService: r.UserService}
	r.Mux.Handle("POST /v1/auth/legacy/sync",
		httpx.Chain(syncHandler,
			authn,
			RequireSuperuser(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerRoles() {
	authn := AuthnMiddleware(r.Authenticator)
	h := &RolesHandler{RolesService: r.RolesService}

	r.Mux.Handle("POST /v1/roles",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			authn,
			RequirePermission(r.Gate, domain.PermCreateRole),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("GET /v1/roles",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			authn,
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("GET /v1/roles/{name}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			authn,
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("DELETE /v1/roles/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			authn,
			RequirePermission(r.Gate, domain.PermDeleteRole),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("POST /v1/roles/{id}/permissions",
		httpx.Chain(http.HandlerFunc(h.HandleAddPermission),
			authn,
			RequirePermission(r.Gate, domain.PermAddPermissionToRole),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("DELETE /v1/roles/{id}/permissions/{permission}",
		httpx.Chain(http.HandlerFunc(h.HandleRemovePermission),
			authn,
			RequirePermission(r.Gate, domain.PermRemovePermissionFromRole),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerUsers() {
	authn := AuthnMiddleware(r.Authenticator)
	h := &UsersHandler{UserService: r.UserService}

	admin := func(handler http.Handler) http.Handler {
		return httpx.Chain(handler,
			authn,
			RequireSuperuser(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		)
	}

	r.Mux.Handle("GET /v1/users", admin(http.HandlerFunc(h.HandleList)))
	r.Mux.Handle("GET /v1/users/{id}", admin(http.HandlerFunc(h.HandleGet)))
	r.Mux.Handle("PATCH /v1/users/{id}", admin(http.HandlerFunc(h.HandlePatch)))
	r.Mux.Handle("DELETE /v1/users/{id}", admin(http.HandlerFunc(h.HandleDelete)))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store, r.codec))
}

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/aryamangoenka/User-Management-System/internal/identity/domain"
	"github.com/aryamangoenka/User-Management-System/internal/identity/service"
	"github.com/aryamangoenka/User-Management-System/pkg/httpx"
	"github.com/aryamangoenka/User-Management-System/pkg/identitysdk"
	"github.com/aryamangoenka/User-Management-System/pkg/slogx"
)

// AuthnMiddleware resolves the bearer credential to a Principal and injects
// it into the request context. Every failure mode produces the same 401;
// the reason lands in logs only. Storage faults are 500, never 401, so an
// outage doesn't read as mass credential revocation.
func AuthnMiddleware(a *service.Authenticator) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			p, err := a.Authenticate(ctx, httpx.BearerToken(r))
			if err != nil {
				if errors.Is(err, service.ErrUnauthenticated) {
					httpx.WriteBearerError(w, "could not validate credentials")
					return
				}
				log.Error("authentication store fault", "err", err)
				identitysdk.ErrServerError.WriteError(w)
				return
			}

			if err := a.RequireActive(p); err != nil {
				identitysdk.ErrInactiveAccount.WriteError(w)
				return
			}

			ctx = contextWithPrincipal(ctx, p)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireSuperuser gates a route on the superuser flag. Must run inside
// AuthnMiddleware.
func RequireSuperuser() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p := PrincipalFromCtx(r.Context())
			if p == nil || !p.IsSuperuser {
				identitysdk.ErrAccessDenied.WriteError(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequirePermission gates a route on a named permission, resolved through
// the gate on every request. Must run inside AuthnMiddleware.
func RequirePermission(g *service.Gate, permission string) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			p := PrincipalFromCtx(ctx)
			ok, err := g.Check(ctx, p, permission)
			if err != nil {
				slogx.FromContext(ctx).Error("permission check store fault", "err", err)
				identitysdk.ErrServerError.WriteError(w)
				return
			}
			if !ok {
				identitysdk.ErrAccessDenied.WriteError(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func contextWithPrincipal(ctx context.Context, p *domain.Principal) context.Context {
	ctx = context.WithValue(ctx, httpx.CtxKeyUserID, p.ID)
	ctx = context.WithValue(ctx, httpx.CtxKeyPrincipal, p)
	return ctx
}

// PrincipalFromCtx returns the authenticated principal, or nil when the
// request did not pass AuthnMiddleware.
func PrincipalFromCtx(ctx context.Context) *domain.Principal {
	if p, ok := ctx.Value(httpx.CtxKeyPrincipal).(*domain.Principal); ok {
		return p
	}
	return nil
}

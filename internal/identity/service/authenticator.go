package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aryamangoenka/User-Management-System/internal/identity/domain"
	"github.com/aryamangoenka/User-Management-System/internal/identity/store"
	"github.com/aryamangoenka/User-Management-System/pkg/jwtx"
	"github.com/aryamangoenka/User-Management-System/pkg/slogx"
)

var (
	// ErrUnauthenticated covers every failed credential uniformly; the
	// specific failure reason is logged, never returned.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrInactiveAccount marks a valid credential whose account is disabled.
	ErrInactiveAccount = errors.New("inactive_account")

	// ErrForbidden marks an authenticated principal lacking authority.
	ErrForbidden = errors.New("access_denied")
)

// Authenticator turns a bearer credential into a Principal. The decision
// procedure is fixed:
//
//  1. If a bridge is configured, try it first (opaque legacy tokens and
//     legacy-sourced claims both resolve there).
//  2. Decode the token as native claims. Legacy-sourced claims reaching this
//     stage are rejected outright: the only valid path for them is the
//     bridge, which re-validates against the live account.
//  3. Resolve the claim subject against the local user table.
//
// Each stage either produces a principal or falls through; no stage's
// failure reason reaches the caller.
type Authenticator struct {
	Store  store.Store
	Codec  jwtx.Codec
	Bridge *Bridge // nil when the bridge is disabled

	// RevalidateNative, when set, re-resolves natively issued claims against
	// the local user table on every use, mirroring what bridged claims
	// always get. Off by default: native claims are trusted until expiry.
	RevalidateNative bool
}

// Authenticate resolves a bearer token to a Principal or ErrUnauthenticated.
// Storage faults pass through untouched so callers can distinguish "bad
// credential" from "store down".
func (a *Authenticator) Authenticate(ctx context.Context, token string) (*domain.Principal, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}

	l := slogx.FromContext(ctx)

	if a.Bridge != nil {
		p, err := a.Bridge.AuthenticateAny(ctx, token)
		if err != nil {
			return nil, err
		}
		if p != nil {
			return p, nil
		}
	}

	claims, err := a.Codec.Verify(token)
	if err != nil {
		l.Debug("native token rejected", slog.String("reason", err.Error()))
		return nil, ErrUnauthenticated
	}

	// A legacy-sourced token that the bridge did not accept is stale or the
	// bridge is disabled. Either way it must not be trusted as native.
	if claims.IsLegacySourced() {
		l.Debug("legacy-sourced claims rejected on native path")
		return nil, ErrUnauthenticated
	}

	user, err := a.Store.Users().GetUserByUsername(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			l.Debug("token subject has no local account", slog.String("sub", claims.Subject))
			return nil, ErrUnauthenticated
		}
		return nil, err
	}

	if a.RevalidateNative && !user.IsActive {
		return nil, ErrUnauthenticated
	}

	p := principalFromClaims(&claims, domain.SourceNative)
	p.ID = user.ID
	p.Email = user.Email
	p.Role = user.Role
	p.IsSuperuser = user.IsSuperuser
	p.IsActive = user.IsActive
	return p, nil
}

// RequireActive rejects principals whose account is disabled. Bridged
// principals can never reach here inactive; native ones can when
// RevalidateNative is off and the account was disabled after issuance.
func (a *Authenticator) RequireActive(p *domain.Principal) error {
	if p == nil {
		return ErrUnauthenticated
	}
	if !p.IsActive {
		return ErrInactiveAccount
	}
	return nil
}

// RequireSuperuser rejects active principals without the superuser flag.
func (a *Authenticator) RequireSuperuser(p *domain.Principal) error {
	if err := a.RequireActive(p); err != nil {
		return err
	}
	if !p.IsSuperuser {
		return ErrForbidden
	}
	return nil
}

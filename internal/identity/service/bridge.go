package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aryamangoenka/User-Management-System/internal/identity/domain"
	"github.com/aryamangoenka/User-Management-System/internal/identity/store"
	"github.com/aryamangoenka/User-Management-System/pkg/cryptox"
	"github.com/aryamangoenka/User-Management-System/pkg/jwtx"
	"github.com/aryamangoenka/User-Management-System/pkg/slogx"
)

// Bridge accepts credentials from the legacy system and exchanges them for
// tokens the rest of the service understands. Opaque legacy session tokens
// are resolved by fingerprint lookup; nothing here ever sees a legacy
// password.
//
// Every method returns (nil, nil) for any credential that does not resolve
// to an active account. Callers cannot distinguish "no such token" from
// "token of a deactivated account"; only storage faults surface as errors.
type Bridge struct {
	Store store.Store
	Codec jwtx.Codec

	// UnifiedTTL bounds tokens minted for legacy-authenticated principals.
	// Opaque legacy tokens have no lifetime of their own, so this is the
	// only expiry such a principal ever gets.
	UnifiedTTL time.Duration
}

// TTL is the effective unified-token lifetime.
func (b *Bridge) TTL() time.Duration {
	if b.UnifiedTTL <= 0 {
		return jwtx.DefaultUnifiedTokenTTL
	}
	return b.UnifiedTTL
}

// ValidateLegacy resolves an opaque legacy session token to a Principal.
// The token is fingerprinted and matched exactly against the stored session
// fingerprints; prefix or fuzzy matches are impossible by construction.
func (b *Bridge) ValidateLegacy(ctx context.Context, token string) (*domain.Principal, error) {
	if token == "" {
		return nil, nil
	}

	hash := cryptox.FingerprintToken(token)

	session, err := b.Store.LegacySessions().GetSessionByTokenHash(ctx, hash)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	account, err := b.Store.LegacyAccounts().GetAccountByID(ctx, session.AccountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Orphaned session row; treat as an invalid credential.
			return nil, nil
		}
		return nil, err
	}

	if !account.IsActive {
		return nil, nil
	}

	return principalFromLegacyAccount(account), nil
}

// MintUnified signs a bearer token for a principal the bridge authenticated.
// The claims carry an origin marker so every later use re-validates against
// the live legacy account instead of trusting the snapshot.
func (b *Bridge) MintUnified(ctx context.Context, p *domain.Principal) (string, error) {
	claims := jwtx.NewClaims(
		p.Username,
		p.ID,
		p.Email,
		p.Role,
		p.IsSuperuser,
		jwtx.SourceLegacy,
		b.Codec.Issuer(),
		b.TTL(),
		time.Now(),
	)
	return b.Codec.Sign(claims)
}

// AuthenticateAny resolves a token of either kind: opaque legacy session
// tokens are tried first by exact fingerprint match, then the token is
// decoded as a signed claim set. Legacy-sourced claims are re-resolved
// against the live account on every call; native claims are returned as
// decoded.
func (b *Bridge) AuthenticateAny(ctx context.Context, token string) (*domain.Principal, error) {
	if token == "" {
		return nil, nil
	}

	p, err := b.ValidateLegacy(ctx, token)
	if err != nil {
		return nil, err
	}
	if p != nil {
		return p, nil
	}

	claims, err := b.Codec.Verify(token)
	if err != nil {
		// Any decode failure is an invalid credential, not a fault.
		slogx.FromContext(ctx).Debug("token decode failed", slog.String("reason", err.Error()))
		return nil, nil
	}

	if claims.IsLegacySourced() {
		return b.resolveBridgedClaims(ctx, &claims)
	}

	return principalFromClaims(&claims, domain.SourceNative), nil
}

// resolveBridgedClaims maps legacy-sourced claims back onto the live legacy
// account. The claim snapshot is discarded except for the subject id; role,
// flags and email always come from the current account row, so revocation
// and deactivation take effect immediately.
func (b *Bridge) resolveBridgedClaims(ctx context.Context, claims *jwtx.Claims) (*domain.Principal, error) {
	account, err := b.Store.LegacyAccounts().GetAccountByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if !account.IsActive {
		return nil, nil
	}

	p := principalFromLegacyAccount(account)
	if claims.IssuedAt != nil {
		p.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		p.ExpiresAt = claims.ExpiresAt.Time
	}
	return p, nil
}

func principalFromLegacyAccount(a domain.LegacyAccount) *domain.Principal {
	role := a.Role
	if role == "" {
		role = domain.DefaultRole
	}
	return &domain.Principal{
		ID:          a.ID,
		Username:    a.Username,
		Email:       a.Email,
		Role:        role,
		IsSuperuser: a.IsSuperuser,
		IsActive:    a.IsActive,
		Source:      domain.SourceForeign,
	}
}

func principalFromClaims(c *jwtx.Claims, source domain.Source) *domain.Principal {
	role := c.Role
	if role == "" {
		role = domain.DefaultRole
	}
	p := &domain.Principal{
		ID:          c.UserID,
		Username:    c.Subject,
		Email:       c.Email,
		Role:        role,
		IsSuperuser: c.IsSuperuser,
		IsActive:    true,
		Source:      source,
	}
	if c.IssuedAt != nil {
		p.IssuedAt = c.IssuedAt.Time
	}
	if c.ExpiresAt != nil {
		p.ExpiresAt = c.ExpiresAt.Time
	}
	return p
}

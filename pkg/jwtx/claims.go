package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token source markers. Native tokens omit the marker entirely; only tokens
// minted on behalf of a legacy credential carry it, and verifiers treat its
// presence as "re-resolve this subject against the live account".
const (
	SourceLegacy = "legacy"
)

// Default token lifetimes. Native access tokens are short-lived; unified
// tokens minted from a legacy credential get a fixed 24h window so a portal
// session survives a working day without re-authentication.
const (
	DefaultAccessTokenTTL  = 30 * time.Minute
	DefaultUnifiedTokenTTL = 24 * time.Hour
)

// Claims are the access-token claims shared by both issuing paths. Additive
// changes only, to keep older tokens decodable until they expire.
type Claims struct {
	jwt.RegisteredClaims

	// UserID is the stable record id of the subject in its origin system.
	UserID string `json:"user_id,omitempty"`

	// Email of the subject at issuance time.
	Email string `json:"email,omitempty"`

	// Role name; resolved against the role store at authorization time,
	// never trusted as a permission list by itself.
	Role string `json:"role,omitempty"`

	// IsSuperuser short-circuits the permission gate.
	IsSuperuser bool `json:"is_superuser,omitempty"`

	// Source is empty for natively issued tokens and SourceLegacy for
	// tokens minted by the bridge.
	Source string `json:"source,omitempty"`
}

// NewClaims builds minimally-correct claims for a subject.
func NewClaims(
	subject, userID, email, role string,
	isSuperuser bool,
	source, issuer string,
	ttl time.Duration,
	now time.Time,
) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID:      userID,
		Email:       email,
		Role:        role,
		IsSuperuser: isSuperuser,
		Source:      source,
	}
}

// IsLegacySourced reports whether the claims were minted by the bridge on
// behalf of a legacy credential.
func (c *Claims) IsLegacySourced() bool {
	return c.Source == SourceLegacy
}

// ValidateExpiry ensures the token hasn't expired (exp) and isn't used before
// it is valid (nbf).
func (c *Claims) ValidateExpiry() error {
	now := time.Now().UTC()

	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Time) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrNotYetValid
	}

	return nil
}

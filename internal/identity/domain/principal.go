package domain

import "time"

// Source records which credential system authenticated a principal. Foreign
// principals carry a role name that must be independently resolved against
// the local role store; they are also re-validated against the live account
// on every use.
type Source string

const (
	SourceNative  Source = "native"
	SourceForeign Source = "foreign"
)

// Principal is the normalized identity produced by authentication,
// regardless of which credential system vouched for it. A Principal is never
// constructed for an inactive account.
type Principal struct {
	ID          string
	Username    string
	Email       string
	Role        string
	IsSuperuser bool
	IsActive    bool
	Source      Source

	// IssuedAt/ExpiresAt are zero for opaque legacy credentials, which have
	// no embedded lifetime.
	IssuedAt  time.Time
	ExpiresAt time.Time
}

package domain

import "time"

// LegacyAccount mirrors a user record in the legacy credential system. The
// bridge reads these; nothing in this service authenticates against the
// legacy password, only against session tokens the legacy system issued.
type LegacyAccount struct {
	ID          string
	Username    string
	Email       string
	Role        string // may be empty; DefaultRole applies
	IsSuperuser bool
	IsActive    bool
	CreatedAt   time.Time
}

// LegacySession is an opaque session token issued by the legacy system,
// stored by fingerprint and resolved by exact match.
type LegacySession struct {
	TokenHash string
	AccountID string
	CreatedAt time.Time
}

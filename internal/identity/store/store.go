package store

import (
	"context"
	"errors"

	"github.com/aryamangoenka/User-Management-System/internal/identity/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable. The legacy tables live in the same database but are modelled as
// separate repositories because they belong to the other credential system;
// this service only ever reads or seeds them, never authenticates against
// legacy passwords.
type Store interface {
	Users() Users
	Roles() Roles
	LegacyAccounts() LegacyAccounts
	LegacySessions() LegacySessions

	ApplyMigrations() error

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds
// Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByUsername is used during login and native claim resolution.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// GetUserByEmail supports duplicate-email detection on register.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	// Returns ErrAlreadyExists on username/email collision.
	CreateUser(ctx context.Context, u domain.User) error

	// ListUsers returns all users ordered by id (creation order).
	ListUsers(ctx context.Context) ([]domain.User, error)

	// UpdateUserFlags mutates role, is_active and is_superuser and bumps
	// updated_at.
	UpdateUserFlags(ctx context.Context, userID, role string, isActive, isSuperuser bool) error

	// UpdateUserProfile mutates email and bumps updated_at.
	UpdateUserProfile(ctx context.Context, userID, email string) error

	// UpdatePasswordHash sets the password_hash (argon2id).
	UpdatePasswordHash(ctx context.Context, userID, newHash string) error

	// DeleteUser removes the user row.
	DeleteUser(ctx context.Context, userID string) error

	// IsEmpty returns true if there are no users.
	IsEmpty(ctx context.Context) (bool, error)
}

type Roles interface {
	// GetRoleByID fetches a role by its ID.
	GetRoleByID(ctx context.Context, id string) (domain.Role, error)

	// GetRoleByName fetches a role by its unique name. This is the hot path:
	// the permission gate resolves the principal's role by name on every
	// gated request.
	GetRoleByName(ctx context.Context, name string) (domain.Role, error)

	// ListAll returns all roles in the system.
	ListAll(ctx context.Context) ([]domain.Role, error)

	// CreateRole inserts a new role (id is ULID). Returns ErrAlreadyExists
	// on duplicate name.
	CreateRole(ctx context.Context, r domain.Role) error

	// UpdateRolePermissions replaces the permission set for a role.
	UpdateRolePermissions(ctx context.Context, roleID string, permissions []string) error

	// DeleteRole removes a role. Users referencing it keep their role name;
	// the gate denies everything for names with no backing row.
	DeleteRole(ctx context.Context, roleID string) error

	// IsEmpty returns true if there are no roles.
	IsEmpty(ctx context.Context) (bool, error)
}

type LegacyAccounts interface {
	// GetAccountByID resolves a bridged claim subject against the live
	// legacy account table.
	GetAccountByID(ctx context.Context, id string) (domain.LegacyAccount, error)

	// GetAccountByUsername supports the sync flow.
	GetAccountByUsername(ctx context.Context, username string) (domain.LegacyAccount, error)

	// CreateAccount inserts a legacy account (seeding and tests).
	CreateAccount(ctx context.Context, a domain.LegacyAccount) error

	// SetAccountActive flips the active flag.
	SetAccountActive(ctx context.Context, accountID string, active bool) error

	// DeleteAccount removes the account; sessions cascade per schema.
	DeleteAccount(ctx context.Context, accountID string) error
}

type LegacySessions interface {
	// CreateSession stores a session token fingerprint for an account.
	CreateSession(ctx context.Context, s domain.LegacySession) error

	// GetSessionByTokenHash is the exact-match lookup the bridge performs.
	GetSessionByTokenHash(ctx context.Context, hash string) (domain.LegacySession, error)

	// DeleteSession revokes a single session token.
	DeleteSession(ctx context.Context, hash string) error

	// DeleteAccountSessions revokes all session tokens for an account.
	DeleteAccountSessions(ctx context.Context, accountID string) error
}

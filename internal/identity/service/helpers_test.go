package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aryamangoenka/User-Management-System/internal/identity/domain"
	"github.com/aryamangoenka/User-Management-System/internal/identity/store"
	"github.com/aryamangoenka/User-Management-System/internal/identity/store/drivers/sqlite"
	"github.com/aryamangoenka/User-Management-System/pkg/cryptox"
	"github.com/aryamangoenka/User-Management-System/pkg/idx"
	"github.com/aryamangoenka/User-Management-System/pkg/jwtx"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "identity-service-test-*")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

// testEnv wires a full service stack over an in-memory store.
type testEnv struct {
	Store store.Store
	Codec jwtx.Codec

	Bridge *Bridge
	Authn  *Authenticator
	Gate   *Gate
	Tokens *TokenService
	Users  *UserService
	Roles  *RolesService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close() })

	codec, err := jwtx.NewHS256([]byte("test-shared-secret-test-shared-secret"), "identity-test", 0)
	require.NoError(t, err)

	bridge := &Bridge{Store: s, Codec: codec}

	return &testEnv{
		Store:  s,
		Codec:  codec,
		Bridge: bridge,
		Authn:  &Authenticator{Store: s, Codec: codec, Bridge: bridge},
		Gate:   &Gate{Store: s},
		Tokens: &TokenService{Store: s, Codec: codec},
		Users:  &UserService{Store: s},
		Roles:  &RolesService{Store: s},
	}
}

// seedLegacyAccount inserts a legacy account plus one session token and
// returns the account and the raw token.
func (e *testEnv) seedLegacyAccount(t *testing.T, username string, active bool) (domain.LegacyAccount, string) {
	t.Helper()
	ctx := context.Background()

	acct := domain.LegacyAccount{
		ID:       idx.New().String(),
		Username: username,
		Email:    username + "@legacy.example.com",
		Role:     domain.DefaultRole,
		IsActive: active,
	}
	require.NoError(t, e.Store.LegacyAccounts().CreateAccount(ctx, acct))

	token := cryptox.MustGenerateToken(cryptox.TokenSize256)
	require.NoError(t, e.Store.LegacySessions().CreateSession(ctx, domain.LegacySession{
		TokenHash: cryptox.FingerprintToken(token),
		AccountID: acct.ID,
		CreatedAt: time.Now().UTC(),
	}))

	return acct, token
}

// seedUser registers a local user through the service so the password hash
// is real.
func (e *testEnv) seedUser(t *testing.T, username, password string) domain.User {
	t.Helper()

	user, err := e.Users.Register(context.Background(), username, username+"@example.com", password)
	require.NoError(t, err)
	return user
}

// seedRole creates a role with the given permissions.
func (e *testEnv) seedRole(t *testing.T, name string, perms ...string) domain.Role {
	t.Helper()
	ctx := context.Background()

	role, _, err := e.Roles.GetOrCreate(ctx, name)
	require.NoError(t, err)
	for _, p := range perms {
		role, err = e.Roles.AddPermission(ctx, role.ID, p)
		require.NoError(t, err)
	}
	return role
}

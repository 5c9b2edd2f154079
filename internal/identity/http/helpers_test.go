package http

import (
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aryamangoenka/User-Management-System/internal/identity/domain"
	"github.com/aryamangoenka/User-Management-System/internal/identity/service"
	"github.com/aryamangoenka/User-Management-System/internal/identity/store"
	"github.com/aryamangoenka/User-Management-System/internal/identity/store/drivers/sqlite"
	"github.com/aryamangoenka/User-Management-System/pkg/cryptox"
	"github.com/aryamangoenka/User-Management-System/pkg/idx"
	"github.com/aryamangoenka/User-Management-System/pkg/jwtx"
	"github.com/aryamangoenka/User-Management-System/pkg/slogx"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "identity-http-test-*")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

// testServer bundles a running httptest server with direct access to the
// stores and services behind it.
type testServer struct {
	*httptest.Server

	Store  store.Store
	Codec  jwtx.Codec
	Bridge *service.Bridge
	Users  *service.UserService
	Roles  *service.RolesService
}

func newTestServer(t *testing.T, bridgeEnabled bool) *testServer {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	codec, err := jwtx.NewHS256([]byte("handler-test-secret-handler-test-secret"), "identity-test", 0)
	require.NoError(t, err)

	var bridge *service.Bridge
	if bridgeEnabled {
		bridge = &service.Bridge{Store: st, Codec: codec}
	}

	logger := slogx.New(slogx.Config{
		Service: "identity-test",
		Version: "test",
		Env:     "test",
		Level:   "error",
		Format:  "text",
	})

	router := NewRouter(codec, "test", st, logger)
	router.Authenticator = &service.Authenticator{Store: st, Codec: codec, Bridge: bridge}
	router.Bridge = bridge
	router.Gate = &service.Gate{Store: st}
	router.TokenService = &service.TokenService{Store: st, Codec: codec, AccessTTL: 30 * time.Minute}
	router.UserService = &service.UserService{Store: st}
	router.RolesService = &service.RolesService{Store: st}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{
		Server: srv,
		Store:  st,
		Codec:  codec,
		Bridge: bridge,
		Users:  router.UserService,
		Roles:  router.RolesService,
	}
}

// seedSuperuser creates a superuser directly in the store and returns a
// token for it.
func (s *testServer) seedSuperuser(t *testing.T, username, password string) (domain.User, string) {
	return s.seedUserWithFlags(t, username, password, domain.DefaultRole, true)
}

func (s *testServer) seedUserWithFlags(t *testing.T, username, password, role string, superuser bool) (domain.User, string) {
	t.Helper()
	ctx := context.Background()

	hash, err := cryptox.HashPassword(password)
	require.NoError(t, err)

	user := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: hash,
		Role:         role,
		IsSuperuser:  superuser,
		IsActive:     true,
	}
	require.NoError(t, s.Store.Users().CreateUser(ctx, user))

	claims := jwtx.NewClaims(
		user.Username, user.ID, user.Email, user.Role,
		user.IsSuperuser, "", s.Codec.Issuer(), time.Hour, time.Now(),
	)
	token, err := s.Codec.Sign(claims)
	require.NoError(t, err)

	return user, token
}

// seedLegacyAccount inserts a legacy account and one session token.
func (s *testServer) seedLegacyAccount(t *testing.T, username string, active bool) (domain.LegacyAccount, string) {
	t.Helper()
	ctx := context.Background()

	acct := domain.LegacyAccount{
		ID:       idx.New().String(),
		Username: username,
		Email:    username + "@legacy.example.com",
		Role:     domain.DefaultRole,
		IsActive: active,
	}
	require.NoError(t, s.Store.LegacyAccounts().CreateAccount(ctx, acct))

	token := cryptox.MustGenerateToken(cryptox.TokenSize256)
	require.NoError(t, s.Store.LegacySessions().CreateSession(ctx, domain.LegacySession{
		TokenHash: cryptox.FingerprintToken(token),
		AccountID: acct.ID,
		CreatedAt: time.Now().UTC(),
	}))

	return acct, token
}

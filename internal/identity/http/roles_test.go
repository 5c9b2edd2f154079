package http

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/aryamangoenka/User-Management-System/internal/identity/domain"
	"github.com/aryamangoenka/User-Management-System/pkg/identitysdk"
	"github.com/aryamangoenka/User-Management-System/pkg/idx"

	"github.com/stretchr/testify/require"
)

// seedRoleManager creates a user holding a role with the full role-management
// permission set and returns its token.
func (s *testServer) seedRoleManager(t *testing.T, username string) string {
	t.Helper()

	require.NoError(t, s.Store.Roles().CreateRole(context.Background(), domain.Role{
		ID:   idx.New().String(),
		Name: "role_manager",
		Permissions: []string{
			domain.PermCreateRole,
			domain.PermDeleteRole,
			domain.PermAddPermissionToRole,
			domain.PermRemovePermissionFromRole,
		},
		CreatedAt: time.Now().UTC(),
	}))

	_, token := s.seedUserWithFlags(t, username, username+" password", "role_manager", false)
	return token
}

func TestRoles_CreateGetList(t *testing.T) {
	srv := newTestServer(t, true)
	client := identitysdk.NewClient(srv.URL)
	ctx := context.Background()

	token := srv.seedRoleManager(t, "rolemgr")

	var created identitysdk.RoleInfo
	err := client.Do(ctx, http.MethodPost, "/v1/roles", token,
		identitysdk.CreateRoleRequest{Name: "auditor"}, &created)
	require.NoError(t, err)
	require.Equal(t, "auditor", created.Name)
	require.NotEmpty(t, created.ID)
	require.Empty(t, created.Permissions)

	// Creating the same name again returns the existing role.
	var again identitysdk.RoleInfo
	err = client.Do(ctx, http.MethodPost, "/v1/roles", token,
		identitysdk.CreateRoleRequest{Name: "auditor"}, &again)
	require.NoError(t, err)
	require.Equal(t, created.ID, again.ID)

	var fetched identitysdk.RoleInfo
	err = client.Do(ctx, http.MethodGet, "/v1/roles/auditor", token, nil, &fetched)
	require.NoError(t, err)
	require.Equal(t, created.ID, fetched.ID)

	var list identitysdk.ListRolesResponse
	err = client.Do(ctx, http.MethodGet, "/v1/roles", token, nil, &list)
	require.NoError(t, err)

	names := make([]string, len(list.Roles))
	for i, role := range list.Roles {
		names[i] = role.Name
	}
	require.Contains(t, names, "auditor")
	require.Contains(t, names, "role_manager")
}

func TestRoles_Permissions(t *testing.T) {
	srv := newTestServer(t, true)
	client := identitysdk.NewClient(srv.URL)
	ctx := context.Background()

	token := srv.seedRoleManager(t, "rolemgr")

	var role identitysdk.RoleInfo
	err := client.Do(ctx, http.MethodPost, "/v1/roles", token,
		identitysdk.CreateRoleRequest{Name: "editor"}, &role)
	require.NoError(t, err)

	err = client.Do(ctx, http.MethodPost, "/v1/roles/"+role.ID+"/permissions", token,
		identitysdk.AddPermissionRequest{Permission: "edit_articles"}, &role)
	require.NoError(t, err)
	require.Contains(t, role.Permissions, "edit_articles")

	err = client.Do(ctx, http.MethodDelete,
		"/v1/roles/"+role.ID+"/permissions/edit_articles", token, nil, &role)
	require.NoError(t, err)
	require.NotContains(t, role.Permissions, "edit_articles")

	// Removing it twice is a 404, not a silent no-op.
	err = client.Do(ctx, http.MethodDelete,
		"/v1/roles/"+role.ID+"/permissions/edit_articles", token, nil, nil)
	e := apiErr(t, err)
	require.Equal(t, http.StatusNotFound, e.StatusCode)
}

func TestRoles_AddPermission_RejectsWhitespace(t *testing.T) {
	srv := newTestServer(t, true)
	client := identitysdk.NewClient(srv.URL)
	ctx := context.Background()

	token := srv.seedRoleManager(t, "rolemgr")

	var role identitysdk.RoleInfo
	err := client.Do(ctx, http.MethodPost, "/v1/roles", token,
		identitysdk.CreateRoleRequest{Name: "picky"}, &role)
	require.NoError(t, err)

	err = client.Do(ctx, http.MethodPost, "/v1/roles/"+role.ID+"/permissions", token,
		identitysdk.AddPermissionRequest{Permission: "read write"}, nil)
	e := apiErr(t, err)
	require.Equal(t, http.StatusBadRequest, e.StatusCode)

	// Nothing was persisted that could split on the next read.
	var fetched identitysdk.RoleInfo
	err = client.Do(ctx, http.MethodGet, "/v1/roles/picky", token, nil, &fetched)
	require.NoError(t, err)
	require.Empty(t, fetched.Permissions)
}

func TestRoles_Delete(t *testing.T) {
	srv := newTestServer(t, true)
	client := identitysdk.NewClient(srv.URL)
	ctx := context.Background()

	token := srv.seedRoleManager(t, "rolemgr")

	var role identitysdk.RoleInfo
	err := client.Do(ctx, http.MethodPost, "/v1/roles", token,
		identitysdk.CreateRoleRequest{Name: "doomed"}, &role)
	require.NoError(t, err)

	err = client.Do(ctx, http.MethodDelete, "/v1/roles/"+role.ID, token, nil, nil)
	require.NoError(t, err)

	err = client.Do(ctx, http.MethodGet, "/v1/roles/doomed", token, nil, nil)
	e := apiErr(t, err)
	require.Equal(t, http.StatusNotFound, e.StatusCode)
}

func TestRoles_PermissionGate(t *testing.T) {
	srv := newTestServer(t, true)
	client := identitysdk.NewClient(srv.URL)
	ctx := context.Background()

	// A plain user can read roles but not mutate them.
	_, token := srv.seedUserWithFlags(t, "reader", "reader password", "user", false)

	err := client.Do(ctx, http.MethodGet, "/v1/roles", token, nil, nil)
	require.NoError(t, err)

	err = client.Do(ctx, http.MethodPost, "/v1/roles", token,
		identitysdk.CreateRoleRequest{Name: "sneaky"}, nil)
	e := apiErr(t, err)
	require.Equal(t, http.StatusForbidden, e.StatusCode)
	require.Equal(t, identitysdk.ErrorCodeAccessDenied, e.Code)
}

func TestRoles_SuperuserBypassesGate(t *testing.T) {
	srv := newTestServer(t, true)
	client := identitysdk.NewClient(srv.URL)
	ctx := context.Background()

	// Superusers pass every permission check without holding a role.
	_, token := srv.seedSuperuser(t, "root", "root password")

	var role identitysdk.RoleInfo
	err := client.Do(ctx, http.MethodPost, "/v1/roles", token,
		identitysdk.CreateRoleRequest{Name: "by_root"}, &role)
	require.NoError(t, err)
	require.Equal(t, "by_root", role.Name)
}

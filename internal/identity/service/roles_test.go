package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRolesService_GetOrCreate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	role, created, err := env.Roles.GetOrCreate(ctx, "moderator")
	require.NoError(t, err)
	require.True(t, created)
	require.Empty(t, role.Permissions)

	same, created, err := env.Roles.GetOrCreate(ctx, "moderator")
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, role.ID, same.ID)
}

func TestRolesService_Permissions(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	role, _, err := env.Roles.GetOrCreate(ctx, "writer")
	require.NoError(t, err)

	role, err = env.Roles.AddPermission(ctx, role.ID, "write_posts")
	require.NoError(t, err)
	require.Equal(t, []string{"write_posts"}, role.Permissions)

	// Re-adding is a no-op, the set stays deduplicated.
	role, err = env.Roles.AddPermission(ctx, role.ID, "write_posts")
	require.NoError(t, err)
	require.Equal(t, []string{"write_posts"}, role.Permissions)

	role, err = env.Roles.RemovePermission(ctx, role.ID, "write_posts")
	require.NoError(t, err)
	require.Empty(t, role.Permissions)

	_, err = env.Roles.RemovePermission(ctx, role.ID, "write_posts")
	require.ErrorIs(t, err, ErrPermissionNotFound)
}

func TestRolesService_AddPermission_RejectsWhitespace(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	role, _, err := env.Roles.GetOrCreate(ctx, "strict")
	require.NoError(t, err)

	// Permission sets persist space-delimited; a name with interior
	// whitespace would read back as two permissions.
	for _, bad := range []string{"read write", "read\twrite", "read\nwrite", "   "} {
		_, err = env.Roles.AddPermission(ctx, role.ID, bad)
		require.ErrorIs(t, err, ErrInvalidPermission, "permission %q", bad)
	}

	got, err := env.Roles.GetRoleByName(ctx, "strict")
	require.NoError(t, err)
	require.Empty(t, got.Permissions)
}

func TestRolesService_NotFound(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.Roles.GetRoleByName(ctx, "ghost_role")
	require.ErrorIs(t, err, ErrRoleNotFound)

	_, err = env.Roles.AddPermission(ctx, "01NOPE", "perm")
	require.ErrorIs(t, err, ErrRoleNotFound)

	require.ErrorIs(t, env.Roles.Delete(ctx, "01NOPE"), ErrRoleNotFound)
}

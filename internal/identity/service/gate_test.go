package service

import (
	"context"
	"testing"

	"github.com/aryamangoenka/User-Management-System/internal/identity/domain"

	"github.com/stretchr/testify/require"
)

func TestGate_SuperuserShortCircuit(t *testing.T) {
	env := newTestEnv(t)

	p := &domain.Principal{Username: "root", Role: "no_such_role", IsSuperuser: true, IsActive: true}

	ok, err := env.Gate.Check(context.Background(), p, "anything_at_all")
	require.NoError(t, err)
	require.True(t, ok, "superuser bypasses role resolution entirely")
}

func TestGate_UnknownRoleDenies(t *testing.T) {
	env := newTestEnv(t)

	p := &domain.Principal{Username: "u", Role: "never_created", IsActive: true}

	ok, err := env.Gate.Check(context.Background(), p, domain.PermCreateRole)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestGate_NilPrincipalDenies(t *testing.T) {
	env := newTestEnv(t)

	ok, err := env.Gate.Check(context.Background(), nil, domain.PermCreateRole)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestGate_Membership(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.seedRole(t, "editor", "edit_articles", "publish_articles")
	p := &domain.Principal{Username: "u", Role: "editor", IsActive: true}

	ok, err := env.Gate.Check(ctx, p, "edit_articles")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = env.Gate.Check(ctx, p, "delete_articles")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestGate_PermissionAddIsMonotonic(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	role := env.seedRole(t, "analyst", "read_reports")
	p := &domain.Principal{Username: "u", Role: "analyst", IsActive: true}

	ok, err := env.Gate.Check(ctx, p, "export_reports")
	require.NoError(t, err)
	require.False(t, ok)

	_, err = env.Roles.AddPermission(ctx, role.ID, "export_reports")
	require.NoError(t, err)

	// Everything allowed before stays allowed; the new permission lands on
	// the very next check.
	ok, err = env.Gate.Check(ctx, p, "read_reports")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = env.Gate.Check(ctx, p, "export_reports")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestGate_DenyAfterRoleDelete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	role := env.seedRole(t, "temp_role", "do_things")
	p := &domain.Principal{Username: "u", Role: "temp_role", IsActive: true}

	ok, err := env.Gate.Check(ctx, p, "do_things")
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, env.Roles.Delete(ctx, role.ID))

	ok, err = env.Gate.Check(ctx, p, "do_things")
	require.NoError(t, err)
	require.False(t, ok, "deletion takes effect on the next check, not at token expiry")
}

func TestGate_DenyAfterPermissionRemove(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	role := env.seedRole(t, "shrinking", "keep_this", "lose_this")
	p := &domain.Principal{Username: "u", Role: "shrinking", IsActive: true}

	_, err := env.Roles.RemovePermission(ctx, role.ID, "lose_this")
	require.NoError(t, err)

	ok, err := env.Gate.Check(ctx, p, "lose_this")
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = env.Gate.Check(ctx, p, "keep_this")
	require.NoError(t, err)
	require.True(t, ok)
}

// The admin workflow: a non-superuser whose role carries the role-management
// permissions can administer roles, and losing the role ends that ability.
func TestGate_AdminRoleScenario(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	admin := env.seedRole(t, "admin",
		domain.PermCreateRole,
		domain.PermDeleteRole,
		domain.PermAddPermissionToRole,
		domain.PermRemovePermissionFromRole,
	)
	p := &domain.Principal{Username: "ops", Role: "admin", IsActive: true}

	for _, perm := range []string{
		domain.PermCreateRole,
		domain.PermDeleteRole,
		domain.PermAddPermissionToRole,
		domain.PermRemovePermissionFromRole,
	} {
		ok, err := env.Gate.Check(ctx, p, perm)
		require.NoError(t, err)
		require.True(t, ok, perm)
	}

	require.NoError(t, env.Roles.Delete(ctx, admin.ID))

	ok, err := env.Gate.Check(ctx, p, domain.PermCreateRole)
	require.NoError(t, err)
	require.False(t, ok)
}

package domain

import (
	"slices"
	"time"
)

type Role struct {
	ID          string
	Name        string
	Permissions []string // Parsed from space-delimited storage, deduplicated
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasPermission reports membership of perm in the role's permission set.
func (r Role) HasPermission(perm string) bool {
	return slices.Contains(r.Permissions, perm)
}

// Permission names used by the role management API itself. Roles are
// otherwise free-form; these are the ones the service checks internally.
const (
	PermCreateRole               = "create_role"
	PermDeleteRole               = "delete_role"
	PermAddPermissionToRole      = "add_permission_to_role"
	PermRemovePermissionFromRole = "remove_permission_from_role"
)

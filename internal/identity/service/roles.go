package service

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"unicode"

	"github.com/aryamangoenka/User-Management-System/internal/identity/domain"
	"github.com/aryamangoenka/User-Management-System/internal/identity/store"
	"github.com/aryamangoenka/User-Management-System/pkg/idx"
	"github.com/aryamangoenka/User-Management-System/pkg/slogx"
)

var (
	ErrRoleNotFound       = errors.New("role_not_found")
	ErrPermissionNotFound = errors.New("permission_not_found")
	ErrInvalidPermission  = errors.New("invalid_permission")
)

type RolesService struct {
	Store store.Store
}

// GetOrCreate returns the role with the given name, creating it when
// missing. Creation is idempotent: racing callers converge on one row.
func (s *RolesService) GetOrCreate(ctx context.Context, name string) (domain.Role, bool, error) {
	name = strings.TrimSpace(name)

	role, err := s.Store.Roles().GetRoleByName(ctx, name)
	if err == nil {
		return role, false, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return domain.Role{}, false, err
	}

	role = domain.Role{
		ID:   idx.New().String(),
		Name: name,
	}
	if err := s.Store.Roles().CreateRole(ctx, role); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			existing, gerr := s.Store.Roles().GetRoleByName(ctx, name)
			return existing, false, gerr
		}
		return domain.Role{}, false, err
	}

	slogx.FromContext(ctx).Info("role created", slog.String("role", name))
	return role, true, nil
}

// GetRoleByName fetches a role by its unique name.
func (s *RolesService) GetRoleByName(ctx context.Context, name string) (domain.Role, error) {
	role, err := s.Store.Roles().GetRoleByName(ctx, name)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Role{}, ErrRoleNotFound
	}
	return role, err
}

// ListAll returns all roles in the system.
func (s *RolesService) ListAll(ctx context.Context) ([]domain.Role, error) {
	return s.Store.Roles().ListAll(ctx)
}

// Delete removes a role by id. Users still naming the role keep the name;
// permission checks against it deny from the next request on.
func (s *RolesService) Delete(ctx context.Context, roleID string) error {
	err := s.Store.Roles().DeleteRole(ctx, roleID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrRoleNotFound
	}
	if err == nil {
		slogx.FromContext(ctx).Info("role deleted", slog.String("role_id", roleID))
	}
	return err
}

// AddPermission appends a permission to a role's set. Adding an already
// held permission is a no-op, keeping the set deduplicated.
func (s *RolesService) AddPermission(ctx context.Context, roleID, permission string) (domain.Role, error) {
	permission = strings.TrimSpace(permission)
	// Permission sets persist space-delimited; a name with interior
	// whitespace would split into two permissions on the next read.
	if permission == "" || strings.ContainsFunc(permission, unicode.IsSpace) {
		return domain.Role{}, ErrInvalidPermission
	}

	var updated domain.Role
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		role, err := tx.Roles().GetRoleByID(ctx, roleID)
		if err != nil {
			return err
		}
		if role.HasPermission(permission) {
			updated = role
			return nil
		}
		perms := append(slices.Clone(role.Permissions), permission)
		if err := tx.Roles().UpdateRolePermissions(ctx, roleID, perms); err != nil {
			return err
		}
		role.Permissions = perms
		updated = role
		return nil
	})
	if errors.Is(err, store.ErrNotFound) {
		return domain.Role{}, ErrRoleNotFound
	}
	return updated, err
}

// RemovePermission strips a permission from a role's set. Takes effect on
// the next gate check for every principal holding the role.
func (s *RolesService) RemovePermission(ctx context.Context, roleID, permission string) (domain.Role, error) {
	var updated domain.Role
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		role, err := tx.Roles().GetRoleByID(ctx, roleID)
		if err != nil {
			return err
		}
		if !role.HasPermission(permission) {
			return ErrPermissionNotFound
		}
		perms := slices.DeleteFunc(slices.Clone(role.Permissions), func(p string) bool {
			return p == permission
		})
		if err := tx.Roles().UpdateRolePermissions(ctx, roleID, perms); err != nil {
			return err
		}
		role.Permissions = perms
		updated = role
		return nil
	})
	if errors.Is(err, store.ErrNotFound) {
		return domain.Role{}, ErrRoleNotFound
	}
	return updated, err
}

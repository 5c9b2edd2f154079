package service

import (
	"context"
	"errors"

	"github.com/aryamangoenka/User-Management-System/internal/identity/domain"
	"github.com/aryamangoenka/User-Management-System/internal/identity/store"
)

// Gate answers "may this principal perform this action" from live role
// state. There is deliberately no cache: role edits and deletions must take
// effect on the very next check, so every call pays a role lookup.
type Gate struct {
	Store store.Store
}

// Check reports whether p holds permission. Superusers hold everything. A
// role name with no backing row denies; it is not an error, because deleted
// roles are an expected state for principals holding older tokens.
func (g *Gate) Check(ctx context.Context, p *domain.Principal, permission string) (bool, error) {
	if p == nil {
		return false, nil
	}
	if p.IsSuperuser {
		return true, nil
	}
	if p.Role == "" {
		return false, nil
	}

	role, err := g.Store.Roles().GetRoleByName(ctx, p.Role)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	return role.HasPermission(permission), nil
}

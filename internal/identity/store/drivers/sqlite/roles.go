package sqlite

import (
	"context"
	"time"

	"github.com/aryamangoenka/User-Management-System/internal/identity/domain"
)

type rolesRepo struct {
	db dbtx
}

const roleColumns = `id, name, permissions, created_at, updated_at`

func (r *rolesRepo) scanRole(row interface{ Scan(...any) error }) (domain.Role, error) {
	var role domain.Role
	var perms string
	var created, updated int64
	err := row.Scan(&role.ID, &role.Name, &perms, &created, &updated)
	if err != nil {
		return domain.Role{}, mapNotFound(err)
	}
	role.Permissions = splitAndFilter(perms)
	role.CreatedAt = fromUnix(created)
	role.UpdatedAt = fromUnix(updated)
	return role, nil
}

func (r *rolesRepo) GetRoleByID(ctx context.Context, id string) (domain.Role, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+roleColumns+` FROM roles WHERE id = ?`, id)
	return r.scanRole(row)
}

func (r *rolesRepo) GetRoleByName(ctx context.Context, name string) (domain.Role, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+roleColumns+` FROM roles WHERE name = ?`, name)
	return r.scanRole(row)
}

func (r *rolesRepo) ListAll(ctx context.Context) ([]domain.Role, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+roleColumns+` FROM roles ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []domain.Role
	for rows.Next() {
		role, err := r.scanRole(rows)
		if err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

func (r *rolesRepo) CreateRole(ctx context.Context, role domain.Role) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO roles (id, name, permissions, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		role.ID, role.Name, joinPermissions(role.Permissions),
		toUnix(role.CreatedAt), toUnix(now),
	)
	return mapConstraint(err)
}

func (r *rolesRepo) UpdateRolePermissions(ctx context.Context, roleID string, permissions []string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE roles SET permissions = ?, updated_at = ? WHERE id = ?`,
		joinPermissions(permissions), toUnix(time.Now().UTC()), roleID,
	)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *rolesRepo) DeleteRole(ctx context.Context, roleID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM roles WHERE id = ?`, roleID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *rolesRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM roles`).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}

package sqlite

import (
	"context"

	"github.com/aryamangoenka/User-Management-System/internal/identity/domain"
)

type legacyAccountsRepo struct {
	db dbtx
}

const legacyAccountColumns = `id, username, email, role, is_superuser, is_active, created_at`

func (r *legacyAccountsRepo) scanAccount(row interface{ Scan(...any) error }) (domain.LegacyAccount, error) {
	var a domain.LegacyAccount
	var created int64
	err := row.Scan(&a.ID, &a.Username, &a.Email, &a.Role, &a.IsSuperuser, &a.IsActive, &created)
	if err != nil {
		return domain.LegacyAccount{}, mapNotFound(err)
	}
	a.CreatedAt = fromUnix(created)
	return a, nil
}

func (r *legacyAccountsRepo) GetAccountByID(ctx context.Context, id string) (domain.LegacyAccount, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+legacyAccountColumns+` FROM legacy_accounts WHERE id = ?`, id)
	return r.scanAccount(row)
}

func (r *legacyAccountsRepo) GetAccountByUsername(ctx context.Context, username string) (domain.LegacyAccount, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+legacyAccountColumns+` FROM legacy_accounts WHERE username = ?`, username)
	return r.scanAccount(row)
}

func (r *legacyAccountsRepo) CreateAccount(ctx context.Context, a domain.LegacyAccount) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO legacy_accounts (id, username, email, role, is_superuser, is_active, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.Username, a.Email, a.Role, a.IsSuperuser, a.IsActive, toUnix(a.CreatedAt),
	)
	return mapConstraint(err)
}

func (r *legacyAccountsRepo) SetAccountActive(ctx context.Context, accountID string, active bool) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE legacy_accounts SET is_active = ? WHERE id = ?`, active, accountID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *legacyAccountsRepo) DeleteAccount(ctx context.Context, accountID string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM legacy_accounts WHERE id = ?`, accountID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

type legacySessionsRepo struct {
	db dbtx
}

func (r *legacySessionsRepo) CreateSession(ctx context.Context, s domain.LegacySession) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO legacy_sessions (token_hash, account_id, created_at)
		 VALUES (?, ?, ?)`,
		s.TokenHash, s.AccountID, toUnix(s.CreatedAt),
	)
	return mapConstraint(err)
}

func (r *legacySessionsRepo) GetSessionByTokenHash(ctx context.Context, tokenHash string) (domain.LegacySession, error) {
	var s domain.LegacySession
	var created int64
	err := r.db.QueryRowContext(ctx,
		`SELECT token_hash, account_id, created_at FROM legacy_sessions WHERE token_hash = ?`,
		tokenHash,
	).Scan(&s.TokenHash, &s.AccountID, &created)
	if err != nil {
		return domain.LegacySession{}, mapNotFound(err)
	}
	s.CreatedAt = fromUnix(created)
	return s, nil
}

func (r *legacySessionsRepo) DeleteSession(ctx context.Context, tokenHash string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM legacy_sessions WHERE token_hash = ?`, tokenHash)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *legacySessionsRepo) DeleteAccountSessions(ctx context.Context, accountID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM legacy_sessions WHERE account_id = ?`, accountID)
	return err
}

package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/aryamangoenka/User-Management-System/internal/identity/domain"
	"github.com/aryamangoenka/User-Management-System/internal/identity/store"
	"github.com/aryamangoenka/User-Management-System/pkg/cryptox"
	"github.com/aryamangoenka/User-Management-System/pkg/idx"
	"github.com/aryamangoenka/User-Management-System/pkg/slogx"
)

var (
	ErrUsernameTaken = errors.New("username_taken")
	ErrEmailTaken    = errors.New("email_taken")
	ErrUserNotFound  = errors.New("user_not_found")
)

type UserService struct {
	Store store.Store
}

// Register creates a local account with the default role and an argon2id
// password hash. Duplicate username and duplicate email are reported as
// distinct errors so the API can name the offending field.
func (s *UserService) Register(ctx context.Context, username, email, password string) (domain.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if _, err := s.Store.Users().GetUserByUsername(ctx, username); err == nil {
		return domain.User{}, ErrUsernameTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return domain.User{}, err
	}
	if _, err := s.Store.Users().GetUserByEmail(ctx, email); err == nil {
		return domain.User{}, ErrEmailTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return domain.User{}, err
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, err
	}

	user := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.DefaultRole,
		IsActive:     true,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			// Lost a race with a concurrent register.
			return domain.User{}, ErrUsernameTaken
		}
		return domain.User{}, err
	}

	slogx.FromContext(ctx).Info("user registered",
		slog.String("user_id", user.ID),
		slog.String("username", user.Username),
	)
	return user, nil
}

// GetUserByID fetches a user by id.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, ErrUserNotFound
	}
	return u, err
}

// ListUsers returns all users in creation order.
func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.Store.Users().ListUsers(ctx)
}

// UpdateFlags mutates a user's role name, active flag and superuser flag.
func (s *UserService) UpdateFlags(ctx context.Context, userID, role string, isActive, isSuperuser bool) (domain.User, error) {
	if role == "" {
		role = domain.DefaultRole
	}
	if err := s.Store.Users().UpdateUserFlags(ctx, userID, role, isActive, isSuperuser); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return s.Store.Users().GetUserByID(ctx, userID)
}

// UpdateEmail changes a user's email after a uniqueness check. Usernames are
// immutable: the username is the token subject, so a rename would orphan
// every outstanding token.
func (s *UserService) UpdateEmail(ctx context.Context, userID, email string) (domain.User, error) {
	email = strings.TrimSpace(email)

	if other, err := s.Store.Users().GetUserByEmail(ctx, email); err == nil {
		if other.ID != userID {
			return domain.User{}, ErrEmailTaken
		}
		return other, nil
	} else if !errors.Is(err, store.ErrNotFound) {
		return domain.User{}, err
	}

	if err := s.Store.Users().UpdateUserProfile(ctx, userID, email); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return s.Store.Users().GetUserByID(ctx, userID)
}

// ChangePassword swaps a user's password hash after verifying the current
// password. Outstanding tokens stay valid; only the credential changes.
func (s *UserService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := cryptox.VerifyPassword(currentPassword, user.PasswordHash); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.Store.Users().UpdatePasswordHash(ctx, userID, hash); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	slogx.FromContext(ctx).Info("password changed", slog.String("user_id", userID))
	return nil
}

// DeleteUser removes a local account.
func (s *UserService) DeleteUser(ctx context.Context, userID string) error {
	err := s.Store.Users().DeleteUser(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}

// SyncFromLegacy upserts a legacy account into the local user table. The
// local record gets a random password because the legacy system keeps
// owning the real credential; superuser status never crosses the bridge.
func (s *UserService) SyncFromLegacy(ctx context.Context, legacyUsername string) (domain.User, bool, error) {
	account, err := s.Store.LegacyAccounts().GetAccountByUsername(ctx, legacyUsername)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, false, ErrUserNotFound
		}
		return domain.User{}, false, err
	}

	existing, err := s.Store.Users().GetUserByUsername(ctx, account.Username)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return domain.User{}, false, err
	}

	password, err := cryptox.GeneratePassword()
	if err != nil {
		return domain.User{}, false, err
	}
	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, false, err
	}

	role := account.Role
	if role == "" {
		role = domain.DefaultRole
	}

	user := domain.User{
		ID:           idx.New().String(),
		Username:     account.Username,
		Email:        account.Email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     account.IsActive,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			existing, gerr := s.Store.Users().GetUserByUsername(ctx, account.Username)
			return existing, false, gerr
		}
		return domain.User{}, false, err
	}

	slogx.FromContext(ctx).Info("legacy account synced",
		slog.String("user_id", user.ID),
		slog.String("username", user.Username),
	)
	return user, true, nil
}

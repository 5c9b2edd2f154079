package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aryamangoenka/User-Management-System/internal/identity/domain"
	"github.com/aryamangoenka/User-Management-System/internal/identity/store"
	"github.com/aryamangoenka/User-Management-System/pkg/cryptox"
	"github.com/aryamangoenka/User-Management-System/pkg/jwtx"
	"github.com/aryamangoenka/User-Management-System/pkg/slogx"
)

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
)

// TokenService issues native access tokens for local accounts.
type TokenService struct {
	Store     store.Store
	Codec     jwtx.Codec
	AccessTTL time.Duration
}

// TTL is the effective access-token lifetime.
func (s *TokenService) TTL() time.Duration {
	if s.AccessTTL <= 0 {
		return jwtx.DefaultAccessTokenTTL
	}
	return s.AccessTTL
}

// Login verifies a username/password pair and issues an access token.
// Unknown username, wrong password and disabled account all collapse into
// ErrInvalidCredentials; the distinction goes to logs only.
func (s *TokenService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	l := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Burn comparable time so username probing gains nothing.
			_ = cryptox.VerifyPassword(password, cryptox.DummyHash)
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		l.Info("password verification failed", slog.String("username", username))
		return "", nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		l.Info("login rejected for inactive account", slog.String("username", username))
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.mint(user, time.Now())
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

// Refresh re-mints an access token for an already-authenticated principal.
// The subject is re-resolved so role or flag changes land in the new token.
func (s *TokenService) Refresh(ctx context.Context, p *domain.Principal) (string, error) {
	if p == nil {
		return "", ErrUnauthenticated
	}

	user, err := s.Store.Users().GetUserByUsername(ctx, p.Username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrUnauthenticated
		}
		return "", err
	}
	if !user.IsActive {
		return "", ErrInactiveAccount
	}

	return s.mint(user, time.Now())
}

func (s *TokenService) mint(user domain.User, now time.Time) (string, error) {
	claims := jwtx.NewClaims(
		user.Username,
		user.ID,
		user.Email,
		user.Role,
		user.IsSuperuser,
		"", // native tokens carry no source marker
		s.Codec.Issuer(),
		s.TTL(),
		now,
	)
	return s.Codec.Sign(claims)
}

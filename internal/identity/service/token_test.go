package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenService_Login(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user := env.seedUser(t, "login_user", "a very long password")

	token, got, err := env.Tokens.Login(ctx, "login_user", "a very long password")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, user.ID, got.ID)

	claims, err := env.Codec.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "login_user", claims.Subject)
	require.Equal(t, user.ID, claims.UserID)
	require.False(t, claims.IsLegacySourced())
}

func TestTokenService_Login_Failures(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.seedUser(t, "fail_user", "the right password")

	_, _, err := env.Tokens.Login(ctx, "fail_user", "the wrong password")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = env.Tokens.Login(ctx, "no_such_user", "whatever")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestTokenService_Login_InactiveAccount(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user := env.seedUser(t, "sleepy", "sleepy-password")
	_, err := env.Users.UpdateFlags(ctx, user.ID, user.Role, false, false)
	require.NoError(t, err)

	_, _, err = env.Tokens.Login(ctx, "sleepy", "sleepy-password")
	require.ErrorIs(t, err, ErrInvalidCredentials,
		"inactive must be indistinguishable from a bad password")
}

func TestTokenService_Refresh_PicksUpRoleChange(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user := env.seedUser(t, "refresher", "refresher-password")
	token, _, err := env.Tokens.Login(ctx, "refresher", "refresher-password")
	require.NoError(t, err)

	p, err := env.Authn.Authenticate(ctx, token)
	require.NoError(t, err)

	_, err = env.Users.UpdateFlags(ctx, user.ID, "manager", true, false)
	require.NoError(t, err)

	refreshed, err := env.Tokens.Refresh(ctx, p)
	require.NoError(t, err)

	claims, err := env.Codec.Verify(refreshed)
	require.NoError(t, err)
	require.Equal(t, "manager", claims.Role)
}

func TestTokenService_Refresh_InactiveAccount(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user := env.seedUser(t, "expired_ref", "some-password")
	token, _, err := env.Tokens.Login(ctx, "expired_ref", "some-password")
	require.NoError(t, err)

	p, err := env.Authn.Authenticate(ctx, token)
	require.NoError(t, err)

	_, err = env.Users.UpdateFlags(ctx, user.ID, user.Role, false, false)
	require.NoError(t, err)

	_, err = env.Tokens.Refresh(ctx, p)
	require.ErrorIs(t, err, ErrInactiveAccount)
}

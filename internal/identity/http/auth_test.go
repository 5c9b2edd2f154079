package http

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/aryamangoenka/User-Management-System/pkg/identitysdk"

	"github.com/stretchr/testify/require"
)

func apiErr(t *testing.T, err error) *identitysdk.APIError {
	t.Helper()
	var apiError *identitysdk.APIError
	require.True(t, errors.As(err, &apiError), "expected APIError, got %v", err)
	return apiError
}

func TestRegisterAndLogin(t *testing.T) {
	srv := newTestServer(t, true)
	client := identitysdk.NewClient(srv.URL)
	ctx := context.Background()

	user, err := client.Register(ctx, identitysdk.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "a long enough password",
	})
	require.NoError(t, err)
	require.Equal(t, "alice", user.Username)
	require.Equal(t, "user", user.Role)
	require.True(t, user.IsActive)
	require.False(t, user.IsSuperuser)

	tok, err := client.Login(ctx, "alice", "a long enough password")
	require.NoError(t, err)
	require.NotEmpty(t, tok.AccessToken)
	require.Equal(t, "bearer", tok.TokenType)
	require.Equal(t, 1800, tok.ExpiresIn)

	me, err := client.Me(ctx, tok.AccessToken)
	require.NoError(t, err)
	require.Equal(t, user.ID, me.ID)
	require.Equal(t, "native", me.Source)
}

func TestRegister_Conflicts(t *testing.T) {
	srv := newTestServer(t, true)
	client := identitysdk.NewClient(srv.URL)
	ctx := context.Background()

	_, err := client.Register(ctx, identitysdk.RegisterRequest{
		Username: "bob", Email: "bob@example.com", Password: "bobs password",
	})
	require.NoError(t, err)

	_, err = client.Register(ctx, identitysdk.RegisterRequest{
		Username: "bob", Email: "bob2@example.com", Password: "bobs password",
	})
	e := apiErr(t, err)
	require.Equal(t, http.StatusConflict, e.StatusCode)
	require.Equal(t, identitysdk.ErrorCodeConflict, e.Code)

	_, err = client.Register(ctx, identitysdk.RegisterRequest{
		Username: "bob2", Email: "bob@example.com", Password: "bobs password",
	})
	e = apiErr(t, err)
	require.Equal(t, http.StatusConflict, e.StatusCode)
}

func TestRegister_MissingFields(t *testing.T) {
	srv := newTestServer(t, true)
	client := identitysdk.NewClient(srv.URL)

	_, err := client.Register(context.Background(), identitysdk.RegisterRequest{Username: "x"})
	e := apiErr(t, err)
	require.Equal(t, http.StatusBadRequest, e.StatusCode)
}

func TestLogin_UniformFailure(t *testing.T) {
	srv := newTestServer(t, true)
	client := identitysdk.NewClient(srv.URL)
	ctx := context.Background()

	srv.seedUserWithFlags(t, "carol", "carols password", "user", false)

	// Wrong password and unknown username produce identical errors.
	_, err := client.Login(ctx, "carol", "wrong password")
	wrongPass := apiErr(t, err)

	_, err = client.Login(ctx, "nobody", "wrong password")
	unknownUser := apiErr(t, err)

	require.Equal(t, wrongPass.StatusCode, unknownUser.StatusCode)
	require.Equal(t, wrongPass.Code, unknownUser.Code)
	require.Equal(t, wrongPass.Description, unknownUser.Description)
	require.Equal(t, http.StatusUnauthorized, wrongPass.StatusCode)
}

func TestLoginJSON(t *testing.T) {
	srv := newTestServer(t, true)
	client := identitysdk.NewClient(srv.URL)
	ctx := context.Background()

	srv.seedUserWithFlags(t, "dave", "daves password", "user", false)

	tok, err := client.LoginJSON(ctx, "dave", "daves password")
	require.NoError(t, err)
	require.NotEmpty(t, tok.AccessToken)
}

func TestMe_Unauthorized(t *testing.T) {
	srv := newTestServer(t, true)
	client := identitysdk.NewClient(srv.URL)
	ctx := context.Background()

	_, err := client.Me(ctx, "")
	e := apiErr(t, err)
	require.Equal(t, http.StatusUnauthorized, e.StatusCode)

	_, err = client.Me(ctx, "garbage-token")
	e = apiErr(t, err)
	require.Equal(t, http.StatusUnauthorized, e.StatusCode)
}

func TestMe_InactiveAccount(t *testing.T) {
	srv := newTestServer(t, true)
	client := identitysdk.NewClient(srv.URL)
	ctx := context.Background()

	user, token := srv.seedUserWithFlags(t, "erin", "erins password", "user", false)
	require.NoError(t, srv.Store.Users().UpdateUserFlags(ctx, user.ID, user.Role, false, false))

	_, err := client.Me(ctx, token)
	e := apiErr(t, err)
	require.Equal(t, http.StatusForbidden, e.StatusCode)
	require.Equal(t, identitysdk.ErrorCodeInactiveAccount, e.Code)
}

func TestProfileUpdate(t *testing.T) {
	srv := newTestServer(t, true)
	client := identitysdk.NewClient(srv.URL)
	ctx := context.Background()

	_, token := srv.seedUserWithFlags(t, "grace", "graces password", "user", false)

	updated, err := client.UpdateProfile(ctx, token, "grace.new@example.com")
	require.NoError(t, err)
	require.Equal(t, "grace.new@example.com", updated.Email)
	require.Equal(t, "grace", updated.Username)

	me, err := client.Me(ctx, token)
	require.NoError(t, err)
	require.Equal(t, "grace.new@example.com", me.Email)
}

func TestProfileUpdate_Conflicts(t *testing.T) {
	srv := newTestServer(t, true)
	client := identitysdk.NewClient(srv.URL)
	ctx := context.Background()

	srv.seedUserWithFlags(t, "heidi", "heidis password", "user", false)
	_, token := srv.seedUserWithFlags(t, "ivan", "ivans password", "user", false)

	_, err := client.UpdateProfile(ctx, token, "heidi@example.com")
	e := apiErr(t, err)
	require.Equal(t, http.StatusConflict, e.StatusCode)

	_, err = client.UpdateProfile(ctx, token, "   ")
	e = apiErr(t, err)
	require.Equal(t, http.StatusBadRequest, e.StatusCode)
}

func TestProfileUpdate_BridgedPrincipal(t *testing.T) {
	srv := newTestServer(t, true)
	client := identitysdk.NewClient(srv.URL)
	ctx := context.Background()

	// A bridged principal has no local row to update.
	_, legacyToken := srv.seedLegacyAccount(t, "visiting", true)
	tok, err := client.LegacyLogin(ctx, legacyToken)
	require.NoError(t, err)

	_, err = client.UpdateProfile(ctx, tok.AccessToken, "visiting@example.com")
	e := apiErr(t, err)
	require.Equal(t, http.StatusNotFound, e.StatusCode)
}

func TestChangePassword(t *testing.T) {
	srv := newTestServer(t, true)
	client := identitysdk.NewClient(srv.URL)
	ctx := context.Background()

	_, token := srv.seedUserWithFlags(t, "judy", "judys password", "user", false)

	require.NoError(t, client.ChangePassword(ctx, token, "judys password", "judys new password"))

	// Old credential dead, new one live; outstanding tokens unaffected.
	_, err := client.Login(ctx, "judy", "judys password")
	e := apiErr(t, err)
	require.Equal(t, http.StatusUnauthorized, e.StatusCode)

	_, err = client.Login(ctx, "judy", "judys new password")
	require.NoError(t, err)

	_, err = client.Me(ctx, token)
	require.NoError(t, err)
}

func TestChangePassword_WrongCurrent(t *testing.T) {
	srv := newTestServer(t, true)
	client := identitysdk.NewClient(srv.URL)
	ctx := context.Background()

	_, token := srv.seedUserWithFlags(t, "kate", "kates password", "user", false)

	err := client.ChangePassword(ctx, token, "wrong password", "next password")
	e := apiErr(t, err)
	require.Equal(t, http.StatusBadRequest, e.StatusCode)

	err = client.ChangePassword(ctx, token, "", "")
	e = apiErr(t, err)
	require.Equal(t, http.StatusBadRequest, e.StatusCode)

	// The credential is untouched after the failed attempts.
	_, err = client.Login(ctx, "kate", "kates password")
	require.NoError(t, err)
}

func TestRefresh(t *testing.T) {
	srv := newTestServer(t, true)
	client := identitysdk.NewClient(srv.URL)
	ctx := context.Background()

	user, token := srv.seedUserWithFlags(t, "frank", "franks password", "user", false)

	// Change the role, refresh, and the new token should carry it.
	require.NoError(t, srv.Store.Users().UpdateUserFlags(ctx, user.ID, "manager", true, false))

	refreshed, err := client.Refresh(ctx, token)
	require.NoError(t, err)

	claims, err := srv.Codec.Verify(refreshed.AccessToken)
	require.NoError(t, err)
	require.Equal(t, "manager", claims.Role)
}

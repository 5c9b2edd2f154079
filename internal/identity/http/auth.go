package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/aryamangoenka/User-Management-System/internal/identity/domain"
	"github.com/aryamangoenka/User-Management-System/internal/identity/service"
	"github.com/aryamangoenka/User-Management-System/pkg/httpx"
	"github.com/aryamangoenka/User-Management-System/pkg/identitysdk"
	"github.com/aryamangoenka/User-Management-System/pkg/slogx"
)

type RegisterHandler struct {
	UserService *service.UserService
}

// ServeHTTP handles account registration
//
//	@Summary		Register a new user
//	@Description	Creates a local account with the default role. Username and email must be unique.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		identitysdk.RegisterRequest	true	"Account details"
//	@Success		201		{object}	identitysdk.UserInfo		"Created account"
//	@Failure		400		{object}	identitysdk.ErrorResponse	"Malformed request"
//	@Failure		409		{object}	identitysdk.ErrorResponse	"Username or email taken"
//	@Failure		500		{object}	identitysdk.ErrorResponse	"Internal server error"
//	@Router			/v1/auth/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req identitysdk.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		identitysdk.ErrInvalidRequest.WriteError(w)
		return
	}
	if strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		identitysdk.ErrInvalidRequest.WithDescription("username, email and password are required").WriteError(w)
		return
	}

	user, err := h.UserService.Register(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameTaken):
			identitysdk.ErrConflict.WithDescription("username already registered").WriteError(w)
		case errors.Is(err, service.ErrEmailTaken):
			identitysdk.ErrConflict.WithDescription("email already registered").WriteError(w)
		default:
			log.Error("register failed", "err", err)
			identitysdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, userInfo(user))
}

type LoginHandler struct {
	TokenService *service.TokenService
}

// ServeHTTP handles form-encoded login
//
//	@Summary		Log in (form)
//	@Description	OAuth2 password-style login. Accepts username and password as form fields and returns a bearer token.
//	@Tags			Auth
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			username	formData	string						true	"Username"
//	@Param			password	formData	string						true	"Password"
//	@Success		200			{object}	identitysdk.TokenResponse	"Access token"
//	@Failure		401			{object}	identitysdk.ErrorResponse	"Invalid credentials"
//	@Failure		500			{object}	identitysdk.ErrorResponse	"Internal server error"
//	@Router			/v1/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		identitysdk.ErrInvalidRequest.WriteError(w)
		return
	}
	h.login(w, r, r.PostFormValue("username"), r.PostFormValue("password"))
}

func (h *LoginHandler) login(w http.ResponseWriter, r *http.Request, username, password string) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	token, _, err := h.TokenService.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			identitysdk.ErrUnauthorized.WithDescription("incorrect username or password").WriteError(w)
			return
		}
		log.Error("login failed", "err", err)
		identitysdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, identitysdk.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int(h.TokenService.TTL() / time.Second),
	})
}

type LoginJSONHandler struct {
	TokenService *service.TokenService
}

// ServeHTTP handles JSON login
//
//	@Summary		Log in (JSON)
//	@Description	Same as the form login, but accepts a JSON body.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		identitysdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	identitysdk.TokenResponse	"Access token"
//	@Failure		401		{object}	identitysdk.ErrorResponse	"Invalid credentials"
//	@Failure		500		{object}	identitysdk.ErrorResponse	"Internal server error"
//	@Router			/v1/auth/login-json [post].
func (h *LoginJSONHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req identitysdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		identitysdk.ErrInvalidRequest.WriteError(w)
		return
	}
	inner := &LoginHandler{TokenService: h.TokenService}
	inner.login(w, r, req.Username, req.Password)
}

type MeHandler struct{}

// ServeHTTP returns the authenticated principal
//
//	@Summary		Current user
//	@Description	Returns the record of whoever the bearer token authenticates, regardless of which system issued the credential.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	identitysdk.UserInfo		"Authenticated user"
//	@Failure		401	{object}	identitysdk.ErrorResponse	"Unauthorized"
//	@Failure		403	{object}	identitysdk.ErrorResponse	"Inactive account"
//	@Security		BearerAuth
//	@Router			/v1/auth/me [get].
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p := PrincipalFromCtx(r.Context())
	if p == nil {
		identitysdk.ErrUnauthorized.WriteError(w)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, principalInfo(p))
}

type ProfileHandler struct {
	UserService *service.UserService
}

// ServeHTTP updates the authenticated user's own profile
//
//	@Summary		Update own profile
//	@Description	Changes the authenticated user's email. Usernames are immutable because they are the token subject. Only local accounts have a profile; bridged principals get 404.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		identitysdk.UpdateProfileRequest	true	"New email"
//	@Success		200		{object}	identitysdk.UserInfo				"Updated user"
//	@Failure		400		{object}	identitysdk.ErrorResponse			"Malformed request"
//	@Failure		401		{object}	identitysdk.ErrorResponse			"Unauthorized"
//	@Failure		404		{object}	identitysdk.ErrorResponse			"No local account"
//	@Failure		409		{object}	identitysdk.ErrorResponse			"Email taken"
//	@Security		BearerAuth
//	@Router			/v1/auth/me [patch].
func (h *ProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	p := PrincipalFromCtx(ctx)
	if p == nil {
		identitysdk.ErrUnauthorized.WriteError(w)
		return
	}

	var req identitysdk.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		identitysdk.ErrInvalidRequest.WriteError(w)
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		identitysdk.ErrInvalidRequest.WithDescription("email is required").WriteError(w)
		return
	}

	user, err := h.UserService.UpdateEmail(ctx, p.ID, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			identitysdk.ErrConflict.WithDescription("email already registered").WriteError(w)
		case errors.Is(err, service.ErrUserNotFound):
			identitysdk.ErrNotFound.WithDescription("no local account for this principal").WriteError(w)
		default:
			log.Error("profile update failed", "err", err)
			identitysdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, userInfo(user))
}

type PasswordHandler struct {
	UserService *service.UserService
}

// ServeHTTP changes the authenticated user's password
//
//	@Summary		Change password
//	@Description	Swaps the authenticated user's password after verifying the current one. Outstanding tokens stay valid.
//	@Tags			Auth
//	@Accept			json
//	@Success		204	"Password changed"
//	@Failure		400	{object}	identitysdk.ErrorResponse	"Malformed request or wrong current password"
//	@Failure		401	{object}	identitysdk.ErrorResponse	"Unauthorized"
//	@Failure		404	{object}	identitysdk.ErrorResponse	"No local account"
//	@Security		BearerAuth
//	@Router			/v1/auth/me/password [put].
func (h *PasswordHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	p := PrincipalFromCtx(ctx)
	if p == nil {
		identitysdk.ErrUnauthorized.WriteError(w)
		return
	}

	var req identitysdk.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		identitysdk.ErrInvalidRequest.WriteError(w)
		return
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		identitysdk.ErrInvalidRequest.WithDescription("current_password and new_password are required").WriteError(w)
		return
	}

	if err := h.UserService.ChangePassword(ctx, p.ID, req.CurrentPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			identitysdk.ErrInvalidRequest.WithDescription("current password is incorrect").WriteError(w)
		case errors.Is(err, service.ErrUserNotFound):
			identitysdk.ErrNotFound.WithDescription("no local account for this principal").WriteError(w)
		default:
			log.Error("password change failed", "err", err)
			identitysdk.ErrServerError.WriteError(w)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type RefreshHandler struct {
	TokenService *service.TokenService
}

// ServeHTTP re-mints a token for the authenticated principal
//
//	@Summary		Refresh token
//	@Description	Issues a fresh access token for the current principal, picking up any role or flag changes since the old one.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	identitysdk.TokenResponse	"New access token"
//	@Failure		401	{object}	identitysdk.ErrorResponse	"Unauthorized"
//	@Failure		403	{object}	identitysdk.ErrorResponse	"Inactive account"
//	@Security		BearerAuth
//	@Router			/v1/auth/refresh [post].
func (h *RefreshHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	token, err := h.TokenService.Refresh(ctx, PrincipalFromCtx(ctx))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnauthenticated):
			identitysdk.ErrUnauthorized.WriteError(w)
		case errors.Is(err, service.ErrInactiveAccount):
			identitysdk.ErrInactiveAccount.WriteError(w)
		default:
			log.Error("refresh failed", "err", err)
			identitysdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, identitysdk.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int(h.TokenService.TTL() / time.Second),
	})
}

func userInfo(u domain.User) identitysdk.UserInfo {
	return identitysdk.UserInfo{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		Role:        u.Role,
		IsSuperuser: u.IsSuperuser,
		IsActive:    u.IsActive,
	}
}

func principalInfo(p *domain.Principal) identitysdk.UserInfo {
	return identitysdk.UserInfo{
		ID:          p.ID,
		Username:    p.Username,
		Email:       p.Email,
		Role:        p.Role,
		IsSuperuser: p.IsSuperuser,
		IsActive:    p.IsActive,
		Source:      string(p.Source),
	}
}

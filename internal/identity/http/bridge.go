package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/aryamangoenka/User-Management-System/internal/identity/service"
	"github.com/aryamangoenka/User-Management-System/pkg/httpx"
	"github.com/aryamangoenka/User-Management-System/pkg/identitysdk"
	"github.com/aryamangoenka/User-Management-System/pkg/slogx"
)

type LegacyLoginHandler struct {
	Bridge *service.Bridge
}

// ServeHTTP exchanges a legacy session token for a unified bearer token
//
//	@Summary		Legacy login
//	@Description	Validates an opaque session token issued by the legacy system and mints a bearer token usable against this API. The minted token is re-validated against the live legacy account on every use.
//	@Tags			Bridge
//	@Accept			json
//	@Produce		json
//	@Param			request	body		identitysdk.LegacyLoginRequest	true	"Opaque legacy session token"
//	@Success		200		{object}	identitysdk.TokenResponse		"Unified access token"
//	@Failure		401		{object}	identitysdk.ErrorResponse		"Invalid legacy token"
//	@Failure		500		{object}	identitysdk.ErrorResponse		"Internal server error"
//	@Router			/v1/auth/legacy/login [post].
func (h *LegacyLoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req identitysdk.LegacyLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		identitysdk.ErrInvalidRequest.WriteError(w)
		return
	}

	p, err := h.Bridge.ValidateLegacy(ctx, strings.TrimSpace(req.Token))
	if err != nil {
		log.Error("legacy validation store fault", "err", err)
		identitysdk.ErrServerError.WriteError(w)
		return
	}
	if p == nil {
		// Unknown token, revoked session and disabled account are all the
		// same answer.
		identitysdk.ErrUnauthorized.WriteError(w)
		return
	}

	token, err := h.Bridge.MintUnified(ctx, p)
	if err != nil {
		log.Error("unified mint failed", "err", err)
		identitysdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, identitysdk.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int(h.Bridge.TTL() / time.Second),
	})
}

type LegacySyncHandler struct {
	UserService *service.UserService
}

// ServeHTTP copies a legacy account into the local user table
//
//	@Summary		Sync legacy account
//	@Description	Upserts a legacy account into the local user table. The local record gets a random password; the legacy system keeps owning the real credential. Superuser only.
//	@Tags			Bridge
//	@Accept			json
//	@Produce		json
//	@Param			request	body		identitysdk.LegacySyncRequest	true	"Legacy username"
//	@Success		200		{object}	identitysdk.LegacySyncResponse	"Synced user"
//	@Failure		401		{object}	identitysdk.ErrorResponse		"Unauthorized"
//	@Failure		403		{object}	identitysdk.ErrorResponse		"Not a superuser"
//	@Failure		404		{object}	identitysdk.ErrorResponse		"No such legacy account"
//	@Failure		500		{object}	identitysdk.ErrorResponse		"Internal server error"
//	@Security		BearerAuth
//	@Router			/v1/auth/legacy/sync [post].
func (h *LegacySyncHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req identitysdk.LegacySyncRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		identitysdk.ErrInvalidRequest.WriteError(w)
		return
	}
	if strings.TrimSpace(req.Username) == "" {
		identitysdk.ErrInvalidRequest.WithDescription("username is required").WriteError(w)
		return
	}

	user, created, err := h.UserService.SyncFromLegacy(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			identitysdk.ErrNotFound.WithDescription("no such legacy account").WriteError(w)
			return
		}
		log.Error("legacy sync failed", "err", err)
		identitysdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, identitysdk.LegacySyncResponse{
		User:    userInfo(user),
		Created: created,
	})
}

type LegacyStatusHandler struct {
	// Enabled mirrors the startup decision; the bridge is wired or it isn't,
	// never probed at request time.
	Enabled bool
}

// ServeHTTP reports bridge availability
//
//	@Summary		Bridge status
//	@Description	Reports whether cross-system authentication is enabled and which endpoints serve it.
//	@Tags			Bridge
//	@Produce		json
//	@Success		200	{object}	identitysdk.BridgeStatusResponse	"Bridge status"
//	@Router			/v1/auth/legacy/status [get].
func (h *LegacyStatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := identitysdk.BridgeStatusResponse{Enabled: h.Enabled}
	if h.Enabled {
		resp.Endpoints = []string{
			"/v1/auth/legacy/login",
			"/v1/auth/legacy/sync",
		}
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

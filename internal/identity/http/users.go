package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aryamangoenka/User-Management-System/internal/identity/service"
	"github.com/aryamangoenka/User-Management-System/pkg/httpx"
	"github.com/aryamangoenka/User-Management-System/pkg/identitysdk"
	"github.com/aryamangoenka/User-Management-System/pkg/slogx"
)

type UsersHandler struct {
	UserService *service.UserService
}

// HandleList lists all users
//
//	@Summary		List users
//	@Description	Returns all local user records. Superuser only.
//	@Tags			Users
//	@Produce		json
//	@Success		200	{object}	identitysdk.ListUsersResponse	"All users"
//	@Failure		401	{object}	identitysdk.ErrorResponse		"Unauthorized"
//	@Failure		403	{object}	identitysdk.ErrorResponse		"Not a superuser"
//	@Security		BearerAuth
//	@Router			/v1/users [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.UserService.ListUsers(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("user list failed", "err", err)
		identitysdk.ErrServerError.WriteError(w)
		return
	}

	resp := identitysdk.ListUsersResponse{Users: make([]identitysdk.UserInfo, len(users))}
	for i, u := range users {
		resp.Users[i] = userInfo(u)
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleGet fetches one user by id
//
//	@Summary		Get user
//	@Description	Returns a single user record by id. Superuser only.
//	@Tags			Users
//	@Produce		json
//	@Param			id	path		string						true	"User id"
//	@Success		200	{object}	identitysdk.UserInfo		"User"
//	@Failure		401	{object}	identitysdk.ErrorResponse	"Unauthorized"
//	@Failure		403	{object}	identitysdk.ErrorResponse	"Not a superuser"
//	@Failure		404	{object}	identitysdk.ErrorResponse	"No such user"
//	@Security		BearerAuth
//	@Router			/v1/users/{id} [get].
func (h *UsersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := h.UserService.GetUserByID(ctx, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			identitysdk.ErrNotFound.WithDescription("no such user").WriteError(w)
			return
		}
		slogx.FromContext(ctx).Error("user get failed", "err", err)
		identitysdk.ErrServerError.WriteError(w)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, userInfo(user))
}

// HandlePatch mutates admin-controlled user fields
//
//	@Summary		Update user
//	@Description	Mutates email, role, active flag and superuser flag. Omitted fields keep their value. Superuser only.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"User id"
//	@Param			request	body		identitysdk.UpdateUserRequest	true	"Fields to change"
//	@Success		200		{object}	identitysdk.UserInfo		"Updated user"
//	@Failure		401		{object}	identitysdk.ErrorResponse	"Unauthorized"
//	@Failure		403		{object}	identitysdk.ErrorResponse	"Not a superuser"
//	@Failure		404		{object}	identitysdk.ErrorResponse	"No such user"
//	@Failure		409		{object}	identitysdk.ErrorResponse	"Email taken"
//	@Security		BearerAuth
//	@Router			/v1/users/{id} [patch].
func (h *UsersHandler) HandlePatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req identitysdk.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		identitysdk.ErrInvalidRequest.WriteError(w)
		return
	}

	current, err := h.UserService.GetUserByID(ctx, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			identitysdk.ErrNotFound.WithDescription("no such user").WriteError(w)
			return
		}
		log.Error("user fetch failed", "err", err)
		identitysdk.ErrServerError.WriteError(w)
		return
	}

	if req.Email != nil {
		if _, err := h.UserService.UpdateEmail(ctx, current.ID, *req.Email); err != nil {
			if errors.Is(err, service.ErrEmailTaken) {
				identitysdk.ErrConflict.WithDescription("email already registered").WriteError(w)
				return
			}
			log.Error("user email update failed", "err", err)
			identitysdk.ErrServerError.WriteError(w)
			return
		}
	}

	role := current.Role
	if req.Role != nil {
		role = *req.Role
	}
	isActive := current.IsActive
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	isSuperuser := current.IsSuperuser
	if req.IsSuperuser != nil {
		isSuperuser = *req.IsSuperuser
	}

	updated, err := h.UserService.UpdateFlags(ctx, current.ID, role, isActive, isSuperuser)
	if err != nil {
		log.Error("user update failed", "err", err)
		identitysdk.ErrServerError.WriteError(w)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, userInfo(updated))
}

// HandleDelete removes a user
//
//	@Summary		Delete user
//	@Description	Deletes a local user record. Superuser only.
//	@Tags			Users
//	@Param			id	path	string	true	"User id"
//	@Success		204	"Deleted"
//	@Failure		401	{object}	identitysdk.ErrorResponse	"Unauthorized"
//	@Failure		403	{object}	identitysdk.ErrorResponse	"Not a superuser"
//	@Failure		404	{object}	identitysdk.ErrorResponse	"No such user"
//	@Security		BearerAuth
//	@Router			/v1/users/{id} [delete].
func (h *UsersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.UserService.DeleteUser(ctx, r.PathValue("id")); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			identitysdk.ErrNotFound.WithDescription("no such user").WriteError(w)
			return
		}
		slogx.FromContext(ctx).Error("user delete failed", "err", err)
		identitysdk.ErrServerError.WriteError(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

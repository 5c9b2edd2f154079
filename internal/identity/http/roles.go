package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/aryamangoenka/User-Management-System/internal/identity/domain"
	"github.com/aryamangoenka/User-Management-System/internal/identity/service"
	"github.com/aryamangoenka/User-Management-System/pkg/httpx"
	"github.com/aryamangoenka/User-Management-System/pkg/identitysdk"
	"github.com/aryamangoenka/User-Management-System/pkg/slogx"
)

type RolesHandler struct {
	RolesService *service.RolesService
}

// HandleCreate creates or returns a role by name
//
//	@Summary		Create role
//	@Description	Creates a role with the given name, or returns the existing one. Requires the create_role permission.
//	@Tags			Roles
//	@Accept			json
//	@Produce		json
//	@Param			request	body		identitysdk.CreateRoleRequest	true	"Role name"
//	@Success		200		{object}	identitysdk.RoleInfo			"Existing role"
//	@Success		201		{object}	identitysdk.RoleInfo			"Created role"
//	@Failure		401		{object}	identitysdk.ErrorResponse		"Unauthorized"
//	@Failure		403		{object}	identitysdk.ErrorResponse		"Missing create_role permission"
//	@Failure		500		{object}	identitysdk.ErrorResponse		"Internal server error"
//	@Security		BearerAuth
//	@Router			/v1/roles [post].
func (h *RolesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req identitysdk.CreateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		identitysdk.ErrInvalidRequest.WriteError(w)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		identitysdk.ErrInvalidRequest.WithDescription("role name is required").WriteError(w)
		return
	}

	role, created, err := h.RolesService.GetOrCreate(ctx, req.Name)
	if err != nil {
		log.Error("role create failed", "err", err)
		identitysdk.ErrServerError.WriteError(w)
		return
	}

	code := http.StatusOK
	if created {
		code = http.StatusCreated
	}
	httpx.WriteJSON(w, code, roleInfo(role))
}

// HandleList lists all roles
//
//	@Summary		List roles
//	@Description	Returns all roles with their permission sets.
//	@Tags			Roles
//	@Produce		json
//	@Success		200	{object}	identitysdk.ListRolesResponse	"All roles"
//	@Failure		401	{object}	identitysdk.ErrorResponse		"Unauthorized"
//	@Failure		500	{object}	identitysdk.ErrorResponse		"Internal server error"
//	@Security		BearerAuth
//	@Router			/v1/roles [get].
func (h *RolesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	roles, err := h.RolesService.ListAll(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("role list failed", "err", err)
		identitysdk.ErrServerError.WriteError(w)
		return
	}

	resp := identitysdk.ListRolesResponse{Roles: make([]identitysdk.RoleInfo, len(roles))}
	for i, role := range roles {
		resp.Roles[i] = roleInfo(role)
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleGet fetches one role by name
//
//	@Summary		Get role
//	@Description	Returns a single role by its unique name.
//	@Tags			Roles
//	@Produce		json
//	@Param			name	path		string						true	"Role name"
//	@Success		200		{object}	identitysdk.RoleInfo		"Role"
//	@Failure		401		{object}	identitysdk.ErrorResponse	"Unauthorized"
//	@Failure		404		{object}	identitysdk.ErrorResponse	"No such role"
//	@Security		BearerAuth
//	@Router			/v1/roles/{name} [get].
func (h *RolesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	role, err := h.RolesService.GetRoleByName(ctx, r.PathValue("name"))
	if err != nil {
		if errors.Is(err, service.ErrRoleNotFound) {
			identitysdk.ErrNotFound.WithDescription("no such role").WriteError(w)
			return
		}
		slogx.FromContext(ctx).Error("role get failed", "err", err)
		identitysdk.ErrServerError.WriteError(w)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, roleInfo(role))
}

// HandleDelete removes a role by id
//
//	@Summary		Delete role
//	@Description	Deletes a role. Principals still naming it are denied on their next permission check. Requires the delete_role permission.
//	@Tags			Roles
//	@Param			id	path	string	true	"Role id"
//	@Success		204	"Deleted"
//	@Failure		401	{object}	identitysdk.ErrorResponse	"Unauthorized"
//	@Failure		403	{object}	identitysdk.ErrorResponse	"Missing delete_role permission"
//	@Failure		404	{object}	identitysdk.ErrorResponse	"No such role"
//	@Security		BearerAuth
//	@Router			/v1/roles/{id} [delete].
func (h *RolesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.RolesService.Delete(ctx, r.PathValue("id")); err != nil {
		if errors.Is(err, service.ErrRoleNotFound) {
			identitysdk.ErrNotFound.WithDescription("no such role").WriteError(w)
			return
		}
		slogx.FromContext(ctx).Error("role delete failed", "err", err)
		identitysdk.ErrServerError.WriteError(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleAddPermission appends a permission to a role
//
//	@Summary		Add permission
//	@Description	Appends a permission to the role's set. Takes effect on the next check for every principal holding the role. Requires the add_permission_to_role permission.
//	@Tags			Roles
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Role id"
//	@Param			request	body		identitysdk.AddPermissionRequest	true	"Permission name"
//	@Success		200		{object}	identitysdk.RoleInfo			"Updated role"
//	@Failure		400		{object}	identitysdk.ErrorResponse		"Permission name is not a single token"
//	@Failure		401		{object}	identitysdk.ErrorResponse		"Unauthorized"
//	@Failure		403		{object}	identitysdk.ErrorResponse		"Missing add_permission_to_role permission"
//	@Failure		404		{object}	identitysdk.ErrorResponse		"No such role"
//	@Security		BearerAuth
//	@Router			/v1/roles/{id}/permissions [post].
func (h *RolesHandler) HandleAddPermission(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req identitysdk.AddPermissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		identitysdk.ErrInvalidRequest.WriteError(w)
		return
	}
	if strings.TrimSpace(req.Permission) == "" {
		identitysdk.ErrInvalidRequest.WithDescription("permission is required").WriteError(w)
		return
	}

	role, err := h.RolesService.AddPermission(ctx, r.PathValue("id"), req.Permission)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRoleNotFound):
			identitysdk.ErrNotFound.WithDescription("no such role").WriteError(w)
		case errors.Is(err, service.ErrInvalidPermission):
			identitysdk.ErrInvalidRequest.WithDescription("permission must be a single token without whitespace").WriteError(w)
		default:
			slogx.FromContext(ctx).Error("permission add failed", "err", err)
			identitysdk.ErrServerError.WriteError(w)
		}
		return
	}
	httpx.WriteJSON(w, http.StatusOK, roleInfo(role))
}

// HandleRemovePermission strips a permission from a role
//
//	@Summary		Remove permission
//	@Description	Removes a permission from the role's set. Requires the remove_permission_from_role permission.
//	@Tags			Roles
//	@Produce		json
//	@Param			id			path		string						true	"Role id"
//	@Param			permission	path		string						true	"Permission name"
//	@Success		200			{object}	identitysdk.RoleInfo		"Updated role"
//	@Failure		401			{object}	identitysdk.ErrorResponse	"Unauthorized"
//	@Failure		403			{object}	identitysdk.ErrorResponse	"Missing remove_permission_from_role permission"
//	@Failure		404			{object}	identitysdk.ErrorResponse	"No such role or permission"
//	@Security		BearerAuth
//	@Router			/v1/roles/{id}/permissions/{permission} [delete].
func (h *RolesHandler) HandleRemovePermission(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	role, err := h.RolesService.RemovePermission(ctx, r.PathValue("id"), r.PathValue("permission"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRoleNotFound):
			identitysdk.ErrNotFound.WithDescription("no such role").WriteError(w)
		case errors.Is(err, service.ErrPermissionNotFound):
			identitysdk.ErrNotFound.WithDescription("role does not hold that permission").WriteError(w)
		default:
			slogx.FromContext(ctx).Error("permission remove failed", "err", err)
			identitysdk.ErrServerError.WriteError(w)
		}
		return
	}
	httpx.WriteJSON(w, http.StatusOK, roleInfo(role))
}

func roleInfo(role domain.Role) identitysdk.RoleInfo {
	perms := role.Permissions
	if perms == nil {
		perms = []string{}
	}
	return identitysdk.RoleInfo{
		ID:          role.ID,
		Name:        role.Name,
		Permissions: perms,
	}
}

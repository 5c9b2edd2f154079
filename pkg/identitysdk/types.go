package identitysdk

// ErrorResponse is the wire form of APIError, used for JSON unmarshaling.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// TokenResponse is returned by every endpoint that issues a bearer token.
type TokenResponse struct {
	// AccessToken authenticates subsequent API requests.
	AccessToken string `json:"access_token"`

	// TokenType is always "bearer".
	TokenType string `json:"token_type"`

	// ExpiresIn is the token lifetime in seconds.
	ExpiresIn int `json:"expires_in,omitempty"`
}

// RegisterRequest creates a new local account.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the JSON login body. The form-encoded login endpoint takes
// the same field names as form values.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LegacyLoginRequest exchanges an opaque legacy session token for a unified
// bearer token.
type LegacyLoginRequest struct {
	Token string `json:"token"`
}

// LegacySyncRequest copies a legacy account into the local user table.
type LegacySyncRequest struct {
	Username string `json:"username"`
}

// LegacySyncResponse reports the outcome of a sync.
type LegacySyncResponse struct {
	User    UserInfo `json:"user"`
	Created bool     `json:"created"`
}

// BridgeStatusResponse describes whether cross-system authentication is
// available and which endpoints serve it.
type BridgeStatusResponse struct {
	Enabled   bool     `json:"enabled"`
	Endpoints []string `json:"endpoints,omitempty"`
}

// UserInfo is the public projection of a user record.
type UserInfo struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	IsSuperuser bool   `json:"is_superuser"`
	IsActive    bool   `json:"is_active"`

	// Source is "native" or "foreign"; only set on authenticated-self
	// responses where the credential origin is known.
	Source string `json:"source,omitempty"`
}

// ListUsersResponse wraps the user admin listing.
type ListUsersResponse struct {
	Users []UserInfo `json:"users"`
}

// UpdateUserRequest mutates admin-controlled user fields. Nil fields are
// left unchanged.
type UpdateUserRequest struct {
	Email       *string `json:"email,omitempty"`
	Role        *string `json:"role,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
	IsSuperuser *bool   `json:"is_superuser,omitempty"`
}

// UpdateProfileRequest changes the authenticated user's own profile fields.
// Usernames are immutable, so only the email can change.
type UpdateProfileRequest struct {
	Email string `json:"email"`
}

// ChangePasswordRequest swaps the authenticated user's password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// HealthResponse is returned by the liveness and readiness probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks itemizes dependency health on the readiness probe.
type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}

// RoleInfo is the public projection of a role.
type RoleInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
}

// ListRolesResponse wraps the role listing.
type ListRolesResponse struct {
	Roles []RoleInfo `json:"roles"`
}

// CreateRoleRequest creates (or returns) a role by name.
type CreateRoleRequest struct {
	Name string `json:"name"`
}

// AddPermissionRequest appends a permission to a role.
type AddPermissionRequest struct {
	Permission string `json:"permission"`
}

package identitysdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is a small client for the identity service. It covers the auth and
// bridge surface; admin operations go through Do with an explicit path.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Register creates a local account.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*UserInfo, error) {
	var out UserInfo
	if err := c.doJSON(ctx, http.MethodPost, "/v1/auth/register", "", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login authenticates with username/password via the form endpoint and
// returns the issued token.
func (c *Client) Login(ctx context.Context, username, password string) (*TokenResponse, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.BaseURL+"/v1/auth/login", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var out TokenResponse
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LoginJSON authenticates with a JSON body.
func (c *Client) LoginJSON(ctx context.Context, username, password string) (*TokenResponse, error) {
	var out TokenResponse
	err := c.doJSON(ctx, http.MethodPost, "/v1/auth/login-json", "",
		LoginRequest{Username: username, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Do issues an arbitrary JSON request against the service. Admin endpoints
// without a dedicated helper go through here.
func (c *Client) Do(ctx context.Context, method, path, token string, in, out any) error {
	return c.doJSON(ctx, method, path, token, in, out)
}

// LegacyLogin exchanges an opaque legacy session token for a unified bearer
// token.
func (c *Client) LegacyLogin(ctx context.Context, legacyToken string) (*TokenResponse, error) {
	var out TokenResponse
	err := c.doJSON(ctx, http.MethodPost, "/v1/auth/legacy/login", "",
		LegacyLoginRequest{Token: legacyToken}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// LegacySync copies a legacy account into the local user table. Requires a
// superuser token.
func (c *Client) LegacySync(ctx context.Context, token, username string) (*LegacySyncResponse, error) {
	var out LegacySyncResponse
	err := c.doJSON(ctx, http.MethodPost, "/v1/auth/legacy/sync", token,
		LegacySyncRequest{Username: username}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// BridgeStatus reports whether cross-system authentication is enabled.
func (c *Client) BridgeStatus(ctx context.Context) (*BridgeStatusResponse, error) {
	var out BridgeStatusResponse
	if err := c.doJSON(ctx, http.MethodGet, "/v1/auth/legacy/status", "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me returns the authenticated principal's own record.
func (c *Client) Me(ctx context.Context, token string) (*UserInfo, error) {
	var out UserInfo
	if err := c.doJSON(ctx, http.MethodGet, "/v1/auth/me", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile changes the authenticated user's email.
func (c *Client) UpdateProfile(ctx context.Context, token, email string) (*UserInfo, error) {
	var out UserInfo
	err := c.doJSON(ctx, http.MethodPatch, "/v1/auth/me", token,
		UpdateProfileRequest{Email: email}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ChangePassword swaps the authenticated user's password.
func (c *Client) ChangePassword(ctx context.Context, token, current, next string) error {
	return c.doJSON(ctx, http.MethodPut, "/v1/auth/me/password", token,
		ChangePasswordRequest{CurrentPassword: current, NewPassword: next}, nil)
}

// Refresh re-mints a token for the authenticated principal.
func (c *Client) Refresh(ctx context.Context, token string) (*TokenResponse, error) {
	var out TokenResponse
	if err := c.doJSON(ctx, http.MethodPost, "/v1/auth/refresh", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// doJSON builds a request with an optional JSON body and bearer token, then
// executes it via do.
func (c *Client) doJSON(ctx context.Context, method, path, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeAPIError(resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func decodeAPIError(resp *http.Response) error {
	var wire ErrorResponse
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err := json.Unmarshal(data, &wire); err != nil || wire.Error == "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        ErrorCodeServerError,
			Description: fmt.Sprintf("unexpected response: %s", strings.TrimSpace(string(data))),
		}
	}
	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        wire.Error,
		Description: wire.ErrorDescription,
	}
}

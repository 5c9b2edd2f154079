package httpx

import "context"

type ctxKey string

const (
	// CtxKeyUserID holds the authenticated principal's record id (string).
	CtxKeyUserID ctxKey = "user_id"

	// CtxKeyPrincipal holds the full normalized principal. Typed as any here
	// to keep this package free of domain imports; the identity middleware
	// owns both ends of the contract.
	CtxKeyPrincipal ctxKey = "principal"
)

// UserIDFromCtx returns the authenticated user id, or "" when the request is
// unauthenticated.
func UserIDFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUserID).(string); ok {
		return v
	}
	return ""
}

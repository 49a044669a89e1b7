package httpx

import "context"

type ctxKey string

const (
	CtxKeyUserEmail ctxKey = "user_email"
	CtxKeyRole      ctxKey = "role"
	CtxKeyClaims    ctxKey = "claims"
)

// UserEmailFromCtx returns the authenticated user's email, or "" when the
// request is anonymous.
func UserEmailFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUserEmail).(string); ok {
		return v
	}
	return ""
}

// RoleFromCtx returns the authenticated user's role name, or "".
func RoleFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyRole).(string); ok {
		return v
	}
	return ""
}

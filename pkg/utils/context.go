package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	PrincipalKey contextKey = "principal"
	TokenKey     contextKey = "token"
)

// Principal is the authenticated caller. Role is checked explicitly at each
// authorization point; there is no inheritance between roles.
type Principal struct {
	UserID uuid.UUID
	Role   string
}

func SetPrincipal(ctx context.Context, principal Principal) context.Context {
	return context.WithValue(ctx, PrincipalKey, principal)
}

func GetPrincipal(ctx context.Context) (Principal, bool) {
	principal, ok := ctx.Value(PrincipalKey).(Principal)
	return principal, ok
}

// GetUserIDFromContext is a shortcut for handlers that only need the caller id.
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	principal, ok := GetPrincipal(ctx)
	if !ok {
		return uuid.Nil, false
	}
	return principal.UserID, true
}

func SetTokenContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, TokenKey, token)
}

func GetTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(TokenKey).(string)
	return token, ok
}

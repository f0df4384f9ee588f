package auth

import (
	"context"

	"github.com/LiamCoop/upload-prints/internal/core/domain"
)

type contextKey struct{}

var principalKey = contextKey{}

// ContextWithPrincipal stores the authenticated principal on the context
func ContextWithPrincipal(ctx context.Context, principal domain.Principal) context.Context {
	return context.WithValue(ctx, principalKey, principal)
}

// PrincipalFromContext retrieves the authenticated principal, if any
func PrincipalFromContext(ctx context.Context) (domain.Principal, bool) {
	principal, ok := ctx.Value(principalKey).(domain.Principal)
	return principal, ok
}

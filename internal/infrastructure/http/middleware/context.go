package middleware

import (
	"context"

	"github.com/prasanth-t0205/techblog/internal/domain"
)

type contextKey string

const authUserContextKey contextKey = "auth_user"

// WithAuthUser injects the authenticated user into the context. Only
// the auth gate produces this value; the stored record never carries
// the password hash.
func WithAuthUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, authUserContextKey, user)
}

// AuthUserFromContext returns the authenticated user, or nil.
func AuthUserFromContext(ctx context.Context) *domain.User {
	v := ctx.Value(authUserContextKey)
	if v == nil {
		return nil
	}
	u, _ := v.(*domain.User)
	return u
}

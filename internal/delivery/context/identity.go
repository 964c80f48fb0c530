package context

import (
	"context"

	"hearth/internal/domain/entity"
)

const (
	// KeyIdentity is the key for storing the authenticated user in context.
	KeyIdentity ContextKey = "identity"
)

// GetIdentity extracts the authenticated user from context.Context.
// Returns nil when the request carries no authenticated identity.
func GetIdentity(ctx context.Context) *entity.User {
	if user, ok := ctx.Value(KeyIdentity).(*entity.User); ok {
		return user
	}

	return nil
}

// WithIdentity returns a new context carrying the authenticated user.
func WithIdentity(ctx context.Context, user *entity.User) context.Context {
	return context.WithValue(ctx, KeyIdentity, user)
}

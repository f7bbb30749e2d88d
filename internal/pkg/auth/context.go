package auth

import (
	"context"

	"github.com/ifybugsy/odiya-store-sub002/internal/entities"
)

type ctxKey struct{}

func WithClaims(ctx context.Context, claims entities.Claims) context.Context {
	return context.WithValue(ctx, ctxKey{}, claims)
}

// FromContext returns the claims the middleware attached to the request.
func FromContext(ctx context.Context) (entities.Claims, bool) {
	claims, ok := ctx.Value(ctxKey{}).(entities.Claims)
	return claims, ok
}

package middleware

import (
	"context"

	"github.com/mythrilmerch/mythrilmerch-backend/pkg/db/models"
)

type contextKey string

const ctxOwner contextKey = "cart_owner"

// OwnerFromContext returns the cart owner seeded by the Owner middleware.
// The zero Owner is returned when the middleware did not run.
func OwnerFromContext(ctx context.Context) models.Owner {
	if ctx == nil {
		return models.Owner{}
	}
	if v, ok := ctx.Value(ctxOwner).(models.Owner); ok {
		return v
	}
	return models.Owner{}
}

// WithOwner injects the cart owner into the context.
func WithOwner(ctx context.Context, owner models.Owner) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxOwner, owner)
}

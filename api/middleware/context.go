package middleware

import (
	"context"

	"github.com/dcastaneda/mercato-backend/pkg/enums"
)

type contextKey string

const (
	ctxUserID    contextKey = "user_id"
	ctxStoreID   contextKey = "store_id"
	ctxStoreType contextKey = "store_type"
)

func UserIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxUserID).(string); ok {
		return v
	}
	return ""
}

func StoreIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxStoreID).(string); ok {
		return v
	}
	return ""
}

// StoreTypeFromContext reports the active store type, if one was seeded.
func StoreTypeFromContext(ctx context.Context) (enums.StoreType, bool) {
	if ctx == nil {
		return "", false
	}
	v, ok := ctx.Value(ctxStoreType).(enums.StoreType)
	return v, ok
}

// WithUserID injects the user identifier into the context.
func WithUserID(ctx context.Context, userID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxUserID, userID)
}

// WithStoreID injects the store identifier into the context for downstream handlers.
func WithStoreID(ctx context.Context, storeID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxStoreID, storeID)
}

// WithStoreType injects the active store type into the context.
func WithStoreType(ctx context.Context, st enums.StoreType) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxStoreType, st)
}

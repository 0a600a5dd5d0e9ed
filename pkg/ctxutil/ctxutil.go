// Package ctxutil carries request-scoped identifiers through context.Context.
package ctxutil

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type ctxKey string

const (
	userIDKey     ctxKey = "user_id"
	userHolderKey ctxKey = "user_holder"
	requestIDKey  ctxKey = "request_id"
)

// UserHolder lets an outer middleware observe the user id that an inner one
// authenticates. See WithUserHolder.
type UserHolder struct {
	mu sync.Mutex
	id uuid.UUID
}

// UserID returns the recorded user id, or uuid.Nil for anonymous requests.
func (h *UserHolder) UserID() uuid.UUID {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.id
}

// WithUserHolder installs an empty holder. Later WithUserID calls on derived
// contexts record the id in it.
func WithUserHolder(ctx context.Context) (context.Context, *UserHolder) {
	h := &UserHolder{}
	return context.WithValue(ctx, userHolderKey, h), h
}

// WithUserID stores the user ID in the context.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	if h, ok := ctx.Value(userHolderKey).(*UserHolder); ok {
		h.mu.Lock()
		h.id = id
		h.mu.Unlock()
	}
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromCtx extracts the user ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

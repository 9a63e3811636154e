// Package utils provides helpers shared by the handler and service layers:
// typed context keys for the authenticated user, JSON response writing,
// password hashing, JWT issuing and parsing, and an HTTP client.
package utils

import (
	"context"

	"github.com/MKhiriev/go-blog-api/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

var (
	// UserIDCtxKey holds the authenticated user id (int64).
	UserIDCtxKey = contextKey("userID")
	// RoleCtxKey holds the authenticated user role ([models.Role]).
	RoleCtxKey = contextKey("role")
)

// WithActor stores the authenticated user id and role in ctx.
func WithActor(ctx context.Context, userID int64, role models.Role) context.Context {
	ctx = context.WithValue(ctx, UserIDCtxKey, userID)
	return context.WithValue(ctx, RoleCtxKey, role)
}

// GetUserIDFromContext retrieves the user identifier from the context.
// ok is false when the value is missing or has an unexpected type.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// ActorFromContext returns the authenticated user as a [models.User]
// carrying only ID and Role. ok is false for anonymous requests.
func ActorFromContext(ctx context.Context) (models.User, bool) {
	userID, ok := GetUserIDFromContext(ctx)
	if !ok {
		return models.User{}, false
	}
	role, _ := ctx.Value(RoleCtxKey).(models.Role)
	if role == "" {
		role = models.RoleNormal
	}
	return models.User{ID: userID, Role: role}, true
}

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, hashing,
// HTTP response writing, JWT token generation and validation,
// and identifier generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-contacts/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserCtxKey is the key used to store the authenticated user in the context.
// Used together with WithUser and GetUserFromContext.
var UserCtxKey = contextKey("user")

// WithUser returns a copy of ctx carrying the authenticated user.
func WithUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, UserCtxKey, user)
}

// GetUserFromContext retrieves the authenticated user from the context.
//
// Returns the user and an ok flag:
//   - ok == true  — value is found and has the models.User type
//   - ok == false — value is missing or has an unexpected type
//
// Example usage:
//
//	user, ok := utils.GetUserFromContext(ctx)
//	if !ok {
//	    // handle missing user in context
//	}
func GetUserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(models.User)
	return user, ok
}

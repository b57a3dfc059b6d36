// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-contacts/internal/utils"
	"github.com/MKhiriev/go-contacts/models"
)

// auth is an HTTP middleware that admits only requests carrying the current
// session token of an existing user.
//
// The token is read from "Authorization: Bearer <token>" and resolved by
// [service.AccountService.Authenticate]. On success the resolved user is
// stored in the request context under [utils.UserCtxKey].
//
// Requests are rejected with 401 when the header is absent or malformed, the
// token is invalid or expired, the user no longer exists, or the token is not
// the user's current session. Storage failures during the lookup are 500.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err))
			return
		}

		ctx := r.Context()
		user, err := h.services.AccountService.Authenticate(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUser(ctx, user)))
	})
}

// currentUser returns the user stored by auth.
func currentUser(r *http.Request) (models.User, error) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		return models.User{}, ErrNoUserInContext
	}
	return user, nil
}

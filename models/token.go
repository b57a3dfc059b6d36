// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token is a session token together with its decoded claims.
//
// It embeds [jwt.RegisteredClaims] so it can be passed directly to
// [jwt.ParseWithClaims]; the "sub" claim carries the user identifier.
type Token struct {
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID string `json:"-"`
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrPasswordMismatch is returned by [PasswordHasher.Compare] when the
	// candidate password does not match the stored hash.
	ErrPasswordMismatch = errors.New("password does not match")

	// ErrInvalidToken is returned by [TokenIssuer.Parse] for malformed,
	// forged or expired tokens.
	ErrInvalidToken = errors.New("invalid token")
)

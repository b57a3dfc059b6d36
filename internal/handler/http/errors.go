// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the transport layer. Callers can match against them
// with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header is not of the
	// form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrNoUserInContext means an authenticated route ran without the auth
	// middleware.
	ErrNoUserInContext = errors.New("no user in request context")

	ErrInvalidJSON        = errors.New("invalid JSON was passed")
	ErrInvalidQuery       = errors.New("invalid query parameter")
	ErrInvalidUpload      = errors.New("invalid multipart upload")
	ErrUploadSizeExceeded = errors.New("upload is too large")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates missing storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a missing token sign key or a bcrypt cost out of range).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates invalid server settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidMailConfigs indicates an API key without a sender address.
	ErrInvalidMailConfigs = errors.New("invalid mail configuration")
)

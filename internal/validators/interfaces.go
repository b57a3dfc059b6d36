// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides the static input contracts of every
// operation.
//
// Core concepts:
//   - Validator: generic interface to validate an incoming request value.
//     Implementations switch on the concrete type and reject unknown types
//     with [ErrUnsupportedType].
//
// Usage patterns:
//  1. Inject Validator implementations into services.
//  2. Call Validate with context and value before any side effect.
//  3. Match failures with errors.Is(err, [ErrInvalidInput]).
//
// This package decouples validation logic from transport layers and storage.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {
	// Validate returns nil when obj satisfies its contract.
	Validate(ctx context.Context, obj any) error
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads for users, posts and comments
// before they reach the service layer.
//
// A Validator accepts any supported request type and, optionally, the names
// of the fields to check. With no field names every rule of the type runs.
package validators

import "context"

// Validator validates obj, restricted to fields when any are given.
// Unsupported types yield [ErrUnsupportedType] and unknown field names
// yield [ErrUnknownField].
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}

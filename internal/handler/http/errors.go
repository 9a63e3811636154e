// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrUnauthenticated is returned when a protected handler runs without
	// an authenticated user in the request context.
	ErrUnauthenticated = errors.New("you are not logged in")

	// ErrRouteNotFound is reported for requests that match no route.
	ErrRouteNotFound = errors.New("route not found")

	ErrMalformedJSON = errors.New("malformed JSON body")
	ErrBodyTooLarge  = errors.New("request entity too large")
	ErrInvalidGzip   = errors.New("invalid gzip request body")

	// ErrInvalidID is returned when the {id} path segment is not a positive
	// integer.
	ErrInvalidID = errors.New("id must be a positive integer")

	ErrPanicRecovered = errors.New("panic recovered")
)

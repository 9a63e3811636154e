// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package ratelimit implements a fixed-window request counter keyed by
// client identity.
//
// The counting state lives behind [Store] so a single process can use the
// in-memory backend while several replicas share a Redis backend. [Limiter]
// turns the raw counter into an allow/deny [Decision].
package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"
)

var (
	ErrInvalidLimit  = errors.New("rate limit max must be positive")
	ErrInvalidWindow = errors.New("rate limit window must be positive")
	ErrStoreFailure  = errors.New("rate limit store failure")
	ErrUnknownStore  = errors.New("unknown rate limit store")
)

// Store counts hits per key inside a fixed window.
//
// Increment adds one hit for key and returns the hit count of the current
// window together with the moment the window ends. The first hit of a key,
// or the first hit after its window ended, starts a new window of the
// store's configured length.
type Store interface {
	Increment(ctx context.Context, key string) (count int, resetAt time.Time, err error)
}

// Decision is the outcome of a single [Limiter.Allow] call.
type Decision struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetAt    time.Time
	RetryAfter time.Duration
}

type Limiter struct {
	store  Store
	max    int
	window time.Duration
	now    func() time.Time
}

func NewLimiter(store Store, max int, window time.Duration) (*Limiter, error) {
	if max <= 0 {
		return nil, ErrInvalidLimit
	}
	if window <= 0 {
		return nil, ErrInvalidWindow
	}
	return &Limiter{store: store, max: max, window: window, now: time.Now}, nil
}

// Allow records a hit for key. Hits up to and including Limit are allowed;
// every further hit in the same window is rejected.
func (l *Limiter) Allow(ctx context.Context, key string) (Decision, error) {
	count, resetAt, err := l.store.Increment(ctx, key)
	if err != nil {
		return Decision{}, fmt.Errorf("%w: %w", ErrStoreFailure, err)
	}

	d := Decision{
		Allowed:   count <= l.max,
		Limit:     l.max,
		Remaining: max(l.max-count, 0),
		ResetAt:   resetAt,
	}
	if !d.Allowed {
		d.RetryAfter = max(resetAt.Sub(l.now()), 0)
	}
	return d, nil
}

func (l *Limiter) Window() time.Duration {
	return l.window
}

// KeyFunc derives the rate limit key from a request.
type KeyFunc func(r *http.Request) string

// DefaultKeyFunc keys on the client IP. With trustProxy set the first
// X-Forwarded-For entry wins over the connection address.
func DefaultKeyFunc(trustProxy bool) KeyFunc {
	return func(r *http.Request) string {
		if trustProxy {
			if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
				first, _, _ := strings.Cut(xff, ",")
				if ip := strings.TrimSpace(first); ip != "" {
					return ip
				}
			}
		}

		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err == nil && host != "" {
			return host
		}
		if r.RemoteAddr != "" {
			return r.RemoteAddr
		}
		return "unknown"
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid*Configs sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: empty token sign key", ErrInvalidAppConfigs)
	}

	if cfg.Server.BodyLimit < 0 || cfg.Server.CompressionThreshold < 0 {
		return fmt.Errorf("%w: negative size limit", ErrInvalidServerConfigs)
	}

	if cfg.RateLimit.Max < 1 || cfg.RateLimit.Window <= 0 {
		return fmt.Errorf("%w: max and window must be positive", ErrInvalidRateLimitConfigs)
	}

	switch cfg.RateLimit.Store {
	case RateLimitStoreMemory:
	case RateLimitStoreRedis:
		if cfg.RateLimit.Redis.Addr == "" {
			return fmt.Errorf("%w: redis store requires an address", ErrInvalidRateLimitConfigs)
		}
	default:
		return fmt.Errorf("%w: unsupported store %q", ErrInvalidRateLimitConfigs, cfg.RateLimit.Store)
	}

	return nil
}

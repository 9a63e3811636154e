package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

// build merges the collected sources in order (later non-zero fields win),
// fills remaining zero fields with defaults and validates the result.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	config.applyDefaults()

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flags, err := ParseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, jsonCfg)

	return b
}

// applyDefaults fills every field that no source has set.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Env == "" {
		cfg.Env = Production
	}

	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}

	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = DefaultDriver
	}
	if cfg.Storage.DB.MaxOpenConns == 0 {
		cfg.Storage.DB.MaxOpenConns = DefaultMaxOpenConns
	}

	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if cfg.Server.BodyLimit == 0 {
		cfg.Server.BodyLimit = DefaultBodyLimit
	}
	if cfg.Server.CompressionThreshold == 0 {
		cfg.Server.CompressionThreshold = DefaultCompressionThreshold
	}
	if cfg.Server.CORSOrigin == "" {
		cfg.Server.CORSOrigin = DefaultCORSOrigin
	}

	if cfg.RateLimit.Max == 0 {
		cfg.RateLimit.Max = DefaultRateLimitMax
	}
	if cfg.RateLimit.Window == 0 {
		cfg.RateLimit.Window = DefaultRateLimitWindow
	}
	if cfg.RateLimit.Store == "" {
		cfg.RateLimit.Store = DefaultRateLimitStore
	}
	if cfg.RateLimit.Redis.Prefix == "" {
		cfg.RateLimit.Redis.Prefix = DefaultRedisPrefix
	}

	if cfg.Startup.DatabaseTimeout == 0 {
		cfg.Startup.DatabaseTimeout = DefaultDatabaseTimeout
	}
}

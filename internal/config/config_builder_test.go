package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// minimalValid returns the smallest source that passes validation.
func minimalValid() *StructuredConfig {
	return &StructuredConfig{
		App:     App{TokenSignKey: "secret"},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/blog"}},
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that an empty builder fails validation
// because DSN and token sign key have no defaults.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_AppliesDefaults verifies that every unset field receives its
// documented default.
func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, minimalValid())

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, Production, cfg.Env)
	assert.Equal(t, DefaultPort, cfg.Server.ListenPort())
	assert.Equal(t, ":8000", cfg.Server.Address())
	assert.Equal(t, DefaultTokenIssuer, cfg.App.TokenIssuer)
	assert.Equal(t, 24*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, DriverPostgres, cfg.Storage.DB.Driver)
	assert.Equal(t, DefaultMaxOpenConns, cfg.Storage.DB.MaxOpenConns)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultShutdownTimeout, cfg.Server.ShutdownTimeout)
	assert.Equal(t, int64(100<<10), cfg.Server.BodyLimit)
	assert.Equal(t, 1024, cfg.Server.CompressionThreshold)
	assert.Equal(t, "*", cfg.Server.CORSOrigin)
	assert.Equal(t, 10000, cfg.RateLimit.Max)
	assert.Equal(t, time.Hour, cfg.RateLimit.Window)
	assert.Equal(t, RateLimitStoreMemory, cfg.RateLimit.Store)
	assert.Equal(t, DefaultRedisPrefix, cfg.RateLimit.Redis.Prefix)
	assert.False(t, cfg.Startup.RequireDatabase)
	assert.Equal(t, DefaultDatabaseTimeout, cfg.Startup.DatabaseTimeout)
}

// TestBuild_LaterSourceWins verifies that a later source overrides non-zero
// fields of an earlier one and leaves the rest untouched.
func TestBuild_LaterSourceWins(t *testing.T) {
	first := minimalValid()
	first.App.Version = "1.0.0"
	first.Server.Port = "9000"

	b := newConfigBuilder()
	b.configs = append(b.configs,
		first,
		&StructuredConfig{Server: Server{Port: "9100"}, Env: Development},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, 9100, cfg.Server.ListenPort())
	assert.Equal(t, Development, cfg.Env)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoPathSkips verifies that withJSON is a no-op when no earlier
// source set a JSON file path.
func TestWithJSON_NoPathSkips(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, minimalValid())

	b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_LoadsFileFromEarlierSource verifies that the JSON file named
// by an earlier source is parsed and appended.
func TestWithJSON_LoadsFileFromEarlierSource(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"rate_limit": map[string]any{"max": 5, "window": "1m"},
	})

	src := minimalValid()
	src.JSONFilePath = path

	b := newConfigBuilder()
	b.configs = append(b.configs, src)
	b.withJSON()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.RateLimit.Max)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
}

// TestWithJSON_MissingFileRecordsError verifies that a broken path is
// recorded on the builder and surfaces from build.
func TestWithJSON_MissingFileRecordsError(t *testing.T) {
	src := minimalValid()
	src.JSONFilePath = "/definitely/not/here.json"

	b := newConfigBuilder()
	b.configs = append(b.configs, src)
	b.withJSON()
	require.Error(t, b.err)

	_, err := b.build()
	require.Error(t, err)
}

// ── withFlags / withEnv ───────────────────────────────────────────────────────

func TestWithFlags_RecordsParseError(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-no-such-flag"})
	require.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithEnv_ThenFlagsOverride(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_TOKEN_SIGN_KEY":      "env-key",
		"STORAGE_DB_DATABASE_URI": "postgres://env/blog",
		"PORT":                    "9000",
	})

	cfg, err := newConfigBuilder().
		withEnv().
		withFlags([]string{"-a", "127.0.0.1:9500"}).
		withJSON().
		build()
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.App.TokenSignKey)
	assert.Equal(t, "127.0.0.1:9500", cfg.Server.Address())
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:   "valid defaults",
			mutate: func(cfg *StructuredConfig) {},
		},
		{
			name:    "unsupported driver",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = "mysql" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "empty dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "empty token sign key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "negative body limit",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.BodyLimit = -1 },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "zero window",
			mutate:  func(cfg *StructuredConfig) { cfg.RateLimit.Window = 0 },
			wantErr: ErrInvalidRateLimitConfigs,
		},
		{
			name:    "redis without address",
			mutate:  func(cfg *StructuredConfig) { cfg.RateLimit.Store = RateLimitStoreRedis },
			wantErr: ErrInvalidRateLimitConfigs,
		},
		{
			name: "redis with address",
			mutate: func(cfg *StructuredConfig) {
				cfg.RateLimit.Store = RateLimitStoreRedis
				cfg.RateLimit.Redis.Addr = "localhost:6379"
			},
		},
		{
			name:    "unknown store",
			mutate:  func(cfg *StructuredConfig) { cfg.RateLimit.Store = "memcached" },
			wantErr: ErrInvalidRateLimitConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := minimalValid()
			cfg.applyDefaults()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

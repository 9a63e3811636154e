package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for the JSON config file.
// Durations are written as strings ("30s", "1h").
type StructuredJSONConfig struct {
	Env string `json:"env"`

	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		Version       string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver       string `json:"driver"`
			DSN          string `json:"dsn"`
			MaxOpenConns int    `json:"max_open_conns"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		Host                 string   `json:"host"`
		Port                 string   `json:"port"`
		RequestTimeout       Duration `json:"request_timeout"`
		ShutdownTimeout      Duration `json:"shutdown_timeout"`
		BodyLimit            int64    `json:"body_limit"`
		CompressionThreshold int      `json:"compression_threshold"`
		CORSOrigin           string   `json:"cors_origin"`
	} `json:"server,omitempty"`

	RateLimit struct {
		Max        int      `json:"max"`
		Window     Duration `json:"window"`
		Store      string   `json:"store"`
		TrustProxy bool     `json:"trust_proxy"`
		Redis      struct {
			Addr     string `json:"addr"`
			Password string `json:"password"`
			DB       int    `json:"db"`
			Prefix   string `json:"prefix"`
		} `json:"redis,omitempty"`
	} `json:"rate_limit,omitempty"`

	Startup struct {
		RequireDatabase bool     `json:"require_database"`
		DatabaseTimeout Duration `json:"database_timeout"`
	} `json:"startup,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			Version:       jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				Driver:       jsonCfg.Storage.DB.Driver,
				DSN:          jsonCfg.Storage.DB.DSN,
				MaxOpenConns: jsonCfg.Storage.DB.MaxOpenConns,
			},
		},
		Server: Server{
			Host:                 jsonCfg.Server.Host,
			Port:                 jsonCfg.Server.Port,
			RequestTimeout:       time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout:      time.Duration(jsonCfg.Server.ShutdownTimeout),
			BodyLimit:            jsonCfg.Server.BodyLimit,
			CompressionThreshold: jsonCfg.Server.CompressionThreshold,
			CORSOrigin:           jsonCfg.Server.CORSOrigin,
		},
		RateLimit: RateLimit{
			Max:        jsonCfg.RateLimit.Max,
			Window:     time.Duration(jsonCfg.RateLimit.Window),
			Store:      jsonCfg.RateLimit.Store,
			TrustProxy: jsonCfg.RateLimit.TrustProxy,
			Redis: Redis{
				Addr:     jsonCfg.RateLimit.Redis.Addr,
				Password: jsonCfg.RateLimit.Redis.Password,
				DB:       jsonCfg.RateLimit.Redis.DB,
				Prefix:   jsonCfg.RateLimit.Redis.Prefix,
			},
		},
		Startup: Startup{
			RequireDatabase: jsonCfg.Startup.RequireDatabase,
			DatabaseTimeout: time.Duration(jsonCfg.Startup.DatabaseTimeout),
		},
	}

	if jsonCfg.Env != "" {
		cfg.Env = ParseEnvironment(jsonCfg.Env)
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

package config

import (
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Server   ServerConfig   `toml:"server"`
	Extract  ExtractConfig  `toml:"extract"`
	Observer ObserverConfig `toml:"observer"`
}

type ServerConfig struct {
	Addr             string `toml:"addr"`
	MaxUploadBytes   int64  `toml:"max_upload_bytes"`
	ReadTimeoutSecs  int    `toml:"read_timeout_secs"`
	WriteTimeoutSecs int    `toml:"write_timeout_secs"`
}

type ExtractConfig struct {
	RowTolerance  float64 `toml:"row_tolerance"`
	HeaderPadding float64 `toml:"header_padding"`
	LineTolerance float64 `toml:"line_tolerance"`
	WordGapFactor float64 `toml:"word_gap_factor"`
}

type ObserverConfig struct {
	Enabled bool `toml:"enabled"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:             ":8080",
			MaxUploadBytes:   32 << 20,
			ReadTimeoutSecs:  120,
			WriteTimeoutSecs: 120,
		},
		Extract: ExtractConfig{
			RowTolerance:  5.0,
			HeaderPadding: 5.0,
			LineTolerance: 3.0,
			WordGapFactor: 0.3,
		},
	}
}

// Load reads config: defaults -> TOML file -> env vars (env wins).
func Load(path string) Config {
	cfg := Default()

	if path == "" {
		path = "quaycheck.toml"
	}

	if data, err := os.ReadFile(path); err == nil {
		_ = toml.Unmarshal(data, &cfg)
	}

	// Env overrides
	if v := os.Getenv("QUAYCHECK_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("QUAYCHECK_MAX_UPLOAD"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			cfg.Server.MaxUploadBytes = n
		}
	}
	if v := os.Getenv("QUAYCHECK_OBSERVER"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Observer.Enabled = b
		}
	}

	return cfg
}

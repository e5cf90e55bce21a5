package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

var validate = validator.New()

// Config holds all runtime configuration.
type Config struct {
	// DBPath is the on-device SQLite database. Empty means the default
	// XDG location resolved by the store package.
	DBPath string

	// RemoteDSN points at the remote profile database. Empty runs the app
	// in local-only mode. Values: a postgres:// URL or a SQLite path.
	RemoteDSN string

	// LogMode selects zap's development or production encoder.
	LogMode string `validate:"oneof=dev prod production"`

	// HTTPAddr is the listen address for `fika serve`.
	HTTPAddr string `validate:"required"`

	Redis RedisConfig
	Sync  SyncConfig
}

// RedisConfig configures the optional Redis unlock-notification sink.
type RedisConfig struct {
	Addr    string
	Channel string `validate:"required_with=Addr"`
}

// SyncConfig tunes reconciliation and notification timing.
type SyncConfig struct {
	// ResyncInterval is how often `fika serve` reconciles with the remote
	// store. Zero disables periodic resync.
	ResyncInterval time.Duration `validate:"gte=0"`

	// Warmup is the window after start-up during which unlock batches are
	// not announced. Zero disables the warm-up. Default: 2s.
	Warmup time.Duration `validate:"gte=0"`

	// Debounce collapses bursts of unlocks into one announcement.
	// Default: 300ms.
	Debounce time.Duration `validate:"gt=0"`

	// NextBadges caps the "closest to unlock" list.
	NextBadges int `validate:"gte=1,lte=20"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		LogMode:  "dev",
		HTTPAddr: "127.0.0.1:8420",
		Redis: RedisConfig{
			Channel: "fika.badges",
		},
		Sync: SyncConfig{
			ResyncInterval: 5 * time.Minute,
			Warmup:         2 * time.Second,
			Debounce:       300 * time.Millisecond,
			NextBadges:     3,
		},
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv("FIKA_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("FIKA_REMOTE_DSN"); v != "" {
		cfg.RemoteDSN = v
	}
	if v := os.Getenv("FIKA_LOG_MODE"); v != "" {
		cfg.LogMode = v
	}
	if v := os.Getenv("FIKA_HTTP_ADDR"); v != "" {
		cfg.HTTPAddr = v
	}

	if v := os.Getenv("FIKA_REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("FIKA_REDIS_CHANNEL"); v != "" {
		cfg.Redis.Channel = v
	}

	var err error
	if cfg.Sync.ResyncInterval, err = durationEnv("FIKA_RESYNC_INTERVAL", cfg.Sync.ResyncInterval); err != nil {
		return cfg, err
	}
	if cfg.Sync.Warmup, err = durationEnv("FIKA_SETTLE_WARMUP", cfg.Sync.Warmup); err != nil {
		return cfg, err
	}
	if cfg.Sync.Debounce, err = durationEnv("FIKA_SETTLE_DEBOUNCE", cfg.Sync.Debounce); err != nil {
		return cfg, err
	}
	if v := os.Getenv("FIKA_NEXT_BADGES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("FIKA_NEXT_BADGES: %w", err)
		}
		cfg.Sync.NextBadges = n
	}

	return cfg, nil
}

// Load reads an optional dotenv file, then the environment, and validates
// the result. An empty envFile tries ./.env and ignores its absence.
func Load(envFile string) (Config, error) {
	if err := loadDotenv(envFile); err != nil {
		return Config{}, err
	}
	cfg, err := ConfigFromEnv()
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Offline reports whether no remote profile database is configured.
func (c Config) Offline() bool {
	return c.RemoteDSN == ""
}

func loadDotenv(path string) error {
	explicit := path != ""
	if !explicit {
		path = ".env"
	}
	// Existing environment variables win over the file.
	err := godotenv.Load(path)
	if err == nil {
		return nil
	}
	if !explicit && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load env file %s: %w", path, err)
}

func durationEnv(name string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(name)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", name, err)
	}
	return d, nil
}

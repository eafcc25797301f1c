package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"mailguard/internal/keystore"
	"mailguard/internal/services/credential"
)

// ConfigFilename is the optional JSON config file inside Home.
const ConfigFilename = "config.json"

// Environment variables overriding the config file.
const (
	EnvHome           = "MAILGUARD_HOME"
	EnvService        = "MAILGUARD_SERVICE"
	EnvLogLevel       = "MAILGUARD_LOG_LEVEL"
	EnvDevelopment    = "MAILGUARD_DEV"
	EnvLegacyFallback = "MAILGUARD_LEGACY_FALLBACK"
	EnvSessionTTL     = "MAILGUARD_SESSION_TTL"
	EnvMailDomain     = "MAILGUARD_MAIL_DOMAIN"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home           string        // state directory, e.g. $XDG_CONFIG_HOME/mailguard
	Service        string        // secret-store service name
	LogLevel       string        // zap level name
	Development    bool          // human-readable console logs
	LegacyFallback bool          // keep and consult the legacy password copy
	SessionTTL     time.Duration // lifetime of a login
	MailDomain     string        // required address domain; empty accepts any
}

// fileConfig is the on-disk shape of config.json. Pointers mark keys that
// were present.
type fileConfig struct {
	Service        *string `json:"service"`
	LogLevel       *string `json:"log_level"`
	Development    *bool   `json:"development"`
	LegacyFallback *bool   `json:"legacy_fallback"`
	SessionTTL     *string `json:"session_ttl"`
	MailDomain     *string `json:"mail_domain"`
}

// DefaultHome returns the per-user state directory.
func DefaultHome() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config directory: %w", err)
	}
	return filepath.Join(dir, "mailguard"), nil
}

// DefaultConfig returns the built-in defaults rooted at home.
func DefaultConfig(home string) Config {
	return Config{
		Home:       home,
		Service:    keystore.ServiceName,
		LogLevel:   "warn",
		SessionTTL: credential.DefaultSessionTTL,
		MailDomain: credential.DefaultMailDomain,
	}
}

// LoadConfig resolves the configuration. home, when non-empty, wins over
// MAILGUARD_HOME and the default directory. Values from the environment
// override config.json, which overrides the defaults. getenv may be nil.
func LoadConfig(home string, getenv func(string) string) (Config, error) {
	if getenv == nil {
		getenv = os.Getenv
	}
	if home == "" {
		home = getenv(EnvHome)
	}
	if home == "" {
		h, err := DefaultHome()
		if err != nil {
			return Config{}, err
		}
		home = h
	}

	cfg := DefaultConfig(home)
	if err := cfg.applyFile(filepath.Join(home, ConfigFilename)); err != nil {
		return Config{}, err
	}
	if err := cfg.applyEnv(getenv); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyFile(path string) error {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	var f fileConfig
	if err := json.Unmarshal(b, &f); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if f.Service != nil {
		c.Service = *f.Service
	}
	if f.LogLevel != nil {
		c.LogLevel = *f.LogLevel
	}
	if f.Development != nil {
		c.Development = *f.Development
	}
	if f.LegacyFallback != nil {
		c.LegacyFallback = *f.LegacyFallback
	}
	if f.SessionTTL != nil {
		d, err := time.ParseDuration(*f.SessionTTL)
		if err != nil {
			return fmt.Errorf("parse %s: session_ttl: %w", path, err)
		}
		c.SessionTTL = d
	}
	if f.MailDomain != nil {
		c.MailDomain = *f.MailDomain
	}
	return nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	if v := getenv(EnvService); v != "" {
		c.Service = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := getenv(EnvDevelopment); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDevelopment, err)
		}
		c.Development = b
	}
	if v := getenv(EnvLegacyFallback); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvLegacyFallback, err)
		}
		c.LegacyFallback = b
	}
	if v := getenv(EnvSessionTTL); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSessionTTL, err)
		}
		c.SessionTTL = d
	}
	if v, ok := lookup(getenv, EnvMailDomain); ok {
		c.MailDomain = v
	}
	return nil
}

// lookup treats the literal "-" as an explicit empty value.
func lookup(getenv func(string) string, key string) (string, bool) {
	v := getenv(key)
	switch v {
	case "":
		return "", false
	case "-":
		return "", true
	}
	return v, true
}

// Validate checks the resolved configuration.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Home) == "" {
		return errors.New("config: home directory is empty")
	}
	if strings.TrimSpace(c.Service) == "" {
		return errors.New("config: service name is empty")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("config: session ttl must be positive, got %s", c.SessionTTL)
	}
	return nil
}

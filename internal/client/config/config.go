package config

import (
	"errors"
	"fmt"
	"time"
)

const (
	TokenModeMock = "mock"
	TokenModeJWT  = "jwt"

	CredentialCheckSentinel = "sentinel"
	CredentialCheckArgon2   = "argon2"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds runtime settings for the Appointo CLI.
type Config struct {
	DBPath          string
	Ephemeral       bool
	LoginDelay      time.Duration
	TokenMode       string
	TokenSecret     string
	CredentialCheck string
	LogLevel        string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DBPath = "appointo.db"
	c.Ephemeral = false
	c.LoginDelay = 500 * time.Millisecond
	c.TokenMode = TokenModeMock
	c.TokenSecret = ""
	c.CredentialCheck = CredentialCheckSentinel
	c.LogLevel = "info"
}

// Validate reports settings that cannot work together.
func (c *Config) Validate() error {
	switch c.TokenMode {
	case TokenModeMock:
	case TokenModeJWT:
		if c.TokenSecret == "" {
			return fmt.Errorf("%w: token_mode %q requires token_secret", ErrInvalidConfig, c.TokenMode)
		}
	default:
		return fmt.Errorf("%w: unknown token_mode %q", ErrInvalidConfig, c.TokenMode)
	}

	switch c.CredentialCheck {
	case CredentialCheckSentinel, CredentialCheckArgon2:
	default:
		return fmt.Errorf("%w: unknown credential_check %q", ErrInvalidConfig, c.CredentialCheck)
	}

	if c.LoginDelay < 0 {
		return fmt.Errorf("%w: login_delay must not be negative", ErrInvalidConfig)
	}
	if !c.Ephemeral && c.DBPath == "" {
		return fmt.Errorf("%w: db_path is empty", ErrInvalidConfig)
	}
	return nil
}

// Load builds a Config from defaults, then the JSON file named in args (if
// any), then flags in args. args excludes the program name.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

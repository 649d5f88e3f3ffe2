package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/appointo/internal/flagx"
	"github.com/dmitrijs2005/appointo/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from "zero" so a partial file only overrides
// what it names.
type JsonConfig struct {
	DBPath          *string         `json:"db_path"`
	Ephemeral       *bool           `json:"ephemeral"`
	LoginDelay      *timex.Duration `json:"login_delay"`
	TokenMode       *string         `json:"token_mode"`
	TokenSecret     *string         `json:"token_secret"`
	CredentialCheck *string         `json:"credential_check"`
	LogLevel        *string         `json:"log_level"`
}

// parseJson overlays cfg with the JSON file given by -c/-config in args.
// Without such a flag it does nothing.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigFile(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if jc.DBPath != nil {
		cfg.DBPath = *jc.DBPath
	}
	if jc.Ephemeral != nil {
		cfg.Ephemeral = *jc.Ephemeral
	}
	if jc.LoginDelay != nil {
		cfg.LoginDelay = jc.LoginDelay.Duration
	}
	if jc.TokenMode != nil {
		cfg.TokenMode = *jc.TokenMode
	}
	if jc.TokenSecret != nil {
		cfg.TokenSecret = *jc.TokenSecret
	}
	if jc.CredentialCheck != nil {
		cfg.CredentialCheck = *jc.CredentialCheck
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	return nil
}

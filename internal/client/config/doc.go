// Package config loads runtime configuration for the Appointo CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-d string   path of the SQLite session database
//	-e          keep the session in memory only (nothing survives exit)
//	-l int      simulated login latency in milliseconds
//	-t string   token format: "mock" or "jwt"
//	-v string   log level: debug, info, warn, error
//
// # JSON schema
//
// Durations accept strings like "500ms" or integer nanoseconds:
//
//	{
//	  "db_path": "appointo.db",
//	  "ephemeral": false,
//	  "login_delay": "500ms",
//	  "token_mode": "jwt",
//	  "token_secret": "change-me",
//	  "credential_check": "argon2",
//	  "log_level": "info"
//	}
//
// The JWT secret is only read from JSON so it does not end up in shell
// history.
package config

// Package config loads runtime configuration for the folio client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. FOLIO_* environment variables (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the portfolio API
//	-t int      request timeout (seconds)
//	-s string   local session database path
//	-l string   log level
//
// # JSON schema
//
//	{
//	  "api_base_url": "https://folio.example/api",
//	  "request_timeout": "30s",
//	  "storage_path": "folio.db",
//	  "requests_per_second": 10,
//	  "request_burst": 5,
//	  "log_format": "zerolog",
//	  "log_level": "info",
//	  "environment": "production"
//	}
package config

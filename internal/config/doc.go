// Package config loads runtime configuration for the credstore demo CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-l string   log level (debug, info, warn, error)
//	-f string   log format (text or json)
//	-p string   REPL prompt label
//
// # JSON schema
//
//	{
//	  "log_level": "debug",
//	  "log_format": "json",
//	  "prompt_label": "credstore"
//	}
//
// Note: This package does not read environment variables; use the JSON file
// or flags to configure values.
package config

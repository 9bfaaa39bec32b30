// File: doc.go
// Title: Package Documentation for config
// Description: Package config loads TOML and YAML configuration files with
//              environment variable overrides.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial documentation
// - 2025-10-17 v0.2.0: Documented discovery for the strx command

// Package config loads configuration from TOML or YAML files.
//
// Values are addressed with dot notation. An environment variable named
// after the key, upper-cased with dots turned into underscores and prefixed
// with the configured prefix, takes precedence over the file:
//
//	cfg, err := config.Discover(config.DefaultDiscoveryOptions())
//	if err != nil {
//		return err
//	}
//	decimals := cfg.GetInt("number.decimals", 0) // STRX_NUMBER_DECIMALS wins
//
// The format is chosen from the file extension: .yaml and .yml are YAML,
// everything else is TOML.
package config

// Package config loads, validates, and normalizes umascan configuration.
//
// Configuration is TOML, resolved from an explicit --config path, then
// ~/.config/umascan/config.toml, then a project-local umascan.toml. Missing
// files fall back to defaults so the CLI works out of the box. Path fields
// are tilde-expanded and made absolute during normalization.
package config

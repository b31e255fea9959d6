// Package config loads and validates the vauxly configuration file.
//
// Configuration is TOML, defaulting to ~/.config/vauxly/config.toml with a
// project-local vauxly.toml fallback. Load returns a fully normalized
// config: defaults applied, home-relative paths expanded, and directories
// validated. A sample configuration is embedded for `vauxly config init`.
package config

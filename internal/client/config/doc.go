// Package config loads the CLI runtime configuration from three layered
// sources: built-in defaults, an optional JSON file named by -c/-config,
// and command-line flags. Later sources override earlier ones.
package config

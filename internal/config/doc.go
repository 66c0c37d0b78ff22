// Package config loads and merges the notekeeper server configuration from
// environment variables, command-line flags, an optional JSON file, and
// built-in defaults (in that priority order). The merged result is validated
// before the application starts.
package config

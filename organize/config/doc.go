// Package config defines the YAML/JSON configuration of the organize service:
// MCP server options, builtin fluxor services and organize rules, together
// with helpers to load it from any afs location and build runnable rules.
package config

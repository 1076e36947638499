// Package organize wires the name filter into a fluxor workflow engine. Its
// Service loads configuration, registers the organize/name action next to
// the configured builtin actions, runs organize rules and exposes every
// action as an MCP tool.
package organize

// Package action exposes the name filter as the fluxor action service
// "organize/name", so workflows and MCP clients can test names and validate
// patterns.
package action

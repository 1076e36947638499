// Package tool maps fluxor action methods to MCP tool names and schemas.
package tool

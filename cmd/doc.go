// Package cmd implements the fluxor-organize command-line interface. Each
// file registers a single sub-command (match, scan, list-tools, serve, …);
// plumbing shared between commands such as configuration loading, logging
// and service initialisation lives in shared.go.
package cmd

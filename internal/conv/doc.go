// Package conv coerces loosely typed action arguments (maps decoded from JSON
// or YAML) into the typed inputs and outputs of organize actions.
package conv

// Package name implements the "name" filter: an entry passes when its name
// matches a pattern and contains, starts with and ends with at least one of
// the configured literals. Captured pattern values (or the bare name when
// the pattern captures nothing) are published under the "name" key.
package name

// Package rule runs filters over the entries found in rule locations. It is
// the minimal host for the name filter: list locations through afs, derive
// filter arguments, combine filter results by filter mode and hand matching
// entries with their merged context to the caller.
package rule

// Package filter defines the contract between the rule pipeline and
// individual filters: the entry under test, the result a filter returns and
// the context updates are merged into.
package filter

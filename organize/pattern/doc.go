// Package pattern implements the wildcard language used by the name filter.
//
// A pattern is literal text mixed with two kinds of wildcards:
//
//	*        matches any run of characters (possibly empty)
//	{name}   same as *, the matched text is captured under name
//
// Patterns are anchored at both ends, wildcards are greedy and give back
// characters when a later literal fails to align, so "{stem}.{ext}" applied to
// "my.file.txt" captures stem=my.file and ext=txt.
package pattern

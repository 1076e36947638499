package pattern

import (
	"errors"
	"fmt"
)

// ErrSyntax is matched by every error returned from Compile.
var ErrSyntax = errors.New("invalid pattern syntax")

// SyntaxError describes a malformed {capture} in a pattern.
type SyntaxError struct {
	Pattern string
	Offset  int
	Reason  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("pattern %q: %s at offset %d", e.Pattern, e.Reason, e.Offset)
}

// Is reports whether target is ErrSyntax.
func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}

func newSyntaxError(pattern string, offset int, reason string) error {
	return &SyntaxError{Pattern: pattern, Offset: offset, Reason: reason}
}

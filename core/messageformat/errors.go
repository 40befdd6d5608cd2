package messageformat

import (
	"errors"
	"fmt"
)

// SyntaxError reports a malformed message template. It is recoverable by
// policy: callers are expected to fall back to the raw template text.
type SyntaxError struct {
	Offset int
	Desc   string
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %s", e.Offset, e.Desc)
}

// IsSyntaxError reports whether err is (or wraps) a template syntax error.
// Every other error kind returned by this package must propagate.
func IsSyntaxError(err error) bool {
	var se *SyntaxError
	return errors.As(err, &se)
}

func syntaxErr(offset int, format string, args ...any) error {
	return &SyntaxError{Offset: offset, Desc: fmt.Sprintf(format, args...)}
}

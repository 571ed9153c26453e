package budget

import (
	"errors"
	"fmt"
	"regexp"
)

var ErrInvalidPattern = errors.New("invalid message pattern")

// Pattern is the result of compiling a message regex. It holds either the
// compiled expression or the error that occurred.
type Pattern struct {
	expr string
	re   *regexp.Regexp
	err  error
}

// CompilePattern compiles expr so that it must match complete messages,
// not only a part of them.
func CompilePattern(expr string) Pattern {
	// expr must be valid on its own, wrapping it could balance it
	_, err := regexp.Compile(expr)
	if err != nil {
		return Pattern{
			expr: expr,
			err:  fmt.Errorf("%w %q: %w", ErrInvalidPattern, expr, err),
		}
	}

	re, err := regexp.Compile("^(?:" + expr + ")$")
	if err != nil {
		return Pattern{
			expr: expr,
			err:  fmt.Errorf("%w %q: %w", ErrInvalidPattern, expr, err),
		}
	}

	return Pattern{expr: expr, re: re}
}

// Err returns the compile error, if any.
func (p Pattern) Err() error {
	return p.err
}

// String returns the expression as written in the definition.
func (p Pattern) String() string {
	return p.expr
}

// Matches reports whether the complete message matches. An invalid pattern
// and an empty message never match.
func (p Pattern) Matches(message string) bool {
	if p.re == nil || message == "" {
		return false
	}

	return p.re.MatchString(message)
}

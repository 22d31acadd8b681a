package color

import (
	"errors"
	"fmt"
)

// ErrInvalidColor is the sentinel wrapped by every ParseError.
var ErrInvalidColor = errors.New("invalid CSS color")

// ParseError reports a string that is not a supported CSS color.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: %q", ErrInvalidColor, e.Input)
}

func (e *ParseError) Unwrap() error {
	return ErrInvalidColor
}

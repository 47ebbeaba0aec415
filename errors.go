package palettize

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyPalette is returned when a mapper is constructed from a
	// palette with no entries.
	ErrEmptyPalette = errors.New("palette must contain at least one color")

	// ErrNilConverter is returned when the color converter option is set
	// to nil.
	ErrNilConverter = errors.New("converter must not be nil")
)

// ErrInvalidSnapshot indicates that snapshot data could not be decoded.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidSnapshot struct {
	Reason string
	cause  error
}

func (e *ErrInvalidSnapshot) Error() string {
	return fmt.Sprintf("invalid snapshot: %s", e.Reason)
}

func (e *ErrInvalidSnapshot) Unwrap() error { return e.cause }

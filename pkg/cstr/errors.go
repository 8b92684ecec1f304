package cstr

import (
	"errors"
	"fmt"

	"github.com/ssargent/fwinfo/pkg/chars"
)

// Sentinel errors for string validation and construction.
var (
	// ErrInvalidChar is returned when a code unit is not a legal character.
	ErrInvalidChar = chars.ErrInvalidChar

	// ErrInteriorNul is returned when a terminator appears before the end.
	ErrInteriorNul = errors.New("interior nul")

	// ErrNotNulTerminated is returned when the input has no terminator.
	ErrNotNulTerminated = errors.New("not nul-terminated")

	// ErrBufferTooSmall is returned when the destination cannot hold the
	// converted string and its terminator.
	ErrBufferTooSmall = errors.New("buffer too small")
)

// PositionError reports the code unit offset at which validation failed.
type PositionError struct {
	Err error // ErrInvalidChar or ErrInteriorNul
	Pos int   // Offset in code units
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("%s at position %d", e.Err.Error(), e.Pos)
}

func (e *PositionError) Unwrap() error {
	return e.Err
}

// Position extracts the offset carried by err, if any.
func Position(err error) (int, bool) {
	var pe *PositionError
	if errors.As(err, &pe) {
		return pe.Pos, true
	}
	return 0, false
}

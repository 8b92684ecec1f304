package info

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientStorage is wrapped by *StorageError.
	ErrInsufficientStorage = errors.New("insufficient storage")

	// ErrInvalidName is returned when the name is not a terminated string.
	ErrInvalidName = errors.New("invalid record name")

	// ErrTruncated is returned by bounded decoding when the header or the
	// name terminator lies beyond the end of the input.
	ErrTruncated = errors.New("truncated record")

	// ErrMisaligned is returned by bounded decoding when the input does not
	// start on the alignment the header requires.
	ErrMisaligned = errors.New("misaligned record")

	// ErrUnknownKind is returned when no record kind matches a GUID or name.
	ErrUnknownKind = errors.New("unknown record kind")
)

// StorageError reports how many bytes a record needs. A misaligned buffer
// leaves less usable room, so callers retrying should also align it.
type StorageError struct {
	Required int
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %d bytes required", ErrInsufficientStorage.Error(), e.Required)
}

func (e *StorageError) Unwrap() error {
	return ErrInsufficientStorage
}

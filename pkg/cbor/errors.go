package cbor

import (
	"errors"
	"fmt"
)

// ErrTagMismatch reports a nested record whose tag does not identify
// the type expected at that field.
var ErrTagMismatch = errors.New("tag mismatch")

// ErrInvalidKey reports a map entry whose key is not an unsigned
// integer.
var ErrInvalidKey = errors.New("invalid map key")

// DecodeError describes why a buffer could not be decoded as a tagged
// record map. When the failure occurred while decoding a specific map
// entry, Key identifies the field and HasKey is true.
type DecodeError struct {
	Key    uint64
	HasKey bool
	Err    error
}

func (e *DecodeError) Error() string {
	if e.HasKey {
		return fmt.Sprintf("field %d: %v", e.Key, e.Err)
	}
	return e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// keyError attributes err to the map entry with the given key.
func keyError(key uint64, err error) *DecodeError {
	return &DecodeError{Key: key, HasKey: true, Err: err}
}

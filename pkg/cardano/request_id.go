package cardano

import "github.com/google/uuid"

// NewRequestID returns a fresh random request identifier in the
// 16-byte form carried by the request-id field.
func NewRequestID() []byte {
	id := uuid.New()
	return id[:]
}

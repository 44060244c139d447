package cbor

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// encMode is the CBOR encoder mode for record payloads.
// Configured for deterministic encoding with integer keys.
var encMode cbor.EncMode

// decMode is the CBOR decoder mode for record payloads.
var decMode cbor.DecMode

func init() {
	var err error

	// Configure encoder for deterministic output
	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical, // Deterministic key ordering
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
	}
	encMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR encoder mode: %v", err))
	}

	// Configure decoder to be lenient for forward compatibility
	decOpts := cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyQuiet, // Ignore duplicate keys (last wins)
		IndefLength:       cbor.IndefLengthAllowed,
		ExtraReturnErrors: cbor.ExtraDecErrorNone,
	}
	decMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR decoder mode: %v", err))
	}
}

// RawMessage is a raw encoded CBOR value. Type alias so record codecs
// import only this package, not fxamacker/cbor directly.
type RawMessage = cbor.RawMessage

// RawTag is a raw encoded CBOR tag: a tag number and the raw bytes of
// the tagged content.
type RawTag = cbor.RawTag

// Marshal encodes a value to CBOR bytes.
func Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// Unmarshal decodes CBOR bytes into a value.
func Unmarshal(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}

// UnmarshalFirst decodes the first CBOR data item in data into v and
// returns the remaining bytes.
func UnmarshalFirst(data []byte, v any) (rest []byte, err error) {
	return decMode.UnmarshalFirst(data, v)
}

// UnwrapTag checks that raw is a CBOR tag with the expected number and
// returns the tagged content. Used for the elements of tagged nested
// record sequences, where each element carries its registry tag.
// A value that is not well-formed tagged CBOR is a structural error;
// ErrTagMismatch is reserved for a tag that is present but wrong.
func UnwrapTag(raw RawMessage, expect uint64) (RawMessage, error) {
	var tag RawTag
	if err := decMode.Unmarshal(raw, &tag); err != nil {
		return nil, fmt.Errorf("tagged value: %w", err)
	}
	if tag.Number != expect {
		return nil, fmt.Errorf("%w: expected tag %d, got %d", ErrTagMismatch, expect, tag.Number)
	}
	return tag.Content, nil
}

package cbor

import "fmt"

// Reader is a cursor over an encoded buffer. Each read consumes
// exactly one CBOR data item. Byte and string content is copied out of
// the buffer, never aliased, so decoded records do not retain the
// input.
type Reader struct {
	rest []byte
}

// NewReader returns a Reader positioned at the start of data.
func NewReader(data []byte) *Reader {
	return &Reader{rest: data}
}

// Len reports the number of unconsumed bytes.
func (r *Reader) Len() int {
	return len(r.rest)
}

func (r *Reader) decode(v any, what string) error {
	rest, err := decMode.UnmarshalFirst(r.rest, v)
	if err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}
	r.rest = rest
	return nil
}

// Bytes reads a byte-string value.
func (r *Reader) Bytes() ([]byte, error) {
	var b []byte
	err := r.decode(&b, "byte string")
	return b, err
}

// Text reads a UTF-8 text value.
func (r *Reader) Text() (string, error) {
	var s string
	err := r.decode(&s, "text string")
	return s, err
}

// Uint reads an unsigned integer value.
func (r *Reader) Uint() (uint64, error) {
	var u uint64
	err := r.decode(&u, "unsigned integer")
	return u, err
}

// Uint32 reads an unsigned integer value that must fit in 32 bits.
// A wider value fails rather than truncating.
func (r *Reader) Uint32() (uint32, error) {
	var u uint32
	err := r.decode(&u, "unsigned integer")
	return u, err
}

// Uint8 reads an unsigned integer value that must fit in 8 bits.
// A wider value fails rather than truncating.
func (r *Reader) Uint8() (uint8, error) {
	var u uint8
	err := r.decode(&u, "unsigned integer")
	return u, err
}

// Bool reads a boolean value.
func (r *Reader) Bool() (bool, error) {
	var b bool
	err := r.decode(&b, "boolean")
	return b, err
}

// Raw reads one complete value of any shape without interpreting it.
func (r *Reader) Raw() (RawMessage, error) {
	var raw RawMessage
	err := r.decode(&raw, "value")
	return raw, err
}

// Skip consumes one complete value of any shape, including nested maps
// and arrays. Used to discard unrecognized fields without
// desynchronizing the cursor.
func (r *Reader) Skip() error {
	var raw RawMessage
	return r.decode(&raw, "skipped value")
}

// Array reads an array value and returns its elements, still encoded,
// in order.
func (r *Reader) Array() ([]RawMessage, error) {
	var items []RawMessage
	err := r.decode(&items, "array")
	return items, err
}

// Tagged reads a tagged value, validates the tag number against the
// expected registry tag, and returns the tagged content. A value that
// is not well-formed tagged CBOR is a structural error; ErrTagMismatch
// is reserved for a tag that is present but wrong.
func (r *Reader) Tagged(expect uint64) (RawMessage, error) {
	var tag RawTag
	rest, err := decMode.UnmarshalFirst(r.rest, &tag)
	if err != nil {
		return nil, fmt.Errorf("tagged value: %w", err)
	}
	if tag.Number != expect {
		return nil, fmt.Errorf("%w: expected tag %d, got %d", ErrTagMismatch, expect, tag.Number)
	}
	r.rest = rest
	return tag.Content, nil
}

// TaggedBytes reads a tagged byte-string value, validating the tag.
func (r *Reader) TaggedBytes(expect uint64) ([]byte, error) {
	content, err := r.Tagged(expect)
	if err != nil {
		return nil, err
	}
	var b []byte
	if err := decMode.Unmarshal(content, &b); err != nil {
		return nil, fmt.Errorf("tagged byte string: %w", err)
	}
	return b, nil
}

// DecodeMap reads the map header of data and dispatches each of the
// header's entries by key. The dispatcher must consume exactly one
// value through the Reader for every key it recognizes; when it
// consumes nothing, the value is skipped generically so unknown keys
// never fail a decode. Dispatch errors and malformed input are
// returned as *DecodeError.
//
// Bytes after the final map entry are left unread.
func DecodeMap(data []byte, dispatch func(key uint64, r *Reader) error) error {
	count, rest, err := readMapHead(data)
	if err != nil {
		return &DecodeError{Err: err}
	}
	r := &Reader{rest: rest}
	for i := uint64(0); i < count; i++ {
		key, err := r.Uint()
		if err != nil {
			return &DecodeError{Err: fmt.Errorf("%w: %v", ErrInvalidKey, err)}
		}
		before := len(r.rest)
		if err := dispatch(key, r); err != nil {
			return keyError(key, err)
		}
		if len(r.rest) == before {
			if err := r.Skip(); err != nil {
				return keyError(key, err)
			}
		}
	}
	return nil
}

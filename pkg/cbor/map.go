package cbor

import "fmt"

// MapBuilder assembles the canonical encoding of one record. Record
// codecs append fields in ascending key order, skipping absent
// optionals entirely; an absent field contributes neither to the map
// header count nor to the body. Key ordering is a caller contract, the
// builder emits entries in the order they were appended.
//
// The first append or marshal failure sticks and is reported by Bytes.
type MapBuilder struct {
	entries []mapEntry
	err     error
}

type mapEntry struct {
	key   uint64
	value RawMessage
}

// NewMap returns an empty MapBuilder.
func NewMap() *MapBuilder {
	return &MapBuilder{}
}

func (m *MapBuilder) put(key uint64, v any) {
	if m.err != nil {
		return
	}
	raw, err := encMode.Marshal(v)
	if err != nil {
		m.err = fmt.Errorf("field %d: %w", key, err)
		return
	}
	m.entries = append(m.entries, mapEntry{key: key, value: raw})
}

// PutBytes appends a byte-string field.
func (m *MapBuilder) PutBytes(key uint64, b []byte) {
	m.put(key, b)
}

// PutText appends a UTF-8 text field.
func (m *MapBuilder) PutText(key uint64, s string) {
	m.put(key, s)
}

// PutUint appends an unsigned integer field.
func (m *MapBuilder) PutUint(key uint64, u uint64) {
	m.put(key, u)
}

// PutRaw appends a field whose value is already encoded.
func (m *MapBuilder) PutRaw(key uint64, raw RawMessage) {
	if m.err != nil {
		return
	}
	m.entries = append(m.entries, mapEntry{key: key, value: raw})
}

// PutArray appends an array field from already-encoded elements, in
// the given order.
func (m *MapBuilder) PutArray(key uint64, items []RawMessage) {
	if items == nil {
		items = []RawMessage{}
	}
	m.put(key, items)
}

// PutTagged appends a nested record field: the registry tag followed
// by the record's own encoding.
func (m *MapBuilder) PutTagged(key uint64, tag uint64, record RawMessage) {
	m.put(key, RawTag{Number: tag, Content: record})
}

// PutTaggedBytes appends a byte-string field carrying a semantic tag,
// such as a tag-37 UUID.
func (m *MapBuilder) PutTaggedBytes(key uint64, tag uint64, b []byte) {
	if m.err != nil {
		return
	}
	content, err := encMode.Marshal(b)
	if err != nil {
		m.err = fmt.Errorf("field %d: %w", key, err)
		return
	}
	m.put(key, RawTag{Number: tag, Content: content})
}

// PutTaggedArray appends a sequence of nested records, each element
// prefixed with the registry tag identifying its type. Element order
// is preserved. An empty sequence still emits an empty array.
func (m *MapBuilder) PutTaggedArray(key uint64, tag uint64, records []RawMessage) {
	if m.err != nil {
		return
	}
	tagged := make([]RawMessage, len(records))
	for i, rec := range records {
		raw, err := encMode.Marshal(RawTag{Number: tag, Content: rec})
		if err != nil {
			m.err = fmt.Errorf("field %d element %d: %w", key, i, err)
			return
		}
		tagged[i] = raw
	}
	m.put(key, tagged)
}

// Len reports the number of fields appended so far.
func (m *MapBuilder) Len() int {
	return len(m.entries)
}

// Bytes writes the map header from the final entry count and returns
// the complete encoding.
func (m *MapBuilder) Bytes() ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := appendMapHead(nil, uint64(len(m.entries)))
	for _, e := range m.entries {
		key, err := encMode.Marshal(e.key)
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", e.key, err)
		}
		out = append(out, key...)
		out = append(out, e.value...)
	}
	return out, nil
}

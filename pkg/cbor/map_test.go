package cbor

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func TestMapHeadSizes(t *testing.T) {
	tests := []struct {
		count uint64
		want  string
	}{
		{count: 0, want: "a0"},
		{count: 1, want: "a1"},
		{count: 23, want: "b7"},
		{count: 24, want: "b818"},
		{count: 255, want: "b8ff"},
		{count: 256, want: "b90100"},
		{count: 65535, want: "b9ffff"},
		{count: 65536, want: "ba00010000"},
	}

	for _, tt := range tests {
		head := appendMapHead(nil, tt.count)
		if got := hex.EncodeToString(head); got != tt.want {
			t.Errorf("appendMapHead(%d) = %s, want %s", tt.count, got, tt.want)
		}

		// Read the head back
		n, rest, err := readMapHead(head)
		if err != nil {
			t.Fatalf("readMapHead(%s) failed: %v", tt.want, err)
		}
		if n != tt.count {
			t.Errorf("readMapHead(%s) = %d, want %d", tt.want, n, tt.count)
		}
		if len(rest) != 0 {
			t.Errorf("readMapHead(%s) left %d bytes", tt.want, len(rest))
		}
	}
}

func TestReadMapHeadErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "array head", data: []byte{0x82}},
		{name: "byte string head", data: []byte{0x42}},
		{name: "indefinite map", data: []byte{0xbf}},
		{name: "truncated one-byte length", data: []byte{0xb8}},
		{name: "truncated two-byte length", data: []byte{0xb9, 0x01}},
		{name: "reserved additional info", data: []byte{0xbc}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := readMapHead(tt.data); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

// One always-present byte-string field and one optional field.
// Absent, the encoding is a map-of-1; present, a map-of-2 with the
// optional emitted at its registered key.
func TestMapBuilderCardinality(t *testing.T) {
	m := NewMap()
	m.PutBytes(2, []byte{0x01, 0x02})
	data, err := m.Bytes()
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}
	if got, want := hex.EncodeToString(data), "a102420102"; got != want {
		t.Errorf("map-of-1 = %s, want %s", got, want)
	}

	m = NewMap()
	m.PutTaggedBytes(1, 37, []byte{0xaa, 0xbb})
	m.PutBytes(2, []byte{0x01, 0x02})
	data, err = m.Bytes()
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}
	if got, want := hex.EncodeToString(data), "a201d82542aabb02420102"; got != want {
		t.Errorf("map-of-2 = %s, want %s", got, want)
	}
}

func TestMapBuilderTaggedArray(t *testing.T) {
	inner, err := Marshal([]byte{0x0f})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	m := NewMap()
	m.PutTaggedArray(3, 2201, []RawMessage{inner, inner})
	data, err := m.Bytes()
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}

	// map(1) { 3: [ tag(2201) h'0F', tag(2201) h'0F' ] }
	want := "a10382d90899410fd90899410f"
	if got := hex.EncodeToString(data); got != want {
		t.Errorf("tagged array = %s, want %s", got, want)
	}
}

func TestMapBuilderEmptyTaggedArray(t *testing.T) {
	m := NewMap()
	m.PutTaggedArray(3, 2201, nil)
	data, err := m.Bytes()
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}
	// An empty sequence is still an (empty) array, not null.
	if want := []byte{0xa1, 0x03, 0x80}; !bytes.Equal(data, want) {
		t.Errorf("empty tagged array = %x, want %x", data, want)
	}
}

func TestMapBuilderLargeMap(t *testing.T) {
	m := NewMap()
	for i := uint64(1); i <= 30; i++ {
		m.PutUint(i, i)
	}
	data, err := m.Bytes()
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}
	if data[0] != 0xb8 || data[1] != 30 {
		t.Errorf("head = %x %x, want b8 1e", data[0], data[1])
	}

	seen := 0
	err = DecodeMap(data, func(key uint64, r *Reader) error {
		v, err := r.Uint()
		if err != nil {
			return err
		}
		if v != key {
			t.Errorf("key %d: value %d", key, v)
		}
		seen++
		return nil
	})
	if err != nil {
		t.Fatalf("DecodeMap failed: %v", err)
	}
	if seen != 30 {
		t.Errorf("dispatched %d entries, want 30", seen)
	}
}

package cbor

import (
	"encoding/binary"
	"fmt"
)

// Map heads are framed by hand because the record layer owns map
// cardinality: entries are appended first and the header is derived
// from their count, which fxamacker/cbor's whole-value API cannot
// express. Everything inside the map goes through the library.

const (
	majorMap = 0xa0 // major type 5

	addlOneByte    = 24
	addlTwoBytes   = 25
	addlFourBytes  = 26
	addlEightBytes = 27
	addlIndefinite = 31
)

// appendMapHead appends the head of a definite-length map of n entries.
func appendMapHead(dst []byte, n uint64) []byte {
	switch {
	case n < 24:
		return append(dst, majorMap|byte(n))
	case n <= 0xff:
		return append(dst, majorMap|addlOneByte, byte(n))
	case n <= 0xffff:
		return binary.BigEndian.AppendUint16(append(dst, majorMap|addlTwoBytes), uint16(n))
	case n <= 0xffffffff:
		return binary.BigEndian.AppendUint32(append(dst, majorMap|addlFourBytes), uint32(n))
	default:
		return binary.BigEndian.AppendUint64(append(dst, majorMap|addlEightBytes), n)
	}
}

// readMapHead reads the head of a definite-length map and returns the
// entry count and the bytes that follow.
func readMapHead(data []byte) (n uint64, rest []byte, err error) {
	if len(data) == 0 {
		return 0, nil, fmt.Errorf("unexpected end of buffer reading map header")
	}
	if data[0]&0xe0 != majorMap {
		return 0, nil, fmt.Errorf("expected map, found major type %d", data[0]>>5)
	}
	addl := data[0] & 0x1f
	switch {
	case addl < 24:
		return uint64(addl), data[1:], nil
	case addl == addlOneByte:
		if len(data) < 2 {
			return 0, nil, fmt.Errorf("unexpected end of buffer reading map header")
		}
		return uint64(data[1]), data[2:], nil
	case addl == addlTwoBytes:
		if len(data) < 3 {
			return 0, nil, fmt.Errorf("unexpected end of buffer reading map header")
		}
		return uint64(binary.BigEndian.Uint16(data[1:3])), data[3:], nil
	case addl == addlFourBytes:
		if len(data) < 5 {
			return 0, nil, fmt.Errorf("unexpected end of buffer reading map header")
		}
		return uint64(binary.BigEndian.Uint32(data[1:5])), data[5:], nil
	case addl == addlEightBytes:
		if len(data) < 9 {
			return 0, nil, fmt.Errorf("unexpected end of buffer reading map header")
		}
		return binary.BigEndian.Uint64(data[1:9]), data[9:], nil
	case addl == addlIndefinite:
		return 0, nil, fmt.Errorf("indefinite-length map not allowed in record encoding")
	default:
		return 0, nil, fmt.Errorf("malformed map header 0x%02x", data[0])
	}
}

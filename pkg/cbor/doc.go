// Package cbor implements the tagged-map encoding shared by every
// record codec in this module.
//
// Records are CBOR (RFC 8949) maps with small integer keys. The map
// header count is derived from which optional fields are present, keys
// are emitted in ascending order, and nested records are written
// behind the registry tag that identifies their semantic type.
//
// # Encoding
//
// A record codec builds its map with MapBuilder, appending fields in
// ascending key order and skipping absent optionals entirely:
//
//	m := cbor.NewMap()
//	m.PutTaggedBytes(1, 37, requestID) // only when present
//	m.PutBytes(2, signData)
//	data, err := m.Bytes()
//
// The map header is written last, from the final entry count, so the
// header can never disagree with the body.
//
// # Decoding
//
// DecodeMap reads the header and dispatches each entry by key. The
// dispatcher consumes exactly one value through the Reader; any key it
// does not recognize is skipped generically so the cursor stays
// aligned for the entries that follow. Unknown keys therefore never
// fail a decode — only malformed CBOR does.
//
// All decode failures surface as *DecodeError, carrying the field key
// at which decoding stopped.
package cbor

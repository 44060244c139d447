// Package registry holds the table of registered record types.
//
// Every nested record is written behind a CBOR tag that identifies its
// semantic type. The table maps each type to its stable tag number and
// back; it is fixed at build time and never mutated.
package registry

// Type identifies one registered record type: a UR type name and the
// CBOR tag written before nested encodings of the type.
type Type struct {
	name string
	tag  uint64
}

// String returns the registered type name, e.g. "cardano-sign-request".
func (t Type) String() string {
	return t.name
}

// Tag returns the CBOR tag number registered for the type.
func (t Type) Tag() uint64 {
	return t.tag
}

// Registered types. Tag numbers are stable and must never be reused
// for a different meaning.
var (
	UUID               = Type{name: "uuid", tag: 37}
	CryptoKeyPath      = Type{name: "crypto-keypath", tag: 304}
	CardanoUTXO        = Type{name: "cardano-utxo", tag: 2201}
	CardanoCertKey     = Type{name: "cardano-cert-key", tag: 2204}
	CardanoSignRequest = Type{name: "cardano-sign-request", tag: 2205}
	CardanoSignature   = Type{name: "cardano-signature", tag: 2206}
)

// TypeForTag returns the registered type for a tag number.
func TypeForTag(tag uint64) (Type, bool) {
	switch tag {
	case UUID.tag:
		return UUID, true
	case CryptoKeyPath.tag:
		return CryptoKeyPath, true
	case CardanoUTXO.tag:
		return CardanoUTXO, true
	case CardanoCertKey.tag:
		return CardanoCertKey, true
	case CardanoSignRequest.tag:
		return CardanoSignRequest, true
	case CardanoSignature.tag:
		return CardanoSignature, true
	}
	return Type{}, false
}

// Item is a record type registered in the table. Every record codec
// reports its registry type and produces its own canonical encoding.
type Item interface {
	RegistryType() Type
	Encode() ([]byte, error)
}

package cardano

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ursign-protocol/ursign-go/pkg/cbor"
	"github.com/ursign-protocol/ursign-go/pkg/registry"
)

// CBOR map keys for the signature record.
const (
	sigKeyRequestID  = 1
	sigKeyWitnessSet = 2
)

// Signature is the signer's answer to a SignRequest: the witness set
// to attach to the transaction, correlated by the request identifier.
type Signature struct {
	// RequestID echoes the identifier of the request this signature
	// answers. nil = not set.
	RequestID []byte

	// WitnessSet is the CBOR-serialized transaction witness set.
	WitnessSet []byte
}

var _ registry.Item = (*Signature)(nil)

// RegistryType returns the registered cardano-signature type.
func (sig *Signature) RegistryType() registry.Type {
	return registry.CardanoSignature
}

// Encode returns the canonical encoding of the signature.
func (sig *Signature) Encode() ([]byte, error) {
	m := cbor.NewMap()
	if len(sig.RequestID) > 0 {
		m.PutTaggedBytes(sigKeyRequestID, registry.UUID.Tag(), sig.RequestID)
	}
	m.PutBytes(sigKeyWitnessSet, sig.WitnessSet)
	return m.Bytes()
}

// DecodeSignature decodes a signature record. Unrecognized keys are
// ignored; the request-id tag is validated.
func DecodeSignature(data []byte) (*Signature, error) {
	sig := &Signature{}
	err := cbor.DecodeMap(data, func(key uint64, r *cbor.Reader) error {
		switch key {
		case sigKeyRequestID:
			b, err := r.TaggedBytes(registry.UUID.Tag())
			if err != nil {
				return err
			}
			sig.RequestID = b
		case sigKeyWitnessSet:
			b, err := r.Bytes()
			if err != nil {
				return err
			}
			sig.WitnessSet = b
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("decode signature: %w", err)
	}
	return sig, nil
}

// RequestUUID returns the request identifier as a UUID.
func (sig *Signature) RequestUUID() (uuid.UUID, error) {
	return uuid.FromBytes(sig.RequestID)
}

// SetRequestUUID sets the request identifier from a UUID.
func (sig *Signature) SetRequestUUID(id uuid.UUID) {
	sig.RequestID = append([]byte(nil), id[:]...)
}

package cardano

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ursign-protocol/ursign-go/pkg/cbor"
	"github.com/ursign-protocol/ursign-go/pkg/registry"
)

// CBOR map keys for the sign request record.
const (
	reqKeyRequestID = 1
	reqKeySignData  = 2
	reqKeyUTXOs     = 3
	reqKeyCertKeys  = 4
	reqKeyOrigin    = 5
)

// SignRequest asks an offline signer to sign a Cardano transaction.
//
// The request-id and origin fields are optional; when unset (nil and
// empty string respectively) they are omitted from the encoding
// entirely. The UTXO and certificate key sequences are always encoded,
// even when empty.
type SignRequest struct {
	// RequestID is a 16-byte UUID correlating the signature with the
	// request. nil = not set.
	RequestID []byte

	// SignData is the CBOR-serialized transaction body to sign.
	SignData []byte

	// UTXOs are the unspent outputs the transaction spends.
	UTXOs []UTXO

	// CertKeys are the stake credentials referenced by the
	// transaction's certificates.
	CertKeys []CertKey

	// Origin identifies the requesting application, e.g.
	// "cardano-wallet". Empty = not set.
	Origin string
}

var _ registry.Item = (*SignRequest)(nil)

// RegistryType returns the registered cardano-sign-request type.
func (req *SignRequest) RegistryType() registry.Type {
	return registry.CardanoSignRequest
}

// Encode returns the canonical encoding of the request: fields in
// ascending key order, absent optionals omitted from both the map
// header count and the body.
func (req *SignRequest) Encode() ([]byte, error) {
	m := cbor.NewMap()

	if len(req.RequestID) > 0 {
		m.PutTaggedBytes(reqKeyRequestID, registry.UUID.Tag(), req.RequestID)
	}

	m.PutBytes(reqKeySignData, req.SignData)

	utxos := make([]cbor.RawMessage, len(req.UTXOs))
	for i := range req.UTXOs {
		raw, err := req.UTXOs[i].Encode()
		if err != nil {
			return nil, fmt.Errorf("encode utxo %d: %w", i, err)
		}
		utxos[i] = raw
	}
	m.PutTaggedArray(reqKeyUTXOs, registry.CardanoUTXO.Tag(), utxos)

	certKeys := make([]cbor.RawMessage, len(req.CertKeys))
	for i := range req.CertKeys {
		raw, err := req.CertKeys[i].Encode()
		if err != nil {
			return nil, fmt.Errorf("encode cert key %d: %w", i, err)
		}
		certKeys[i] = raw
	}
	m.PutTaggedArray(reqKeyCertKeys, registry.CardanoCertKey.Tag(), certKeys)

	if req.Origin != "" {
		m.PutText(reqKeyOrigin, req.Origin)
	}

	return m.Bytes()
}

// DecodeSignRequest decodes a sign request record. Unrecognized keys
// are ignored; nested tags are validated against the registry.
func DecodeSignRequest(data []byte) (*SignRequest, error) {
	req := &SignRequest{}
	err := cbor.DecodeMap(data, func(key uint64, r *cbor.Reader) error {
		switch key {
		case reqKeyRequestID:
			b, err := r.TaggedBytes(registry.UUID.Tag())
			if err != nil {
				return err
			}
			req.RequestID = b
		case reqKeySignData:
			b, err := r.Bytes()
			if err != nil {
				return err
			}
			req.SignData = b
		case reqKeyUTXOs:
			items, err := r.Array()
			if err != nil {
				return err
			}
			var utxos []UTXO
			for i, item := range items {
				content, err := cbor.UnwrapTag(item, registry.CardanoUTXO.Tag())
				if err != nil {
					return fmt.Errorf("utxo %d: %w", i, err)
				}
				u, err := DecodeUTXO(content)
				if err != nil {
					return fmt.Errorf("utxo %d: %w", i, err)
				}
				utxos = append(utxos, *u)
			}
			req.UTXOs = utxos
		case reqKeyCertKeys:
			items, err := r.Array()
			if err != nil {
				return err
			}
			var certKeys []CertKey
			for i, item := range items {
				content, err := cbor.UnwrapTag(item, registry.CardanoCertKey.Tag())
				if err != nil {
					return fmt.Errorf("cert key %d: %w", i, err)
				}
				c, err := DecodeCertKey(content)
				if err != nil {
					return fmt.Errorf("cert key %d: %w", i, err)
				}
				certKeys = append(certKeys, *c)
			}
			req.CertKeys = certKeys
		case reqKeyOrigin:
			s, err := r.Text()
			if err != nil {
				return err
			}
			req.Origin = s
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("decode sign request: %w", err)
	}
	return req, nil
}

// RequestUUID returns the request identifier as a UUID.
func (req *SignRequest) RequestUUID() (uuid.UUID, error) {
	return uuid.FromBytes(req.RequestID)
}

// SetRequestUUID sets the request identifier from a UUID.
func (req *SignRequest) SetRequestUUID(id uuid.UUID) {
	req.RequestID = append([]byte(nil), id[:]...)
}

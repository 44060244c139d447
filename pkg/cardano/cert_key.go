package cardano

import (
	"fmt"

	"github.com/ursign-protocol/ursign-go/pkg/cbor"
	"github.com/ursign-protocol/ursign-go/pkg/keypath"
	"github.com/ursign-protocol/ursign-go/pkg/registry"
)

// CBOR map keys for the certificate key record.
const (
	certKeyKeyHash = 1
	certKeyKeyPath = 2
)

// CertKey names one stake credential involved in the certificates of
// a transaction, with the derivation path of the signing key.
type CertKey struct {
	// KeyHash is the 28-byte blake2b-224 hash of the stake key.
	KeyHash []byte

	// KeyPath is the derivation path of the stake key.
	KeyPath keypath.KeyPath
}

var _ registry.Item = (*CertKey)(nil)

// RegistryType returns the registered cardano-cert-key type.
func (c *CertKey) RegistryType() registry.Type {
	return registry.CardanoCertKey
}

// Encode returns the canonical encoding of the certificate key. The
// registry tag is not included; the embedding sequence writes it per
// element.
func (c *CertKey) Encode() ([]byte, error) {
	kp, err := c.KeyPath.Encode()
	if err != nil {
		return nil, fmt.Errorf("encode cert key keypath: %w", err)
	}

	m := cbor.NewMap()
	m.PutBytes(certKeyKeyHash, c.KeyHash)
	m.PutTagged(certKeyKeyPath, registry.CryptoKeyPath.Tag(), kp)
	return m.Bytes()
}

// DecodeCertKey decodes a certificate key record. Unrecognized keys
// are ignored.
func DecodeCertKey(data []byte) (*CertKey, error) {
	c := &CertKey{}
	err := cbor.DecodeMap(data, func(key uint64, r *cbor.Reader) error {
		switch key {
		case certKeyKeyHash:
			b, err := r.Bytes()
			if err != nil {
				return err
			}
			c.KeyHash = b
		case certKeyKeyPath:
			content, err := r.Tagged(registry.CryptoKeyPath.Tag())
			if err != nil {
				return err
			}
			kp, err := keypath.Decode(content)
			if err != nil {
				return err
			}
			c.KeyPath = *kp
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("decode cert key: %w", err)
	}
	return c, nil
}

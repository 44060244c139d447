package cardano

import (
	"fmt"

	"github.com/ursign-protocol/ursign-go/pkg/cbor"
	"github.com/ursign-protocol/ursign-go/pkg/keypath"
	"github.com/ursign-protocol/ursign-go/pkg/registry"
)

// CBOR map keys for the UTXO record.
const (
	utxoKeyTransactionHash = 1
	utxoKeyIndex           = 2
	utxoKeyAmount          = 3
	utxoKeyKeyPath         = 4
	utxoKeyAddress         = 5
)

// UTXO is one unspent transaction output referenced by a signing
// request. All fields are always present.
type UTXO struct {
	// TransactionHash is the 32-byte hash of the transaction that
	// created the output.
	TransactionHash []byte

	// Index is the output's position in that transaction.
	Index uint32

	// Amount is the output value in lovelace.
	Amount uint64

	// KeyPath is the derivation path of the key controlling the
	// output.
	KeyPath keypath.KeyPath

	// Address is the bech32 payment address of the output.
	Address string
}

var _ registry.Item = (*UTXO)(nil)

// RegistryType returns the registered cardano-utxo type.
func (u *UTXO) RegistryType() registry.Type {
	return registry.CardanoUTXO
}

// Encode returns the canonical encoding of the UTXO. The registry tag
// is not included; the embedding sequence writes it per element.
func (u *UTXO) Encode() ([]byte, error) {
	kp, err := u.KeyPath.Encode()
	if err != nil {
		return nil, fmt.Errorf("encode utxo keypath: %w", err)
	}

	m := cbor.NewMap()
	m.PutBytes(utxoKeyTransactionHash, u.TransactionHash)
	m.PutUint(utxoKeyIndex, uint64(u.Index))
	m.PutUint(utxoKeyAmount, u.Amount)
	m.PutTagged(utxoKeyKeyPath, registry.CryptoKeyPath.Tag(), kp)
	m.PutText(utxoKeyAddress, u.Address)
	return m.Bytes()
}

// DecodeUTXO decodes a UTXO record. Unrecognized keys are ignored.
func DecodeUTXO(data []byte) (*UTXO, error) {
	u := &UTXO{}
	err := cbor.DecodeMap(data, func(key uint64, r *cbor.Reader) error {
		switch key {
		case utxoKeyTransactionHash:
			b, err := r.Bytes()
			if err != nil {
				return err
			}
			u.TransactionHash = b
		case utxoKeyIndex:
			v, err := r.Uint32()
			if err != nil {
				return err
			}
			u.Index = v
		case utxoKeyAmount:
			v, err := r.Uint()
			if err != nil {
				return err
			}
			u.Amount = v
		case utxoKeyKeyPath:
			content, err := r.Tagged(registry.CryptoKeyPath.Tag())
			if err != nil {
				return err
			}
			kp, err := keypath.Decode(content)
			if err != nil {
				return err
			}
			u.KeyPath = *kp
		case utxoKeyAddress:
			s, err := r.Text()
			if err != nil {
				return err
			}
			u.Address = s
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("decode utxo: %w", err)
	}
	return u, nil
}

// Package keypath implements the derivation-path record (BCR-2020-007
// crypto-keypath) used by signing request UTXOs and certificate keys
// to name the key a wallet should sign with.
package keypath

import (
	"fmt"
	"strings"

	"github.com/ursign-protocol/ursign-go/pkg/cbor"
	"github.com/ursign-protocol/ursign-go/pkg/registry"
)

// CBOR map keys for the keypath record.
const (
	keyComponents        = 1
	keySourceFingerprint = 2
	keyDepth             = 3
)

// PathComponent is one step of a BIP-32 derivation path.
type PathComponent struct {
	// Index is the child index. Ignored when Wildcard is set.
	Index uint32

	// Hardened marks a hardened derivation step.
	Hardened bool

	// Wildcard marks a position that matches any child index.
	Wildcard bool
}

// KeyPath is a derivation path with optional key-source metadata.
//
// The components are always encoded; fingerprint and depth are
// optional, with the zero value meaning not set.
type KeyPath struct {
	Components []PathComponent

	// SourceFingerprint is the BIP-32 fingerprint of the master key
	// the path derives from. 0 = not set.
	SourceFingerprint uint32

	// Depth is the number of derivation steps from the master key,
	// for paths whose components are relative. 0 = not set.
	Depth uint8
}

var _ registry.Item = (*KeyPath)(nil)

// RegistryType returns the registered crypto-keypath type.
func (p *KeyPath) RegistryType() registry.Type {
	return registry.CryptoKeyPath
}

// Encode returns the canonical encoding of the path. The registry tag
// is not included; the embedding record writes it.
func (p *KeyPath) Encode() ([]byte, error) {
	comps := make([]cbor.RawMessage, 0, 2*len(p.Components))
	for i, c := range p.Components {
		var index any = c.Index
		if c.Wildcard {
			index = []any{} // wildcard position encodes as an empty array
		}
		raw, err := cbor.Marshal(index)
		if err != nil {
			return nil, fmt.Errorf("path component %d: %w", i, err)
		}
		comps = append(comps, raw)
		raw, err = cbor.Marshal(c.Hardened)
		if err != nil {
			return nil, fmt.Errorf("path component %d: %w", i, err)
		}
		comps = append(comps, raw)
	}

	m := cbor.NewMap()
	m.PutArray(keyComponents, comps)
	if p.SourceFingerprint != 0 {
		m.PutUint(keySourceFingerprint, uint64(p.SourceFingerprint))
	}
	if p.Depth != 0 {
		m.PutUint(keyDepth, uint64(p.Depth))
	}
	return m.Bytes()
}

// Decode decodes a keypath record. Unrecognized keys are ignored.
func Decode(data []byte) (*KeyPath, error) {
	p := &KeyPath{}
	err := cbor.DecodeMap(data, func(key uint64, r *cbor.Reader) error {
		switch key {
		case keyComponents:
			items, err := r.Array()
			if err != nil {
				return err
			}
			comps, err := decodeComponents(items)
			if err != nil {
				return err
			}
			p.Components = comps
		case keySourceFingerprint:
			u, err := r.Uint32()
			if err != nil {
				return err
			}
			p.SourceFingerprint = u
		case keyDepth:
			u, err := r.Uint8()
			if err != nil {
				return err
			}
			p.Depth = u
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("decode keypath: %w", err)
	}
	return p, nil
}

// decodeComponents parses the alternating index/hardened component
// array. A wildcard index is an empty array in place of the integer.
func decodeComponents(items []cbor.RawMessage) ([]PathComponent, error) {
	if len(items)%2 != 0 {
		return nil, fmt.Errorf("components: odd element count %d", len(items))
	}
	var comps []PathComponent
	for i := 0; i < len(items); i += 2 {
		var c PathComponent
		var index uint32
		if err := cbor.Unmarshal(items[i], &index); err != nil {
			var wild []cbor.RawMessage
			if werr := cbor.Unmarshal(items[i], &wild); werr != nil || len(wild) != 0 {
				return nil, fmt.Errorf("component %d index: %w", i/2, err)
			}
			c.Wildcard = true
		} else {
			c.Index = index
		}
		if err := cbor.Unmarshal(items[i+1], &c.Hardened); err != nil {
			return nil, fmt.Errorf("component %d hardened flag: %w", i/2, err)
		}
		comps = append(comps, c)
	}
	return comps, nil
}

// String renders the path in the usual notation, e.g. "1852'/1815'/0'/0/0".
// Wildcard positions render as "*".
func (p *KeyPath) String() string {
	parts := make([]string, len(p.Components))
	for i, c := range p.Components {
		switch {
		case c.Wildcard && c.Hardened:
			parts[i] = "*'"
		case c.Wildcard:
			parts[i] = "*"
		case c.Hardened:
			parts[i] = fmt.Sprintf("%d'", c.Index)
		default:
			parts[i] = fmt.Sprintf("%d", c.Index)
		}
	}
	return strings.Join(parts, "/")
}

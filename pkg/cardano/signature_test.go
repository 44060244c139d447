package cardano_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ursign-protocol/ursign-go/pkg/cardano"
	"github.com/ursign-protocol/ursign-go/pkg/cbor"
	"github.com/ursign-protocol/ursign-go/pkg/registry"
)

func TestSignatureGoldenVector(t *testing.T) {
	sig := cardano.Signature{
		RequestID:  mustHex(t, "9b1deb4d3b7d4bad9bdd2b0d7b3dcb6d"),
		WitnessSet: mustHex(t, "00112233"),
	}

	data, err := sig.Encode()
	require.NoError(t, err)
	assert.Equal(t, "a201d825509b1deb4d3b7d4bad9bdd2b0d7b3dcb6d024400112233", hex.EncodeToString(data))

	decoded, err := cardano.DecodeSignature(data)
	require.NoError(t, err)
	assert.Equal(t, &sig, decoded)
}

func TestSignatureRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		sig  cardano.Signature
	}{
		{
			name: "witness set only",
			sig: cardano.Signature{
				WitnessSet: []byte{0xde, 0xad, 0xbe, 0xef},
			},
		},
		{
			name: "with request id",
			sig: cardano.Signature{
				RequestID:  cardano.NewRequestID(),
				WitnessSet: []byte{0xde, 0xad, 0xbe, 0xef},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := tt.sig.Encode()
			require.NoError(t, err)

			decoded, err := cardano.DecodeSignature(data)
			require.NoError(t, err)
			assert.Equal(t, &tt.sig, decoded)
		})
	}
}

func TestSignatureMapSize(t *testing.T) {
	sig := cardano.Signature{WitnessSet: []byte{0x01}}

	data, err := sig.Encode()
	require.NoError(t, err)
	assert.Equal(t, byte(0xa1), data[0])

	sig.RequestID = cardano.NewRequestID()
	data, err = sig.Encode()
	require.NoError(t, err)
	assert.Equal(t, byte(0xa2), data[0])
}

func TestSignatureRequestIDTagEnforcement(t *testing.T) {
	build := func(tag uint64) []byte {
		m := cbor.NewMap()
		m.PutTaggedBytes(1, tag, []byte{0x9b, 0x1d})
		m.PutBytes(2, []byte{0x01})
		data, err := m.Bytes()
		require.NoError(t, err)
		return data
	}

	_, err := cardano.DecodeSignature(build(registry.CryptoKeyPath.Tag()))
	require.Error(t, err)
	assert.ErrorIs(t, err, cbor.ErrTagMismatch)

	decoded, err := cardano.DecodeSignature(build(registry.UUID.Tag()))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x9b, 0x1d}, decoded.RequestID)
}

func TestSignatureUnknownKeyTolerance(t *testing.T) {
	m := cbor.NewMap()
	m.PutBytes(2, []byte{0x0a})
	m.PutText(7, "ignored")
	data, err := m.Bytes()
	require.NoError(t, err)

	decoded, err := cardano.DecodeSignature(data)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x0a}, decoded.WitnessSet)
	assert.Nil(t, decoded.RequestID)
}

func TestSignatureRegistryType(t *testing.T) {
	var sig cardano.Signature
	assert.Equal(t, registry.CardanoSignature, sig.RegistryType())
}

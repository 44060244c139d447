// Package cardano implements the Cardano wallet-signing records: the
// signing request a host application sends to an offline signer and
// the signature record the signer returns.
//
// Each record is a tagged CBOR map with fixed integer field keys,
// encoded and decoded through pkg/cbor. Field keys are stable across
// versions; decoders ignore keys they do not recognize, so payloads
// from newer senders still decode.
//
// # Records
//
//   - SignRequest: the transaction to sign, the UTXOs it spends, and
//     the certificate keys involved (tag 2205).
//   - Signature: the witness set produced by the signer (tag 2206).
//   - UTXO: one unspent output with its derivation path (tag 2201).
//   - CertKey: one certificate key with its derivation path (tag 2204).
//
// Nested records always carry their registry tag: UTXOs and cert keys
// are tagged inside the request's sequences, derivation paths carry
// tag 304, and request identifiers are tag-37 UUID byte strings.
package cardano

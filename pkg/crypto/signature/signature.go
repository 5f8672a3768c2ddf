// Copyright 2026 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package signature implements domain-separated signing and verification.
// The signature primitive never sees the payload directly: it signs the
// digest of the domain separation context concatenated with the canonically
// encoded payload, so a signature is only ever valid for one purpose on one
// deployment.
package signature

import (
	"crypto/ed25519"
	"encoding/hex"

	"gitlab.com/meridiannetwork/meridian/pkg/crypto/hash"
	"gitlab.com/meridiannetwork/meridian/pkg/errors"
)

const (
	// PublicKeySize is the size of a public key in bytes.
	PublicKeySize = ed25519.PublicKeySize

	// SignatureSize is the size of a signature in bytes.
	SignatureSize = ed25519.SignatureSize
)

// PrepareSignerMessage builds the message the signature primitive actually
// signs: the digest of the context followed by the payload. The order is
// context first, payload second; swapping it breaks compatibility.
func PrepareSignerMessage(ctx Context, message []byte) []byte {
	h := hash.New([]byte(ctx), message)
	return h[:]
}

// PublicKey is an Ed25519 public key.
type PublicKey [PublicKeySize]byte

// PublicKeyFromBytes converts a byte slice to a public key.
func PublicKeyFromBytes(data []byte) (PublicKey, error) {
	var pk PublicKey
	if len(data) != PublicKeySize {
		return pk, errors.ErrKeyMaterial.WithFormat("public key must be %d bytes, got %d", PublicKeySize, len(data))
	}
	copy(pk[:], data)
	return pk, nil
}

// Verify returns true iff sig is a valid signature by pk over the context
// and message. An invalid or malformed signature yields false, never an
// error: a bad signature is an expected outcome of verifying untrusted
// input, not a fault.
func (pk PublicKey) Verify(ctx Context, message, sig []byte) bool {
	if len(sig) != SignatureSize {
		return false
	}
	return ed25519.Verify(pk[:], PrepareSignerMessage(ctx, message), sig)
}

// Equal compares two public keys.
func (pk PublicKey) Equal(other PublicKey) bool { return pk == other }

// String returns the lowercase hex form of the public key.
func (pk PublicKey) String() string { return hex.EncodeToString(pk[:]) }

// MarshalBinary implements encoding.BinaryMarshaler.
func (pk PublicKey) MarshalBinary() ([]byte, error) {
	return append([]byte(nil), pk[:]...), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (pk *PublicKey) UnmarshalBinary(data []byte) error {
	k, err := PublicKeyFromBytes(data)
	if err != nil {
		return err
	}
	*pk = k
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (pk PublicKey) MarshalText() ([]byte, error) {
	return []byte(pk.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (pk *PublicKey) UnmarshalText(text []byte) error {
	if len(text) != 2*PublicKeySize {
		return errors.ErrKeyMaterial.WithFormat("public key text must be %d characters, got %d", 2*PublicKeySize, len(text))
	}
	var k PublicKey
	if _, err := hex.Decode(k[:], text); err != nil {
		return errors.ErrKeyMaterial.Wrap(err)
	}
	*pk = k
	return nil
}

// Signer is the key management seam. Implementations hold the private key -
// in memory, in a file, or behind a hardware handle - and must behave as
// immutable after construction. If a backend needs exclusive access, that
// constraint is the caller's to impose; this package never serializes calls.
type Signer interface {
	// Public returns the signer's public key.
	Public() PublicKey

	// Sign signs the message under the given domain separation context.
	Sign(ctx Context, message []byte) ([]byte, error)
}

// Signature is a public key and a signature produced by its private key over
// a prepared message.
type Signature struct {
	PublicKey PublicKey `cbor:"public_key" json:"public_key"`
	Signature []byte    `cbor:"signature" json:"signature"`
}

// Sign signs the message under the given context and returns the resulting
// public key and signature pair.
func Sign(signer Signer, ctx Context, message []byte) (*Signature, error) {
	raw, err := signer.Sign(ctx, message)
	if err != nil {
		return nil, err
	}
	return &Signature{PublicKey: signer.Public(), Signature: raw}, nil
}

// Verify returns true iff the signature is valid over the context and
// message.
func (s *Signature) Verify(ctx Context, message []byte) bool {
	return s.PublicKey.Verify(ctx, message, s.Signature)
}

// Copyright 2026 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package ed25519 provides an in-memory Ed25519 signer.
package ed25519

import (
	"crypto/ed25519"
	"crypto/rand"
	"io"

	"gitlab.com/meridiannetwork/meridian/pkg/crypto/signature"
	"gitlab.com/meridiannetwork/meridian/pkg/errors"
)

// SeedSize is the size of a private key seed in bytes.
const SeedSize = ed25519.SeedSize

// Signer is an in-memory Ed25519 signer. The private key is treated as
// immutable after construction.
type Signer struct {
	priv ed25519.PrivateKey
}

var _ signature.Signer = (*Signer)(nil)

// GenerateSigner generates a new signer from entropy. A nil rng uses
// crypto/rand.
func GenerateSigner(rng io.Reader) (*Signer, error) {
	if rng == nil {
		rng = rand.Reader
	}
	_, priv, err := ed25519.GenerateKey(rng)
	if err != nil {
		return nil, err
	}
	return &Signer{priv: priv}, nil
}

// NewSigner creates a signer from a private key seed.
func NewSigner(seed []byte) (*Signer, error) {
	if len(seed) != SeedSize {
		return nil, errors.ErrKeyMaterial.WithFormat("seed must be %d bytes, got %d", SeedSize, len(seed))
	}
	return &Signer{priv: ed25519.NewKeyFromSeed(seed)}, nil
}

// Public returns the signer's public key.
func (s *Signer) Public() signature.PublicKey {
	var pk signature.PublicKey
	copy(pk[:], s.priv.Public().(ed25519.PublicKey))
	return pk
}

// Sign signs the message under the given domain separation context.
func (s *Signer) Sign(ctx signature.Context, message []byte) ([]byte, error) {
	return ed25519.Sign(s.priv, signature.PrepareSignerMessage(ctx, message)), nil
}

// Seed returns the signer's private key seed.
func (s *Signer) Seed() []byte {
	return s.priv.Seed()
}

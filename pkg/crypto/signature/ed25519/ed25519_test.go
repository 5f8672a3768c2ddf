// Copyright 2026 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package ed25519_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"gitlab.com/meridiannetwork/meridian/pkg/crypto/signature"
	"gitlab.com/meridiannetwork/meridian/pkg/crypto/signature/ed25519"
	"gitlab.com/meridiannetwork/meridian/pkg/errors"
)

func TestGenerateSigner(t *testing.T) {
	a, err := ed25519.GenerateSigner(nil)
	require.NoError(t, err)
	b, err := ed25519.GenerateSigner(nil)
	require.NoError(t, err)
	require.False(t, a.Public().Equal(b.Public()))
}

func TestDeterministicFromSeed(t *testing.T) {
	seed := bytes.Repeat([]byte{0x42}, ed25519.SeedSize)
	a, err := ed25519.NewSigner(seed)
	require.NoError(t, err)
	b, err := ed25519.NewSigner(seed)
	require.NoError(t, err)
	require.True(t, a.Public().Equal(b.Public()))
	require.Equal(t, seed, a.Seed())

	sigA, err := a.Sign("ctx", []byte("msg"))
	require.NoError(t, err)
	sigB, err := b.Sign("ctx", []byte("msg"))
	require.NoError(t, err)
	require.Equal(t, sigA, sigB, "Ed25519 signing is deterministic")
}

func TestBadSeed(t *testing.T) {
	_, err := ed25519.NewSigner(make([]byte, 16))
	require.ErrorIs(t, err, errors.ErrKeyMaterial)
}

func TestSignVerifiesUnderPublicKey(t *testing.T) {
	signer, err := ed25519.GenerateSigner(nil)
	require.NoError(t, err)
	ctx := signature.Context("test: tx")
	sig, err := signer.Sign(ctx, []byte("msg"))
	require.NoError(t, err)
	require.True(t, signer.Public().Verify(ctx, []byte("msg"), sig))
}

// Copyright 2026 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package signature

import (
	"gitlab.com/meridiannetwork/meridian/pkg/cbor"
	"gitlab.com/meridiannetwork/meridian/pkg/errors"
)

// Signed is a signed envelope: a raw canonical encoding of some payload
// together with a signature over it. The blob is untrusted until Open
// succeeds; nothing decodes or acts on it before then. Construction performs
// no validation - validation is exclusively the verifier's job.
type Signed struct {
	// Blob is the canonically encoded payload. Untrusted.
	Blob []byte `cbor:"untrusted_raw_value" json:"untrusted_raw_value"`

	// Signature is the signature over the blob.
	Signature Signature `cbor:"signature" json:"signature"`
}

// SignSigned canonically encodes v and signs it under the given context.
func SignSigned(signer Signer, ctx Context, v interface{}) (*Signed, error) {
	blob := cbor.Marshal(v)
	sig, err := Sign(signer, ctx, blob)
	if err != nil {
		return nil, err
	}
	return &Signed{Blob: blob, Signature: *sig}, nil
}

// Open verifies the envelope's signature under the given context and returns
// the raw payload. The caller is responsible for decoding it. Verification
// never mutates the envelope, so a failed Open leaves it intact for
// diagnostics and an envelope can be opened any number of times.
func (s *Signed) Open(ctx Context) ([]byte, error) {
	if !s.Signature.Verify(ctx, s.Blob) {
		return nil, errors.ErrVerification.WithFormat("context %q, public key %s", ctx, s.Signature.PublicKey)
	}
	return s.Blob, nil
}

// MultiSigned is a signed envelope carrying an ordered sequence of
// signatures, all over the same payload.
type MultiSigned struct {
	// Blob is the canonically encoded payload. Untrusted.
	Blob []byte `cbor:"untrusted_raw_value" json:"untrusted_raw_value"`

	// Signatures are the signatures over the blob.
	Signatures []Signature `cbor:"signatures" json:"signatures"`
}

// SignMultiSigned canonically encodes v and signs it under the given context
// with every signer, in order.
func SignMultiSigned(signers []Signer, ctx Context, v interface{}) (*MultiSigned, error) {
	blob := cbor.Marshal(v)
	sigs := make([]Signature, 0, len(signers))
	for _, signer := range signers {
		sig, err := Sign(signer, ctx, blob)
		if err != nil {
			return nil, err
		}
		sigs = append(sigs, *sig)
	}
	return &MultiSigned{Blob: blob, Signatures: sigs}, nil
}

// Open verifies every signature in the envelope against the same prepared
// message and returns the raw payload. Verification is all or nothing: the
// first invalid signature fails the open, identified by its index. There is
// no quorum or threshold notion at this layer; callers wanting M-of-N accept
// policies must verify signatures individually and decide above this
// primitive.
func (m *MultiSigned) Open(ctx Context) ([]byte, error) {
	if len(m.Signatures) == 0 {
		return nil, errors.ErrVerification.WithFormat("envelope carries no signatures")
	}
	for i := range m.Signatures {
		if !m.Signatures[i].Verify(ctx, m.Blob) {
			return nil, errors.ErrVerification.WithFormat("signature %d of %d, public key %s", i, len(m.Signatures), m.Signatures[i].PublicKey)
		}
	}
	return m.Blob, nil
}

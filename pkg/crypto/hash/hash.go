// Copyright 2026 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package hash implements the digest used for signing inputs and for
// content-addressed identifiers. The construction is SHA-512/256: the
// 512-bit-block compression function with its own initialization vector,
// truncated to 256 bits. Substituting a different 256-bit hash would break
// identifier compatibility with every interoperating implementation, even
// though the output size matches.
package hash

import (
	"crypto/sha512"
	"encoding/hex"

	"gitlab.com/meridiannetwork/meridian/pkg/cbor"
	"gitlab.com/meridiannetwork/meridian/pkg/errors"
)

// Size is the digest size in bytes.
const Size = sha512.Size256

// Hash is a 32-byte digest.
type Hash [Size]byte

// New returns the digest of the concatenation of the given byte slices.
func New(data ...[]byte) Hash {
	h := sha512.New512_256()
	for _, d := range data {
		_, _ = h.Write(d)
	}
	var out Hash
	h.Sum(out[:0])
	return out
}

// NewFromValue returns the digest of the canonical encoding of v.
func NewFromValue(v interface{}) Hash {
	return New(cbor.Marshal(v))
}

// Equal compares two digests.
func (h Hash) Equal(other Hash) bool { return h == other }

// IsZero returns true if the digest is all zeroes.
func (h Hash) IsZero() bool { return h == Hash{} }

// String returns the lowercase hex form of the digest. This is the textual
// form used for chain contexts and content identifiers.
func (h Hash) String() string { return hex.EncodeToString(h[:]) }

// MarshalText implements encoding.TextMarshaler.
func (h Hash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *Hash) UnmarshalText(text []byte) error {
	if len(text) != 2*Size {
		return errors.ErrDecode.WithFormat("digest text must be %d characters, got %d", 2*Size, len(text))
	}
	_, err := hex.Decode(h[:], text)
	if err != nil {
		return errors.ErrDecode.Wrap(err)
	}
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (h Hash) MarshalBinary() ([]byte, error) {
	return append([]byte(nil), h[:]...), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (h *Hash) UnmarshalBinary(data []byte) error {
	if len(data) != Size {
		return errors.ErrDecode.WithFormat("digest must be %d bytes, got %d", Size, len(data))
	}
	copy(h[:], data)
	return nil
}

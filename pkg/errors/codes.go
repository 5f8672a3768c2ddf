// Copyright 2026 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package errors

// The full code table. None of these conditions is transient, so none should
// ever be retried by the caller; retry policy belongs to the transport layer.
var (
	// ErrDecode indicates malformed canonical-encoding input.
	ErrDecode = Define("cbor", 1, "malformed canonical encoding")

	// ErrVerification indicates a cryptographically invalid signature.
	// This is an expected outcome of verifying untrusted input, not a bug,
	// but it must never be conflated with a decoding failure.
	ErrVerification = Define("signature", 1, "signature verification failed")

	// ErrKeyMaterial indicates public or private key bytes of the wrong
	// length or form.
	ErrKeyMaterial = Define("signature", 2, "malformed key material")

	// ErrInvalidConfig indicates a malformed network configuration.
	ErrInvalidConfig = Define("config", 1, "invalid configuration")
)

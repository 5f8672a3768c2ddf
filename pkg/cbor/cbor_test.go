// Copyright 2026 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package cbor_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"gitlab.com/meridiannetwork/meridian/pkg/cbor"
	"gitlab.com/meridiannetwork/meridian/pkg/errors"
)

func TestMarshalCanonical(t *testing.T) {
	// Go map iteration order is random; canonical encoding must not be.
	want := cbor.Marshal(map[string]int{"nonce": 7})
	require.Equal(t, "a1656e6f6e636507", hex.EncodeToString(want))
	for i := 0; i < 16; i++ {
		require.Equal(t, want, cbor.Marshal(map[string]int{"nonce": 7}))
	}
}

func TestMarshalStructRoundTrip(t *testing.T) {
	type payload struct {
		Nonce uint64 `cbor:"nonce"`
		Body  []byte `cbor:"body"`
	}
	in := payload{Nonce: 7, Body: []byte{1, 2, 3}}
	var out payload
	require.NoError(t, cbor.Unmarshal(cbor.Marshal(in), &out))
	require.Equal(t, in, out)
}

func TestUnmarshalEmptyLeavesDstUntouched(t *testing.T) {
	v := map[string]int{"x": 1}
	require.NoError(t, cbor.Unmarshal(nil, &v))
	require.Equal(t, map[string]int{"x": 1}, v)
}

func TestUnmarshalMalformed(t *testing.T) {
	var v map[string]int
	err := cbor.Unmarshal([]byte{0xa1, 0x61}, &v)
	require.ErrorIs(t, err, errors.ErrDecode)
}

func TestMarshalInteropWithValueEncoder(t *testing.T) {
	// The typed codec and the Value encoder must agree byte for byte.
	typed := cbor.Marshal(map[string]interface{}{
		"z":  uint64(1),
		"aa": []byte{0xff},
	})
	generic, err := cbor.EncodeValue(cbor.NewRecord(
		cbor.Field{Key: "aa", Value: cbor.Bytes{0xff}},
		cbor.Field{Key: "z", Value: cbor.NewUint(1)},
	))
	require.NoError(t, err)
	require.Equal(t, typed, generic)

	// And the Value decoder must accept the typed codec's output.
	v, err := cbor.DecodeValue(typed)
	require.NoError(t, err)
	require.Equal(t, cbor.KindRecord, v.Kind())
}

// Copyright 2026 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package cbor_test

import (
	"encoding/hex"
	"math"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"gitlab.com/meridiannetwork/meridian/pkg/cbor"
	"gitlab.com/meridiannetwork/meridian/pkg/errors"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestEncodeVectors(t *testing.T) {
	cases := []struct {
		name  string
		value cbor.Value
		hex   string
	}{
		{"null", cbor.Null{}, "f6"},
		{"false", cbor.Bool(false), "f4"},
		{"true", cbor.Bool(true), "f5"},
		{"zero", cbor.NewInt(0), "00"},
		{"23", cbor.NewInt(23), "17"},
		{"24", cbor.NewInt(24), "1818"},
		{"256", cbor.NewInt(256), "190100"},
		{"max-uint64", cbor.NewUint(math.MaxUint64), "1bffffffffffffffff"},
		{"-1", cbor.NewInt(-1), "20"},
		{"-24", cbor.NewInt(-24), "37"},
		{"-25", cbor.NewInt(-25), "3818"},
		{"bignum", cbor.NewBigInt(new(big.Int).Lsh(big.NewInt(1), 64)), "c249010000000000000000"},
		{"neg-bignum", cbor.NewBigInt(new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 65))), "c34901ffffffffffffffff"},
		{"bytes", cbor.Bytes{1, 2, 3}, "43010203"},
		{"text", cbor.Text("abc"), "63616263"},
		{"seq", cbor.Sequence{cbor.NewInt(1), cbor.Text("a")}, "82016161"},
		{"record", cbor.NewRecord(cbor.Field{Key: "nonce", Value: cbor.NewInt(7)}), "a1656e6f6e636507"},
		{"empty-record", cbor.NewRecord(), "a0"},
		{"half", cbor.Float(0.5), "f93800"},
		{"double", cbor.Float(1.1), "fb3ff199999999999a"},
		{"inf", cbor.Float(math.Inf(1)), "f97c00"},
		{"nan", cbor.Float(math.NaN()), "f97e00"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			data, err := cbor.EncodeValue(c.value)
			require.NoError(t, err)
			require.Equal(t, c.hex, hex.EncodeToString(data))
		})
	}
}

func TestNegBignumBoundary(t *testing.T) {
	// -2^64 is the most negative value still expressible without a bignum.
	v := new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 64))
	data, err := cbor.EncodeValue(cbor.NewBigInt(v))
	require.NoError(t, err)
	require.Equal(t, "3bffffffffffffffff", hex.EncodeToString(data))

	decoded, err := cbor.DecodeValue(data)
	require.NoError(t, err)
	require.Equal(t, 0, decoded.(cbor.Int).BigInt().Cmp(v))
}

func TestRoundTrip(t *testing.T) {
	// Encode, decode, re-encode: the second encoding must be byte-identical.
	values := []cbor.Value{
		cbor.Null{},
		cbor.Bool(true),
		cbor.NewInt(-123456789),
		cbor.NewUint(math.MaxUint64),
		cbor.NewBigInt(new(big.Int).Lsh(big.NewInt(3), 100)),
		cbor.Bytes{},
		cbor.Bytes{0xde, 0xad},
		cbor.Text("héllo"),
		cbor.Float(2.5),
		cbor.Sequence{cbor.Null{}, cbor.Sequence{cbor.NewInt(1)}},
		cbor.NewRecord(
			cbor.Field{Key: "b", Value: cbor.Text("x")},
			cbor.Field{Key: "a", Value: cbor.NewInt(1)},
		),
		cbor.NewMap(
			cbor.Entry{Key: cbor.NewInt(1), Value: cbor.Text("one")},
			cbor.Entry{Key: cbor.Bytes{0xff}, Value: cbor.Bool(false)},
		),
	}
	for _, v := range values {
		first, err := cbor.EncodeValue(v)
		require.NoError(t, err)
		decoded, err := cbor.DecodeValue(first)
		require.NoError(t, err)
		second, err := cbor.EncodeValue(decoded)
		require.NoError(t, err)
		require.Equal(t, first, second, "re-encoding %v", v)
	}
}

func TestDeterministicFieldOrder(t *testing.T) {
	a, err := cbor.EncodeValue(cbor.NewRecord(
		cbor.Field{Key: "aa", Value: cbor.NewInt(2)},
		cbor.Field{Key: "z", Value: cbor.NewInt(1)},
	))
	require.NoError(t, err)
	b, err := cbor.EncodeValue(cbor.NewRecord(
		cbor.Field{Key: "z", Value: cbor.NewInt(1)},
		cbor.Field{Key: "aa", Value: cbor.NewInt(2)},
	))
	require.NoError(t, err)
	require.Equal(t, a, b)

	// Canonical order is length-first: "z" sorts before "aa".
	require.Equal(t, "a2617a0162616102", hex.EncodeToString(a))
}

func TestEmptyInputIsNull(t *testing.T) {
	v, err := cbor.DecodeValue(nil)
	require.NoError(t, err)
	require.Equal(t, cbor.KindNull, v.Kind())

	v, err = cbor.DecodeValue([]byte{})
	require.NoError(t, err)
	require.Equal(t, cbor.KindNull, v.Kind())
}

func TestUndefinedDecodesAsNull(t *testing.T) {
	v, err := cbor.DecodeValue([]byte{0xf7})
	require.NoError(t, err)
	require.Equal(t, cbor.KindNull, v.Kind())
}

func TestRecordPromotion(t *testing.T) {
	v, err := cbor.DecodeValue(mustHex(t, "a1656e6f6e636507"))
	require.NoError(t, err)
	rec, ok := v.(cbor.Record)
	require.True(t, ok, "all-text-keyed map should decode as Record")

	nonce, ok := rec.Get("nonce")
	require.True(t, ok)
	n, ok := nonce.(cbor.Int).Int64()
	require.True(t, ok)
	require.Equal(t, int64(7), n)

	// The promotion must not alter round-trip byte equality.
	data, err := cbor.EncodeValue(rec)
	require.NoError(t, err)
	require.Equal(t, "a1656e6f6e636507", hex.EncodeToString(data))
}

func TestMapWithNonTextKeyStaysGeneric(t *testing.T) {
	v, err := cbor.DecodeValue(mustHex(t, "a2016161626161182a"))
	require.NoError(t, err)
	m, ok := v.(cbor.Map)
	require.True(t, ok, "map with a non-text key must stay a generic Map")
	require.Equal(t, 2, m.Len())
}

func TestEmptyMapIsEmptyRecord(t *testing.T) {
	v, err := cbor.DecodeValue([]byte{0xa0})
	require.NoError(t, err)
	rec, ok := v.(cbor.Record)
	require.True(t, ok)
	require.Equal(t, 0, rec.Len())
}

func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		name string
		hex  string
		want string
	}{
		{"truncated-text", "6161ff", ""}, // trailing byte
		{"truncated-map", "a161", "truncated"},
		{"truncated-bytes", "4401", "truncated"},
		{"bad-utf8", "61ff", "UTF-8"},
		{"reserved-ai", "1c", "reserved"},
		{"indefinite", "9f", "indefinite"},
		{"simple-reserved", "f0", "reserved simple value"},
		{"unsupported-tag", "c100", "unsupported tag"},
		{"duplicate-key", "a201000100", "duplicate"},
		{"trailing", "0000", "trailing"},
		{"deep-nesting", strings.Repeat("81", 200) + "00", "nesting"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := cbor.DecodeValue(mustHex(t, c.hex))
			require.Error(t, err)
			require.ErrorIs(t, err, errors.ErrDecode)
			if c.want != "" {
				require.Contains(t, err.Error(), c.want)
			}
			require.Contains(t, err.Error(), "offset")
		})
	}
}

func TestDuplicateKeysAcrossSpellings(t *testing.T) {
	// 0x00 and 0x1800 both decode to integer zero; canonical re-encoding
	// must catch the collision.
	_, err := cbor.DecodeValue(mustHex(t, "a200616118006162"))
	require.ErrorIs(t, err, errors.ErrDecode)
	require.Contains(t, err.Error(), "duplicate")
}

func TestEncodeRejectsDuplicateFields(t *testing.T) {
	_, err := cbor.EncodeValue(cbor.NewRecord(
		cbor.Field{Key: "a", Value: cbor.NewInt(1)},
		cbor.Field{Key: "a", Value: cbor.NewInt(2)},
	))
	require.Error(t, err)
}

func TestFloat16RoundTrip(t *testing.T) {
	for _, f := range []float64{0, math.Copysign(0, -1), 0.5, -2, 65504, 6.103515625e-05, 5.960464477539063e-08, math.Inf(-1)} {
		data, err := cbor.EncodeValue(cbor.Float(f))
		require.NoError(t, err)
		require.Len(t, data, 3, "%v should encode as binary16", f)
		v, err := cbor.DecodeValue(data)
		require.NoError(t, err)
		require.Equal(t, f, float64(v.(cbor.Float)))
	}
}

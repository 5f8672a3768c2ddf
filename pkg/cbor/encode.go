// Copyright 2026 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package cbor

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"math/big"
	"sort"
	"unicode/utf8"
)

// EncodeValue encodes a Value tree into canonical CBOR. Map and record keys
// are emitted in RFC 7049 canonical order - shorter encoded key first, ties
// broken bytewise - regardless of the order the tree holds them in, so
// encoding the same logical value always yields identical bytes.
func EncodeValue(v Value) ([]byte, error) {
	return appendValue(nil, v)
}

func appendValue(b []byte, v Value) ([]byte, error) {
	switch v := v.(type) {
	case Null:
		return append(b, 0xf6), nil

	case Bool:
		if v {
			return append(b, 0xf5), nil
		}
		return append(b, 0xf4), nil

	case Int:
		return appendInt(b, &v.value), nil

	case Float:
		return appendFloat(b, float64(v)), nil

	case Bytes:
		b = appendHead(b, 2, uint64(len(v)))
		return append(b, v...), nil

	case Text:
		if !utf8.ValidString(string(v)) {
			return nil, fmt.Errorf("cbor: text string is not valid UTF-8")
		}
		b = appendHead(b, 3, uint64(len(v)))
		return append(b, v...), nil

	case Sequence:
		b = appendHead(b, 4, uint64(len(v)))
		var err error
		for _, item := range v {
			if b, err = appendValue(b, item); err != nil {
				return nil, err
			}
		}
		return b, nil

	case Record:
		pairs := make([]encodedPair, len(v.fields))
		for i, f := range v.fields {
			key, err := appendValue(nil, Text(f.Key))
			if err != nil {
				return nil, err
			}
			val, err := appendValue(nil, f.Value)
			if err != nil {
				return nil, err
			}
			pairs[i] = encodedPair{key, val}
		}
		return appendPairs(b, pairs)

	case Map:
		pairs := make([]encodedPair, len(v.entries))
		for i, e := range v.entries {
			key, err := appendValue(nil, e.Key)
			if err != nil {
				return nil, err
			}
			val, err := appendValue(nil, e.Value)
			if err != nil {
				return nil, err
			}
			pairs[i] = encodedPair{key, val}
		}
		return appendPairs(b, pairs)

	default:
		return nil, fmt.Errorf("cbor: cannot encode %T", v)
	}
}

type encodedPair struct {
	key, value []byte
}

func appendPairs(b []byte, pairs []encodedPair) ([]byte, error) {
	sort.SliceStable(pairs, func(i, j int) bool {
		return canonicalLess(pairs[i].key, pairs[j].key)
	})
	for i := 1; i < len(pairs); i++ {
		if bytes.Equal(pairs[i-1].key, pairs[i].key) {
			return nil, fmt.Errorf("cbor: duplicate map key %x", pairs[i].key)
		}
	}
	b = appendHead(b, 5, uint64(len(pairs)))
	for _, p := range pairs {
		b = append(b, p.key...)
		b = append(b, p.value...)
	}
	return b, nil
}

// canonicalLess is the RFC 7049 canonical key order: shorter encodings sort
// first, equal lengths compare bytewise.
func canonicalLess(a, b []byte) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return bytes.Compare(a, b) < 0
}

func appendHead(b []byte, major byte, arg uint64) []byte {
	mb := major << 5
	switch {
	case arg < 24:
		return append(b, mb|byte(arg))
	case arg <= math.MaxUint8:
		return append(b, mb|24, byte(arg))
	case arg <= math.MaxUint16:
		b = append(b, mb|25)
		return binary.BigEndian.AppendUint16(b, uint16(arg))
	case arg <= math.MaxUint32:
		b = append(b, mb|26)
		return binary.BigEndian.AppendUint32(b, uint32(arg))
	default:
		b = append(b, mb|27)
		return binary.BigEndian.AppendUint64(b, arg)
	}
}

var one = big.NewInt(1)

func appendInt(b []byte, v *big.Int) []byte {
	if v.Sign() >= 0 {
		if v.IsUint64() {
			return appendHead(b, 0, v.Uint64())
		}
		// Positive bignum: tag 2 over the minimal big-endian magnitude.
		b = appendHead(b, 6, 2)
		mag := v.Bytes()
		b = appendHead(b, 2, uint64(len(mag)))
		return append(b, mag...)
	}

	// Negative integers encode -1 - n.
	n := new(big.Int).Neg(v)
	n.Sub(n, one)
	if n.IsUint64() {
		return appendHead(b, 1, n.Uint64())
	}
	b = appendHead(b, 6, 3)
	mag := n.Bytes()
	b = appendHead(b, 2, uint64(len(mag)))
	return append(b, mag...)
}

func appendFloat(b []byte, f float64) []byte {
	// All NaNs collapse to the canonical half-width quiet NaN.
	if math.IsNaN(f) {
		return append(b, 0xf9, 0x7e, 0x00)
	}
	if h, ok := floatToHalf(f); ok {
		b = append(b, 0xf9)
		return binary.BigEndian.AppendUint16(b, h)
	}
	if f32 := float32(f); float64(f32) == f {
		b = append(b, 0xfa)
		return binary.BigEndian.AppendUint32(b, math.Float32bits(f32))
	}
	b = append(b, 0xfb)
	return binary.BigEndian.AppendUint64(b, math.Float64bits(f))
}

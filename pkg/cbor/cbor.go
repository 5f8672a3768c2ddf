// Copyright 2026 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package cbor implements the canonical serialization format used by every
// signed artifact. The same logical value must produce the same bytes no
// matter which implementation or language encodes it, so the encoder is
// pinned to RFC 7049 canonical form: definite lengths only, shortest integer
// and float forms, and map keys sorted by encoded length and then bytewise.
package cbor

import (
	"github.com/fxamacker/cbor/v2"

	"gitlab.com/meridiannetwork/meridian/pkg/errors"
)

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	encMode, err = cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		ShortestFloat: cbor.ShortestFloat16,
		NaNConvert:    cbor.NaNConvert7e00,
		InfConvert:    cbor.InfConvertFloat16,
		IndefLength:   cbor.IndefLengthForbidden,
		Time:          cbor.TimeUnix,
		TagsMd:        cbor.TagsForbidden,
	}.EncMode()
	if err != nil {
		panic(err)
	}

	decMode, err = cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyEnforcedAPF,
		IndefLength:       cbor.IndefLengthForbidden,
		TagsMd:            cbor.TagsForbidden,
		ExtraReturnErrors: cbor.ExtraDecErrorUnknownField,
	}.DecMode()
	if err != nil {
		panic(err)
	}
}

// Marshal encodes a typed value into canonical CBOR. Marshal panics if the
// value cannot be encoded; this only happens when the type itself is not
// serializable, which is a programming error, not an input error.
func Marshal(v interface{}) []byte {
	data, err := encMode.Marshal(v)
	if err != nil {
		panic("cbor: marshal: " + err.Error())
	}
	return data
}

// Unmarshal decodes canonical CBOR into dst. A zero-length input is the
// canonical encoding of an absent value: dst is left untouched and no error
// is returned. The surrounding system's API defaults rely on this.
func Unmarshal(data []byte, dst interface{}) error {
	if len(data) == 0 {
		return nil
	}
	if err := decMode.Unmarshal(data, dst); err != nil {
		return errors.ErrDecode.Wrap(err)
	}
	return nil
}

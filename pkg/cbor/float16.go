// Copyright 2026 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package cbor

import "math"

// halfToFloat widens an IEEE 754 binary16 value to float64. Widening is
// always exact.
func halfToFloat(h uint16) float64 {
	exp := int(h>>10) & 0x1f
	frac := uint64(h & 0x3ff)

	var f float64
	switch exp {
	case 0: // subnormal
		f = math.Ldexp(float64(frac), -24)
	case 0x1f:
		if frac == 0 {
			f = math.Inf(1)
		} else {
			f = math.NaN()
		}
	default:
		f = math.Ldexp(float64(frac|0x400), exp-25)
	}
	if h&0x8000 != 0 {
		f = math.Copysign(f, -1)
	}
	return f
}

// floatToHalf narrows f to IEEE 754 binary16 if the conversion is exact.
// NaN is the caller's problem; canonical form fixes its bit pattern anyway.
func floatToHalf(f float64) (uint16, bool) {
	f32 := float32(f)
	if float64(f32) != f {
		return 0, false
	}
	bits := math.Float32bits(f32)
	sign := uint16(bits>>16) & 0x8000
	exp := int(bits>>23&0xff) - 127
	frac := bits & 0x007fffff

	switch {
	case f == 0:
		return sign, true
	case exp == 128: // infinity
		return sign | 0x7c00, true
	case exp < -24:
		return 0, false
	case exp < -14: // subnormal half
		m := frac | 0x00800000
		shift := uint(-exp - 1)
		if m&(1<<shift-1) != 0 {
			return 0, false
		}
		return sign | uint16(m>>shift), true
	case exp <= 15:
		if frac&0x1fff != 0 {
			return 0, false
		}
		return sign | uint16(exp+15)<<10 | uint16(frac>>13), true
	default:
		return 0, false
	}
}

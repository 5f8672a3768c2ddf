// Copyright 2026 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package cbor

import (
	"encoding/binary"
	"math"
	"math/big"
	"unicode/utf8"

	"gitlab.com/meridiannetwork/meridian/pkg/errors"
)

// maxNesting bounds the recursion depth of DecodeValue so that hostile input
// cannot exhaust the stack.
const maxNesting = 128

// DecodeValue decodes a single canonical-CBOR item into a Value tree. A
// zero-length input decodes to Null, the explicit absent value. Trailing
// bytes after the item are an error.
//
// This walks the item grammar directly instead of going through the generic
// codec: the Value tree needs ordered map entries, non-text map keys, and
// errors that name the offending byte offset, none of which survive a round
// trip through native Go maps.
func DecodeValue(data []byte) (Value, error) {
	if len(data) == 0 {
		return Null{}, nil
	}
	r := &itemReader{data: data}
	v, err := r.readValue(0)
	if err != nil {
		return nil, err
	}
	if r.pos != len(r.data) {
		return nil, r.errAt(r.pos, "%d trailing bytes", len(r.data)-r.pos)
	}
	return v, nil
}

type itemReader struct {
	data []byte
	pos  int
}

func (r *itemReader) errAt(offset int, format string, args ...interface{}) error {
	return errors.ErrDecode.WithFormat(format+" at offset %d", append(args, offset)...)
}

func (r *itemReader) readBytes(n uint64) ([]byte, error) {
	if uint64(len(r.data)-r.pos) < n {
		return nil, r.errAt(r.pos, "truncated item, need %d more bytes", n-uint64(len(r.data)-r.pos))
	}
	b := r.data[r.pos : r.pos+int(n)]
	r.pos += int(n)
	return b, nil
}

// readHead reads an item head: major type, additional info, and the argument
// value. For major type 7 with additional info 25-27 the argument carries the
// raw float bits. off is the offset of the head byte.
func (r *itemReader) readHead() (major, ai byte, arg uint64, off int, err error) {
	off = r.pos
	if r.pos >= len(r.data) {
		return 0, 0, 0, off, r.errAt(off, "unexpected end of input")
	}
	b := r.data[r.pos]
	r.pos++
	major, ai = b>>5, b&0x1f

	switch {
	case ai < 24:
		arg = uint64(ai)
	case ai <= 27:
		n := uint64(1) << (ai - 24)
		var raw []byte
		raw, err = r.readBytes(n)
		if err != nil {
			return 0, 0, 0, off, err
		}
		switch ai {
		case 24:
			arg = uint64(raw[0])
		case 25:
			arg = uint64(binary.BigEndian.Uint16(raw))
		case 26:
			arg = uint64(binary.BigEndian.Uint32(raw))
		case 27:
			arg = binary.BigEndian.Uint64(raw)
		}
	case ai == 31:
		return 0, 0, 0, off, r.errAt(off, "indefinite-length item")
	default: // 28-30
		return 0, 0, 0, off, r.errAt(off, "reserved additional info %d", ai)
	}
	return major, ai, arg, off, nil
}

func (r *itemReader) readValue(depth int) (Value, error) {
	if depth > maxNesting {
		return nil, r.errAt(r.pos, "nesting deeper than %d levels", maxNesting)
	}
	major, ai, arg, off, err := r.readHead()
	if err != nil {
		return nil, err
	}

	switch major {
	case 0: // unsigned integer
		return NewUint(arg), nil

	case 1: // negative integer, -1 - arg
		if arg <= math.MaxInt64 {
			return NewInt(-1 - int64(arg)), nil
		}
		v := new(big.Int).SetUint64(arg)
		v.Neg(v)
		v.Sub(v, big.NewInt(1))
		return NewBigInt(v), nil

	case 2: // byte string
		b, err := r.readBytes(arg)
		if err != nil {
			return nil, err
		}
		return Bytes(append([]byte(nil), b...)), nil

	case 3: // text string
		b, err := r.readBytes(arg)
		if err != nil {
			return nil, err
		}
		if !utf8.Valid(b) {
			return nil, r.errAt(off, "invalid UTF-8 in text string")
		}
		return Text(b), nil

	case 4: // sequence
		// Each element is at least one byte, so the length cannot exceed
		// the remaining input.
		if arg > uint64(len(r.data)-r.pos) {
			return nil, r.errAt(off, "sequence length %d exceeds remaining input", arg)
		}
		seq := make(Sequence, 0, arg)
		for i := uint64(0); i < arg; i++ {
			v, err := r.readValue(depth + 1)
			if err != nil {
				return nil, err
			}
			seq = append(seq, v)
		}
		return seq, nil

	case 5: // map
		return r.readMap(depth, arg, off)

	case 6: // tag
		return r.readTagged(depth, arg, off)

	default: // 7: simple values and floats
		switch ai {
		case 20:
			return Bool(false), nil
		case 21:
			return Bool(true), nil
		case 22, 23: // null and undefined both decode as the absent value
			return Null{}, nil
		case 25:
			return Float(halfToFloat(uint16(arg))), nil
		case 26:
			return Float(math.Float32frombits(uint32(arg))), nil
		case 27:
			return Float(math.Float64frombits(arg)), nil
		default:
			return nil, r.errAt(off, "reserved simple value %d", arg)
		}
	}
}

func (r *itemReader) readMap(depth int, length uint64, off int) (Value, error) {
	// Each pair is at least two bytes.
	if length > uint64(len(r.data)-r.pos)/2 {
		return nil, r.errAt(off, "map length %d exceeds remaining input", length)
	}

	entries := make([]Entry, 0, length)
	seen := make(map[string]struct{}, length)
	allText := true
	for i := uint64(0); i < length; i++ {
		keyOff := r.pos
		key, err := r.readValue(depth + 1)
		if err != nil {
			return nil, err
		}
		// Duplicate detection compares canonical re-encodings, so two
		// differently-encoded spellings of the same key still collide.
		enc, err := EncodeValue(key)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[string(enc)]; dup {
			return nil, r.errAt(keyOff, "duplicate map key")
		}
		seen[string(enc)] = struct{}{}
		if key.Kind() != KindText {
			allText = false
		}

		val, err := r.readValue(depth + 1)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Key: key, Value: val})
	}

	if !allText {
		return NewMap(entries...), nil
	}
	fields := make([]Field, len(entries))
	for i, e := range entries {
		fields[i] = Field{Key: string(e.Key.(Text)), Value: e.Value}
	}
	return NewRecord(fields...), nil
}

func (r *itemReader) readTagged(depth int, tag uint64, off int) (Value, error) {
	switch tag {
	case 2, 3: // positive and negative bignum
		major, _, n, innerOff, err := r.readHead()
		if err != nil {
			return nil, err
		}
		if major != 2 {
			return nil, r.errAt(innerOff, "bignum tag over a non-byte-string item")
		}
		b, err := r.readBytes(n)
		if err != nil {
			return nil, err
		}
		v := new(big.Int).SetBytes(b)
		if tag == 3 {
			v.Neg(v)
			v.Sub(v, big.NewInt(1))
		}
		return NewBigInt(v), nil
	default:
		return nil, r.errAt(off, "unsupported tag %d", tag)
	}
}

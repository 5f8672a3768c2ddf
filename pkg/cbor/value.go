// Copyright 2026 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package cbor

import (
	"math/big"
)

// Kind discriminates the variants of Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindBytes
	KindText
	KindSequence
	KindMap
	KindRecord
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBytes:
		return "bytes"
	case KindText:
		return "text"
	case KindSequence:
		return "sequence"
	case KindMap:
		return "map"
	case KindRecord:
		return "record"
	default:
		return "invalid"
	}
}

// Value is a decoded canonical-CBOR item. The variants are closed: Null,
// Bool, Int, Float, Bytes, Text, Sequence, Map, and Record. A decoded map
// whose keys are all text is promoted to Record for by-name field access;
// a map with any non-text key stays a generic Map. The promotion is purely
// a host-language convenience and never changes the encoded bytes.
type Value interface {
	Kind() Kind
}

// Null is the explicit absent value. A zero-length encoding decodes to Null,
// not to an empty map or empty text.
type Null struct{}

func (Null) Kind() Kind { return KindNull }

// Bool is a boolean value.
type Bool bool

func (Bool) Kind() Kind { return KindBool }

// Bytes is a byte string.
type Bytes []byte

func (Bytes) Kind() Kind { return KindBytes }

// Text is a UTF-8 string.
type Text string

func (Text) Kind() Kind { return KindText }

// Float is a floating point value.
type Float float64

func (Float) Kind() Kind { return KindFloat }

// Sequence is an ordered list of values.
type Sequence []Value

func (Sequence) Kind() Kind { return KindSequence }

// Int is an integer of arbitrary magnitude. Values within the 64-bit range
// and values beyond it are handled uniformly, with no precision loss.
type Int struct {
	value big.Int
}

func (Int) Kind() Kind { return KindInt }

// NewInt returns an Int holding v.
func NewInt(v int64) Int {
	var i Int
	i.value.SetInt64(v)
	return i
}

// NewUint returns an Int holding v.
func NewUint(v uint64) Int {
	var i Int
	i.value.SetUint64(v)
	return i
}

// NewBigInt returns an Int holding a copy of v.
func NewBigInt(v *big.Int) Int {
	var i Int
	i.value.Set(v)
	return i
}

// Int64 returns the value as an int64, if it fits.
func (i Int) Int64() (int64, bool) {
	if !i.value.IsInt64() {
		return 0, false
	}
	return i.value.Int64(), true
}

// Uint64 returns the value as a uint64, if it fits.
func (i Int) Uint64() (uint64, bool) {
	if !i.value.IsUint64() {
		return 0, false
	}
	return i.value.Uint64(), true
}

// BigInt returns a copy of the value.
func (i Int) BigInt() *big.Int {
	return new(big.Int).Set(&i.value)
}

// Sign returns -1, 0, or +1.
func (i Int) Sign() int { return i.value.Sign() }

// Cmp compares i to other.
func (i Int) Cmp(other Int) int { return i.value.Cmp(&other.value) }

func (i Int) String() string { return i.value.String() }

// Field is a single field of a Record.
type Field struct {
	Key   string
	Value Value
}

// Record is a map whose keys are all text, promoted to an ordered list of
// named fields. Field order is preserved from the decoded input; encoding
// re-sorts canonically regardless.
type Record struct {
	fields []Field
}

func (Record) Kind() Kind { return KindRecord }

// NewRecord returns a Record with the given fields.
func NewRecord(fields ...Field) Record {
	return Record{fields: fields}
}

// Len returns the number of fields.
func (r Record) Len() int { return len(r.fields) }

// Fields returns the fields in order.
func (r Record) Fields() []Field { return r.fields }

// Get returns the value of the named field.
func (r Record) Get(name string) (Value, bool) {
	for _, f := range r.fields {
		if f.Key == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Entry is a single entry of a Map.
type Entry struct {
	Key   Value
	Value Value
}

// Map is a generic key-value structure. It is only produced for maps with at
// least one non-text key; all-text-keyed maps decode as Record.
type Map struct {
	entries []Entry
}

func (Map) Kind() Kind { return KindMap }

// NewMap returns a Map with the given entries.
func NewMap(entries ...Entry) Map {
	return Map{entries: entries}
}

// Len returns the number of entries.
func (m Map) Len() int { return len(m.entries) }

// Entries returns the entries in order.
func (m Map) Entries() []Entry { return m.entries }

// Copyright 2026 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"gitlab.com/meridiannetwork/meridian/pkg/cbor"
)

// readInput reads from the file named by the first argument, or stdin when
// no argument is given.
func readInput(args []string) ([]byte, error) {
	if len(args) > 0 && args[0] != "-" {
		return os.ReadFile(args[0])
	}
	return io.ReadAll(os.Stdin)
}

// Envelopes travel as base64 text so they survive copy-paste and shells.

func encodeEnvelope(data []byte) string {
	return base64.StdEncoding.EncodeToString(data) + "\n"
}

func decodeEnvelope(text []byte) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(text)))
	if err != nil {
		return nil, fmt.Errorf("envelope is not valid base64: %w", err)
	}
	return data, nil
}

// parseJSONPayload parses a JSON document into a value suitable for
// canonical encoding. Numbers become integers when they have no fractional
// part, of arbitrary magnitude.
func parseJSONPayload(data []byte) (interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("payload is not valid JSON: %w", err)
	}
	if err := checkTrailing(dec); err != nil {
		return nil, err
	}
	return convertJSON(v)
}

func checkTrailing(dec *json.Decoder) error {
	if _, err := dec.Token(); err != io.EOF {
		return fmt.Errorf("trailing data after JSON payload")
	}
	return nil
}

func convertJSON(v interface{}) (interface{}, error) {
	switch v := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(v))
		for k, e := range v {
			c, err := convertJSON(e)
			if err != nil {
				return nil, err
			}
			out[k] = c
		}
		return out, nil
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, e := range v {
			c, err := convertJSON(e)
			if err != nil {
				return nil, err
			}
			out[i] = c
		}
		return out, nil
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i, nil
		}
		if b, ok := new(big.Int).SetString(v.String(), 10); ok {
			return b, nil
		}
		f, err := v.Float64()
		if err != nil {
			return nil, fmt.Errorf("number %q is not representable", v)
		}
		return f, nil
	default:
		return v, nil
	}
}

// displayValue converts a decoded Value into a JSON-printable form. Byte
// strings render as lowercase hex; integers beyond int64 render as decimal
// strings; generic maps render as a list of key-value pairs since JSON keys
// must be strings.
func displayValue(v cbor.Value) interface{} {
	switch v := v.(type) {
	case cbor.Null:
		return nil
	case cbor.Bool:
		return bool(v)
	case cbor.Int:
		if i, ok := v.Int64(); ok {
			return i
		}
		return v.String()
	case cbor.Float:
		return float64(v)
	case cbor.Bytes:
		return hex.EncodeToString(v)
	case cbor.Text:
		return string(v)
	case cbor.Sequence:
		out := make([]interface{}, len(v))
		for i, e := range v {
			out[i] = displayValue(e)
		}
		return out
	case cbor.Record:
		out := make(map[string]interface{}, v.Len())
		for _, f := range v.Fields() {
			out[f.Key] = displayValue(f.Value)
		}
		return out
	case cbor.Map:
		out := make([]map[string]interface{}, 0, v.Len())
		for _, e := range v.Entries() {
			out = append(out, map[string]interface{}{
				"key":   displayValue(e.Key),
				"value": displayValue(e.Value),
			})
		}
		return out
	default:
		return fmt.Sprintf("<%s>", v.Kind())
	}
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Copyright 2026 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import (
	"encoding/hex"
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"gitlab.com/meridiannetwork/meridian/pkg/cbor"
	"gitlab.com/meridiannetwork/meridian/pkg/crypto/signature"
	"gitlab.com/meridiannetwork/meridian/pkg/crypto/signature/ed25519"
)

func TestParseJSONPayload(t *testing.T) {
	v, err := parseJSONPayload([]byte(`{"nonce": 7}`))
	require.NoError(t, err)

	// The parsed payload must canonical-encode to the reference bytes.
	require.Equal(t, "a1656e6f6e636507", hex.EncodeToString(cbor.Marshal(v)))
}

func TestParseJSONPayloadNumbers(t *testing.T) {
	v, err := parseJSONPayload([]byte(`[7, -1, 18446744073709551616, 1.5]`))
	require.NoError(t, err)
	items := v.([]interface{})
	require.Equal(t, int64(7), items[0])
	require.Equal(t, int64(-1), items[1])

	big16, ok := new(big.Int).SetString("18446744073709551616", 10)
	require.True(t, ok)
	require.Equal(t, 0, items[2].(*big.Int).Cmp(big16))
	require.Equal(t, 1.5, items[3])
}

func TestParseJSONPayloadRejectsGarbage(t *testing.T) {
	_, err := parseJSONPayload([]byte(`{"a": }`))
	require.Error(t, err)

	_, err = parseJSONPayload([]byte(`{} trailing`))
	require.Error(t, err)
}

func TestEnvelopeTextRoundTrip(t *testing.T) {
	data := []byte{0xa1, 0x65, 0x6e, 0x6f, 0x6e, 0x63, 0x65, 0x07}
	text := encodeEnvelope(data)
	back, err := decodeEnvelope([]byte(text))
	require.NoError(t, err)
	require.Equal(t, data, back)

	_, err = decodeEnvelope([]byte("not//base64!!"))
	require.Error(t, err)
}

// The full tool pipeline: seed file on disk, JSON payload in, base64
// envelope out, envelope back in, signature verified, payload decoded.
func TestSignVerifyPipeline(t *testing.T) {
	keyPath := filepath.Join(t.TempDir(), "test.key")
	gen, err := ed25519.GenerateSigner(nil)
	require.NoError(t, err)
	seed := hex.EncodeToString(gen.Seed())
	require.NoError(t, os.WriteFile(keyPath, []byte(seed+"\n"), 0o600))

	signer, err := loadSigner(keyPath)
	require.NoError(t, err)
	require.True(t, gen.Public().Equal(signer.Public()))

	v, err := parseJSONPayload([]byte(`{"nonce": 7}`))
	require.NoError(t, err)

	ctx := signature.Context("meridian/cli: test").WithChainContext(
		"c672b8d1ef56ed28ab87c3622c5114069bdd3ad7b8f9737498d0c01ecef0967a")
	signed, err := signature.SignSigned(signer, ctx, v)
	require.NoError(t, err)

	text := encodeEnvelope(cbor.Marshal(signed))
	data, err := decodeEnvelope([]byte(text))
	require.NoError(t, err)

	var received signature.Signed
	require.NoError(t, cbor.Unmarshal(data, &received))
	blob, err := received.Open(ctx)
	require.NoError(t, err)

	decoded, err := cbor.DecodeValue(blob)
	require.NoError(t, err)
	require.Equal(t, map[string]interface{}{"nonce": int64(7)}, displayValue(decoded))
}

func TestDisplayValue(t *testing.T) {
	v, err := cbor.DecodeValue(cbor.Marshal(map[string]interface{}{
		"bytes": []byte{0xde, 0xad},
		"list":  []interface{}{uint64(1), "two"},
	}))
	require.NoError(t, err)

	display := displayValue(v).(map[string]interface{})
	require.Equal(t, "dead", display["bytes"])
	require.Equal(t, []interface{}{int64(1), "two"}, display["list"])
}

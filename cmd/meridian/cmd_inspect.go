// Copyright 2026 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gitlab.com/meridiannetwork/meridian/pkg/cbor"
	"gitlab.com/meridiannetwork/meridian/pkg/crypto/signature"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [envelope]",
	Short: "Decode an envelope without verifying it",
	Long: `Inspect decodes an envelope and prints its structure and payload WITHOUT
verifying any signature. Nothing it prints has been authenticated; do not act
on it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	text, err := readInput(args)
	if err != nil {
		return err
	}
	data, err := decodeEnvelope(text)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, color.YellowString("UNVERIFIED - nothing below has been authenticated"))

	var blob []byte
	var sigs []signature.Signature
	var s signature.Signed
	var ms signature.MultiSigned
	switch {
	case cbor.Unmarshal(data, &s) == nil && len(s.Blob) > 0:
		blob, sigs = s.Blob, []signature.Signature{s.Signature}
	case cbor.Unmarshal(data, &ms) == nil && len(ms.Blob) > 0:
		blob, sigs = ms.Blob, ms.Signatures
	default:
		// Not an envelope; treat the input as a bare canonical value.
		blob = data
	}

	for i, sig := range sigs {
		fmt.Fprintf(out, "signer %d: %s\n", i, sig.PublicKey)
	}

	v, err := cbor.DecodeValue(blob)
	if err != nil {
		return err
	}
	return printJSON(out, displayValue(v))
}

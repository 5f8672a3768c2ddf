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
	"gitlab.com/meridiannetwork/meridian/pkg/errors"
)

var flagVerify = struct {
	Context      string
	Network      string
	ChainContext string
	Bare         bool
	Multi        bool
}{}

var verifyCmd = &cobra.Command{
	Use:   "verify [envelope]",
	Short: "Verify an envelope and print its payload",
	Long: `Verify opens an envelope under a domain separation context and prints the
decoded payload. A signature failure and a malformed payload are different
conditions: the former means the envelope does not authenticate under this
context (wrong context, wrong chain, tampering, or a stale key), the latter
means the payload bytes are corrupt or from an incompatible version.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().StringVar(&flagVerify.Context, "context", "", "Domain separation context (required)")
	verifyCmd.Flags().StringVar(&flagVerify.Network, "network", "", "Expect a configured network's chain context")
	verifyCmd.Flags().StringVar(&flagVerify.ChainContext, "chain-context", "", "Expect an explicit chain context")
	verifyCmd.Flags().BoolVar(&flagVerify.Bare, "bare", false, "Expect no chain context")
	verifyCmd.Flags().BoolVar(&flagVerify.Multi, "multi", false, "Expect a multi-signed envelope")
	_ = verifyCmd.MarkFlagRequired("context")
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	text, err := readInput(args)
	if err != nil {
		return err
	}
	data, err := decodeEnvelope(text)
	if err != nil {
		return err
	}

	chainContext, err := resolveChainContext(flagVerify.Network, flagVerify.ChainContext, flagVerify.Bare)
	if err != nil {
		return err
	}
	ctx := signature.Context(flagVerify.Context)
	if chainContext != "" {
		ctx = ctx.WithChainContext(chainContext)
	}

	blob, err := openEnvelope(data, ctx)
	switch {
	case errors.Is(err, errors.ErrVerification):
		fmt.Fprintln(cmd.OutOrStdout(), color.RedString("SIGNATURE VERIFICATION FAILED"))
		return err
	case errors.Is(err, errors.ErrDecode):
		fmt.Fprintln(cmd.OutOrStdout(), color.YellowString("envelope is not valid canonical CBOR"))
		return err
	case err != nil:
		return err
	}

	v, err := cbor.DecodeValue(blob)
	if err != nil {
		// The signature is fine but the payload is garbage; report it as
		// corruption, not as an authentication failure.
		fmt.Fprintln(cmd.OutOrStdout(), color.YellowString("signature OK, payload is not valid canonical CBOR"))
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("signature OK"))
	return printJSON(cmd.OutOrStdout(), displayValue(v))
}

func openEnvelope(data []byte, ctx signature.Context) ([]byte, error) {
	if flagVerify.Multi {
		var ms signature.MultiSigned
		if err := cbor.Unmarshal(data, &ms); err != nil {
			return nil, err
		}
		log.Debug().Int("signatures", len(ms.Signatures)).Msg("opening multi-signed envelope")
		return ms.Open(ctx)
	}
	var s signature.Signed
	if err := cbor.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return s.Open(ctx)
}

// Copyright 2026 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gitlab.com/meridiannetwork/meridian/pkg/cbor"
	"gitlab.com/meridiannetwork/meridian/pkg/crypto/signature"
)

var flagSign = struct {
	Context      string
	Network      string
	ChainContext string
	Bare         bool
	Key          string
	Output       string
	Multi        bool
	Append       string
}{}

var signCmd = &cobra.Command{
	Use:   "sign [payload.json]",
	Short: "Sign a JSON payload into an envelope",
	Long: `Sign canonically encodes a JSON payload and signs it under a domain
separation context, bound to a chain context unless --bare is given. The
payload is read from the named file or stdin, and the envelope is written as
base64 to --output or stdout.

With --multi the result is a multi-signed envelope; --append adds this
signer's signature to an existing multi-signed envelope instead of starting
a new one.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSign,
}

func init() {
	signCmd.Flags().StringVar(&flagSign.Context, "context", "", "Domain separation context (required)")
	signCmd.Flags().StringVar(&flagSign.Network, "network", "", "Bind to a configured network's chain context")
	signCmd.Flags().StringVar(&flagSign.ChainContext, "chain-context", "", "Bind to an explicit chain context")
	signCmd.Flags().BoolVar(&flagSign.Bare, "bare", false, "Do not bind to any chain context")
	signCmd.Flags().StringVarP(&flagSign.Key, "key", "k", "", "Signing key file (required)")
	signCmd.Flags().StringVarP(&flagSign.Output, "output", "o", "", "Write the envelope to a file instead of stdout")
	signCmd.Flags().BoolVar(&flagSign.Multi, "multi", false, "Produce a multi-signed envelope")
	signCmd.Flags().StringVar(&flagSign.Append, "append", "", "Append to an existing multi-signed envelope")
	_ = signCmd.MarkFlagRequired("context")
	_ = signCmd.MarkFlagRequired("key")
	rootCmd.AddCommand(signCmd)
}

func runSign(cmd *cobra.Command, args []string) error {
	signer, err := loadSigner(flagSign.Key)
	if err != nil {
		return err
	}

	chainContext, err := resolveChainContext(flagSign.Network, flagSign.ChainContext, flagSign.Bare)
	if err != nil {
		return err
	}
	ctx := signature.Context(flagSign.Context)
	if chainContext != "" {
		ctx = ctx.WithChainContext(chainContext)
	}
	log.Debug().Str("context", string(ctx)).Msg("signing")

	var envelope []byte
	switch {
	case flagSign.Append != "":
		envelope, err = appendSignature(signer, ctx)
	case flagSign.Multi:
		var ms *signature.MultiSigned
		ms, err = multiSign(signer, ctx, args)
		if err == nil {
			envelope = cbor.Marshal(ms)
		}
	default:
		var s *signature.Signed
		s, err = singleSign(signer, ctx, args)
		if err == nil {
			envelope = cbor.Marshal(s)
		}
	}
	if err != nil {
		return err
	}

	out := encodeEnvelope(envelope)
	if flagSign.Output != "" {
		return os.WriteFile(flagSign.Output, []byte(out), 0o644)
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

func readPayload(args []string) (interface{}, error) {
	data, err := readInput(args)
	if err != nil {
		return nil, err
	}
	return parseJSONPayload(data)
}

func singleSign(signer signature.Signer, ctx signature.Context, args []string) (*signature.Signed, error) {
	v, err := readPayload(args)
	if err != nil {
		return nil, err
	}
	return signature.SignSigned(signer, ctx, v)
}

func multiSign(signer signature.Signer, ctx signature.Context, args []string) (*signature.MultiSigned, error) {
	v, err := readPayload(args)
	if err != nil {
		return nil, err
	}
	return signature.SignMultiSigned([]signature.Signer{signer}, ctx, v)
}

// appendSignature signs the blob of an existing multi-signed envelope and
// appends the signature. The existing signatures are not checked here;
// whether they verify is the recipient's question, not the signer's.
func appendSignature(signer signature.Signer, ctx signature.Context) ([]byte, error) {
	text, err := os.ReadFile(flagSign.Append)
	if err != nil {
		return nil, err
	}
	data, err := decodeEnvelope(text)
	if err != nil {
		return nil, err
	}
	var ms signature.MultiSigned
	if err := cbor.Unmarshal(data, &ms); err != nil {
		return nil, err
	}

	sig, err := signature.Sign(signer, ctx, ms.Blob)
	if err != nil {
		return nil, err
	}
	ms.Signatures = append(ms.Signatures, *sig)
	return cbor.Marshal(&ms), nil
}

// Copyright 2026 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"gitlab.com/meridiannetwork/meridian/pkg/crypto/signature/ed25519"
)

var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Manage signing keys",
}

var keyGenerateCmd = &cobra.Command{
	Use:   "generate <file>",
	Short: "Generate a new Ed25519 signing key",
	Args:  cobra.ExactArgs(1),
	RunE:  runKeyGenerate,
}

var keyPublicCmd = &cobra.Command{
	Use:   "public <file>",
	Short: "Print the public key of a signing key",
	Args:  cobra.ExactArgs(1),
	RunE:  runKeyPublic,
}

func init() {
	keyCmd.AddCommand(keyGenerateCmd, keyPublicCmd)
	rootCmd.AddCommand(keyCmd)
}

func runKeyGenerate(cmd *cobra.Command, args []string) error {
	path := args[0]
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists, refusing to overwrite a key", path)
	}

	signer, err := ed25519.GenerateSigner(nil)
	if err != nil {
		return err
	}
	seed := hex.EncodeToString(signer.Seed())
	if err := os.WriteFile(path, []byte(seed+"\n"), 0o600); err != nil {
		return err
	}

	log.Info().Str("file", path).Msg("generated signing key")
	fmt.Fprintln(cmd.OutOrStdout(), signer.Public())
	return nil
}

func runKeyPublic(cmd *cobra.Command, args []string) error {
	signer, err := loadSigner(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), signer.Public())
	return nil
}

// loadSigner reads a hex seed file produced by key generate.
func loadSigner(path string) (*ed25519.Signer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	seed, err := hex.DecodeString(strings.TrimSpace(string(data)))
	if err != nil {
		return nil, fmt.Errorf("%s is not a hex seed file: %w", path, err)
	}
	return ed25519.NewSigner(seed)
}

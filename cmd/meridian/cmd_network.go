// Copyright 2026 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gitlab.com/meridiannetwork/meridian/pkg/config"
)

var flagNetwork = struct {
	ChainContext string
	Description  string
}{}

var networkCmd = &cobra.Command{
	Use:   "network",
	Short: "Manage configured networks",
}

var networkAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a network",
	Args:  cobra.ExactArgs(1),
	RunE:  runNetworkAdd,
}

var networkListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured networks",
	Args:  cobra.NoArgs,
	RunE:  runNetworkList,
}

var networkRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a network",
	Args:  cobra.ExactArgs(1),
	RunE:  runNetworkRemove,
}

var networkSetDefaultCmd = &cobra.Command{
	Use:   "set-default <name>",
	Short: "Set the default network",
	Args:  cobra.ExactArgs(1),
	RunE:  runNetworkSetDefault,
}

func init() {
	networkAddCmd.Flags().StringVar(&flagNetwork.ChainContext, "chain-context", "", "Chain context of the network (required)")
	networkAddCmd.Flags().StringVar(&flagNetwork.Description, "description", "", "Free-form description")
	_ = networkAddCmd.MarkFlagRequired("chain-context")

	networkCmd.AddCommand(networkAddCmd, networkListCmd, networkRemoveCmd, networkSetDefaultCmd)
	rootCmd.AddCommand(networkCmd)
}

func runNetworkAdd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	err = cfg.Networks.Add(args[0], &config.Network{
		ChainContext: flagNetwork.ChainContext,
		Description:  flagNetwork.Description,
	})
	if err != nil {
		return err
	}
	return cfg.Save()
}

func runNetworkList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	names := make([]string, 0, len(cfg.Networks.All))
	for name := range cfg.Networks.All {
		names = append(names, name)
	}
	sort.Strings(names)

	out := cmd.OutOrStdout()
	for _, name := range names {
		net := cfg.Networks.All[name]
		marker := " "
		if name == cfg.Networks.Default {
			marker = color.GreenString("*")
		}
		fmt.Fprintf(out, "%s %-20s %s %s\n", marker, name, net.ChainContext, net.Description)
	}
	return nil
}

func runNetworkRemove(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Networks.Remove(args[0]); err != nil {
		return err
	}
	return cfg.Save()
}

func runNetworkSetDefault(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Networks.SetDefault(args[0]); err != nil {
		return err
	}
	return cfg.Save()
}

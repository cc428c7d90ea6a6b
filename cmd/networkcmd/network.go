// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package networkcmd

import (
	"github.com/luxfi/anchor/pkg/application"
	"github.com/spf13/cobra"
)

var app *application.Anchor

// NewCmd creates the network command for inspecting deployment targets.
func NewCmd(injectedApp *application.Anchor) *cobra.Command {
	app = injectedApp
	cmd := &cobra.Command{
		Use:   "network",
		Short: "Inspect configured networks",
		Long: `The network command lists the networks contracts can be deployed to and
checks that a network is reachable.

Networks are configured in anchor.yaml:

  network: testnet
  networks:
    testnet:
      url: https://api.lux-test.network/ext/bc/C/rpc
      chain-id: 96368
      accounts: ["0x..."]

localhost (http://127.0.0.1:8545, chain ID 31337) is always available.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newStatusCmd())
	return cmd
}

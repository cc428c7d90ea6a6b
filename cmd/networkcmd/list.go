// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package networkcmd

import (
	"github.com/luxfi/anchor/pkg/ux"
	"github.com/spf13/cobra"
)

// anchor network list
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configured networks",
		RunE:  listNetworks,
		Args:  cobra.NoArgs,
	}
}

func listNetworks(cmd *cobra.Command, _ []string) error {
	networks, err := app.Conf.Networks()
	if err != nil {
		return err
	}
	ux.PrintNetworksTable(cmd.OutOrStdout(), networks, app.Conf.SelectedNetwork())
	return nil
}

// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package contractcmd

import (
	"github.com/luxfi/anchor/pkg/ux"
	"github.com/spf13/cobra"
)

// anchor contract artifacts
func newArtifactsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "artifacts",
		Short: "List compiled contracts",
		Long:  "List the compiled contracts found in the artifacts directory and whether they can be deployed.",
		RunE:  listArtifacts,
		Args:  cobra.NoArgs,
	}
}

func listArtifacts(cmd *cobra.Command, _ []string) error {
	store := app.ArtifactStore("")
	list, err := store.List()
	if err != nil {
		return err
	}
	if len(list) == 0 {
		ux.Logger.PrintToUser("No artifacts found in %s, compile your contracts first", store.Root())
		return nil
	}
	ux.PrintArtifactsTable(cmd.OutOrStdout(), list)
	return nil
}

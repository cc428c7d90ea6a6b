// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package contractcmd

import (
	"github.com/luxfi/anchor/pkg/application"
	"github.com/spf13/cobra"
)

var app *application.Anchor

// anchor contract
func NewCmd(injectedApp *application.Anchor) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contract",
		Short: "Deploy and inspect compiled contracts",
		Long: `The contract command suite provides tools for deploying compiled
contract artifacts and listing the artifacts that can be deployed.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	app = injectedApp
	// contract deploy
	cmd.AddCommand(newDeployCmd())
	// contract artifacts
	cmd.AddCommand(newArtifactsCmd())
	return cmd
}

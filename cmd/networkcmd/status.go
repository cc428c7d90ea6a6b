// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package networkcmd

import (
	"fmt"

	"github.com/luxfi/anchor/pkg/contract"
	"github.com/luxfi/anchor/pkg/evm"
	"github.com/luxfi/anchor/pkg/ux"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// anchor network status [name]
func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status [networkName]",
		Short: "Check that a network is reachable",
		Long: `Connect to a network and report its chain ID, latest block and fees.
Fails when the node serves a different chain than the configured chain ID.`,
		RunE: networkStatus,
		Args: cobra.MaximumNArgs(1),
	}
}

func networkStatus(cmd *cobra.Command, args []string) error {
	name := ""
	if len(args) == 1 {
		name = args[0]
	}
	network, err := app.Network(name)
	if err != nil {
		return err
	}
	if err := network.Validate(); err != nil {
		return err
	}
	dial := app.Dial
	if dial == nil {
		dial = contract.Dial
	}
	ctx := cmd.Context()
	backend, err := dial(ctx, network.URL)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", network.Name, err)
	}
	defer backend.Close()

	chainID, err := backend.ChainID(ctx)
	if err != nil {
		return fmt.Errorf("failed to get chain ID from %s: %w", network.URL, err)
	}
	if network.ExpectsChainID() && chainID.Uint64() != network.ChainID {
		return fmt.Errorf("%w: network %s is configured with chain ID %d but the node reports %v",
			contract.ErrChainIDMismatch, network.Name, network.ChainID, chainID)
	}
	header, err := backend.HeaderByNumber(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to get latest block from %s: %w", network.URL, err)
	}
	app.Log.Debug("network reachable",
		zap.String("network", network.Name),
		zap.String("chainID", chainID.String()),
		zap.String("block", header.Number.String()),
	)

	ux.Logger.GreenCheckmarkToUser("%s is reachable at %s", network.Name, network.URL)
	ux.Logger.PrintToUser("Chain ID:     %s", chainID)
	ux.Logger.PrintToUser("Latest block: %s", ux.ConvertToStringWithThousandSeparator(header.Number.Uint64()))
	if header.BaseFee != nil {
		ux.Logger.PrintToUser("Base fee:     %s gwei", evm.FormatUnits(header.BaseFee, 9))
	} else {
		ux.Logger.PrintToUser("Base fee:     none (legacy pricing)")
	}
	return nil
}

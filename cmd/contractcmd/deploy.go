// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package contractcmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/luxfi/anchor/pkg/constants"
	"github.com/luxfi/anchor/pkg/contract"
	"github.com/luxfi/anchor/pkg/models"
	"github.com/luxfi/anchor/pkg/ux"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

type DeployFlags struct {
	args   []string
	output string
}

var deployFlags DeployFlags

// anchor contract deploy
func newDeployCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deploy [contractName]",
		Short: "Deploy a compiled contract",
		Long: `Deploy a compiled contract to the selected network and print its address.

The contract is looked up by name in the artifacts directory. Use a fully
qualified name (contracts/Token.sol:Token) when several sources define it.
Constructor arguments are given in order with --arg; arrays are written as [a,b].`,
		RunE: deployContract,
		Args: cobra.MaximumNArgs(1),
	}
	cmd.Flags().StringArrayVar(&deployFlags.args, "arg", nil, "constructor argument, repeat for each one")
	cmd.Flags().StringVarP(&deployFlags.output, "output", "o", OutputText, "result format: text, json or yaml")
	return cmd
}

func deployContract(cmd *cobra.Command, args []string) error {
	contractName := constants.DefaultContractName
	if len(args) == 1 {
		contractName = args[0]
	}
	return Deploy(cmd, contractName, deployFlags.args, deployFlags.output)
}

// Deploy deploys [contractName] on the selected network and prints the result
// to stdout in [output] format. Progress goes to stderr.
func Deploy(cmd *cobra.Command, contractName string, constructorArgs []string, output string) error {
	if err := validateOutput(output); err != nil {
		return err
	}
	network, err := app.Network("")
	if err != nil {
		return err
	}
	var observer contract.Observer
	if output == OutputText && !quiet(cmd) {
		observer = ux.NewDeployProgress(cmd.ErrOrStderr())
	}
	deployer := app.NewDeployer(network, app.ArtifactSource(""), observer)
	result, err := deployer.Deploy(cmd.Context(), contractName, constructorArgs...)
	if err != nil {
		return err
	}
	return printResult(cmd.OutOrStdout(), result, output)
}

func quiet(cmd *cobra.Command) bool {
	f := cmd.Flag("quiet")
	return f != nil && f.Changed
}

func validateOutput(output string) error {
	switch output {
	case OutputText, OutputJSON, OutputYAML:
		return nil
	default:
		return fmt.Errorf("unsupported output format %q, use %s, %s or %s", output, OutputText, OutputJSON, OutputYAML)
	}
}

func printResult(w io.Writer, result *models.DeploymentResult, output string) error {
	switch output {
	case OutputJSON:
		bs, err := json.MarshalIndent(result.Summary(), "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(bs))
		return err
	case OutputYAML:
		bs, err := yaml.Marshal(result.Summary())
		if err != nil {
			return err
		}
		_, err = w.Write(bs)
		return err
	default:
		ux.Logger.PrintToUser("%s", result.SuccessLine())
		return nil
	}
}

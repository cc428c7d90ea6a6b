// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ux

import (
	"io"
	"strconv"
	"strings"

	"github.com/luxfi/anchor/pkg/artifacts"
	"github.com/luxfi/anchor/pkg/models"
	"github.com/olekukonko/tablewriter"
)

// PrintArtifactsTable lists compiled contracts and whether they can be deployed as is
func PrintArtifactsTable(w io.Writer, list []*artifacts.Artifact) {
	table := tablewriter.NewWriter(w)
	table.Header("Contract", "Source", "Deployable", "Bytecode Size")
	for _, a := range list {
		_ = table.Append([]string{
			a.ContractName,
			a.SourceName,
			deployableStatus(a),
			ConvertToStringWithThousandSeparator(uint64(bytecodeSize(a.Bytecode))),
		})
	}
	_ = table.Render()
}

func deployableStatus(a *artifacts.Artifact) string {
	switch {
	case a.IsAbstract():
		return "no (abstract)"
	case len(a.UnlinkedLibraries()) > 0:
		return "no (needs " + strings.Join(a.UnlinkedLibraries(), ", ") + ")"
	default:
		return "yes"
	}
}

func bytecodeSize(code string) int {
	return len(strings.TrimPrefix(code, "0x")) / 2
}

// PrintNetworksTable lists configured networks, marking [selected]
func PrintNetworksTable(w io.Writer, networks []models.Network, selected string) {
	table := tablewriter.NewWriter(w)
	table.Header("Name", "URL", "Chain ID", "Accounts", "Selected")
	for _, n := range networks {
		chainID := "any"
		if n.ExpectsChainID() {
			chainID = strconv.FormatUint(n.ChainID, 10)
		}
		mark := ""
		if n.Name == selected {
			mark = "*"
		}
		_ = table.Append([]string{
			n.Name,
			n.URL,
			chainID,
			strconv.Itoa(len(n.Accounts)),
			mark,
		})
	}
	_ = table.Render()
}

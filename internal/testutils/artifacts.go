// Copyright (C) 2022-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package testutils

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/luxfi/anchor/pkg/artifacts"
	"github.com/luxfi/anchor/pkg/constants"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const (
	// EmptyConstructorABI is the abi of a contract whose constructor takes no arguments
	EmptyConstructorABI = `[{"inputs":[],"stateMutability":"nonpayable","type":"constructor"},{"inputs":[],"name":"anchor","outputs":[{"internalType":"bytes32","name":"","type":"bytes32"}],"stateMutability":"view","type":"function"}]`

	// OwnedConstructorABI takes (address owner, uint256 limit, string label)
	OwnedConstructorABI = `[{"inputs":[{"internalType":"address","name":"owner","type":"address"},{"internalType":"uint256","name":"limit","type":"uint256"},{"internalType":"string","name":"label","type":"string"}],"stateMutability":"nonpayable","type":"constructor"}]`

	// SampleBytecode is a minimal creation code whose runtime is 63 STOP opcodes
	SampleBytecode = "0x6080604052348015600f57600080fd5b50603f80601d6000396000f3fe"
)

// NewArtifact builds a deployable artifact for contractName in contracts/<contractName>.sol
func NewArtifact(contractName string) *artifacts.Artifact {
	return &artifacts.Artifact{
		Format:           constants.ArtifactFormat,
		ContractName:     contractName,
		SourceName:       "contracts/" + contractName + ".sol",
		ABI:              json.RawMessage(EmptyConstructorABI),
		Bytecode:         SampleBytecode,
		DeployedBytecode: "0x6080604052",
		LinkReferences:   map[string]map[string][]artifacts.LinkReference{},
	}
}

// WriteArtifact stores a in fs under root the way the compiler lays it out
func WriteArtifact(t *testing.T, fs afero.Fs, root string, a *artifacts.Artifact) string {
	t.Helper()
	bs, err := json.MarshalIndent(a, "", "  ")
	require.NoError(t, err)
	dir := filepath.Join(root, filepath.FromSlash(a.SourceName))
	require.NoError(t, fs.MkdirAll(dir, 0o755))
	p := filepath.Join(dir, a.ContractName+".json")
	require.NoError(t, afero.WriteFile(fs, p, bs, 0o644))
	return p
}

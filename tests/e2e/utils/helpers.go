// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/luxfi/anchor/pkg/artifacts"
	"github.com/luxfi/anchor/pkg/constants"
)

const (
	// hardhat development account #0, funded on hardhat and anvil nodes
	DefaultDeployerKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

	metaAnchorABI = `[{"inputs":[],"stateMutability":"nonpayable","type":"constructor"}]`
	// creation code whose runtime is 63 STOP opcodes
	metaAnchorBytecode = "0x6080604052348015600f57600080fd5b50603f80601d6000396000f3fe"
)

// Project is a throwaway working directory with compiled artifacts
type Project struct {
	Dir          string
	ArtifactsDir string
	Home         string
}

func NewProject(dir string) (Project, error) {
	p := Project{
		Dir:          dir,
		ArtifactsDir: filepath.Join(dir, constants.DefaultArtifactsDir),
		Home:         filepath.Join(dir, "home"),
	}
	if err := os.MkdirAll(p.Home, 0o750); err != nil {
		return Project{}, err
	}
	err := p.WriteArtifact(&artifacts.Artifact{
		Format:           constants.ArtifactFormat,
		ContractName:     constants.DefaultContractName,
		SourceName:       "contracts/MetaAnchor.sol",
		ABI:              json.RawMessage(metaAnchorABI),
		Bytecode:         metaAnchorBytecode,
		DeployedBytecode: "0x",
	})
	return p, err
}

func (p Project) WriteArtifact(a *artifacts.Artifact) error {
	bs, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	dir := filepath.Join(p.ArtifactsDir, filepath.FromSlash(a.SourceName))
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, a.ContractName+".json"), bs, 0o600)
}

// Env isolates the binary from the developer's home and keys
func (p Project) Env() []string {
	key := os.Getenv("E2E_DEPLOYER_KEY")
	if key == "" {
		key = DefaultDeployerKey
	}
	return []string{
		"HOME=" + p.Home,
		constants.EnvPrivateKey + "=" + key,
		"ANCHOR_NON_INTERACTIVE=1",
	}
}

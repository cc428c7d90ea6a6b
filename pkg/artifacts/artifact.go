// Copyright (C) 2022-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package artifacts

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/luxfi/anchor/pkg/constants"
	"github.com/luxfi/geth/common/hexutil"
)

// LinkReference is the position of a library placeholder inside bytecode
type LinkReference struct {
	Start  int `json:"start"`
	Length int `json:"length"`
}

// Artifact is a compiled contract in the hardhat artifact format
type Artifact struct {
	Format                 string                                `json:"_format"`
	ContractName           string                                `json:"contractName"`
	SourceName             string                                `json:"sourceName"`
	ABI                    json.RawMessage                       `json:"abi"`
	Bytecode               string                                `json:"bytecode"`
	DeployedBytecode       string                                `json:"deployedBytecode"`
	LinkReferences         map[string]map[string][]LinkReference `json:"linkReferences"`
	DeployedLinkReferences map[string]map[string][]LinkReference `json:"deployedLinkReferences"`
}

// FullyQualifiedName returns sourceName:contractName
func (a *Artifact) FullyQualifiedName() string {
	return FullyQualifiedName(a.SourceName, a.ContractName)
}

func FullyQualifiedName(sourceName, contractName string) string {
	return sourceName + ":" + contractName
}

// ParseFullyQualifiedName splits "path/To.sol:Name". Bare names return an empty source.
func ParseFullyQualifiedName(name string) (string, string) {
	i := strings.LastIndex(name, ":")
	if i < 0 {
		return "", name
	}
	return name[:i], name[i+1:]
}

// IsAbstract is true for interfaces and abstract contracts, which have no creation code
func (a *Artifact) IsAbstract() bool {
	code := strings.TrimPrefix(a.Bytecode, "0x")
	return code == ""
}

// UnlinkedLibraries lists the libraries that must be linked before deploying
func (a *Artifact) UnlinkedLibraries() []string {
	libs := []string{}
	for source, names := range a.LinkReferences {
		for name := range names {
			libs = append(libs, FullyQualifiedName(source, name))
		}
	}
	sort.Strings(libs)
	return libs
}

// CreationCode decodes the bytecode sent in a deployment transaction
func (a *Artifact) CreationCode() ([]byte, error) {
	if a.IsAbstract() {
		return nil, fmt.Errorf("%w: %s", ErrAbstractContract, a.FullyQualifiedName())
	}
	if libs := a.UnlinkedLibraries(); len(libs) > 0 {
		return nil, fmt.Errorf("%w: %s needs %s", ErrUnlinkedLibraries, a.FullyQualifiedName(), strings.Join(libs, ", "))
	}
	code := a.Bytecode
	if !strings.HasPrefix(code, "0x") {
		code = "0x" + code
	}
	bs, err := hexutil.Decode(code)
	if err != nil {
		return nil, fmt.Errorf("invalid bytecode in artifact %s: %w", a.FullyQualifiedName(), err)
	}
	return bs, nil
}

func (a *Artifact) validate() error {
	if a.Format != constants.ArtifactFormat {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, a.Format)
	}
	if a.ContractName == "" || a.SourceName == "" {
		return fmt.Errorf("artifact is missing contractName or sourceName")
	}
	return nil
}

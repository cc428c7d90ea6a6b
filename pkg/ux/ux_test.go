// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ux

import (
	"bytes"
	"errors"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/luxfi/anchor/pkg/artifacts"
	"github.com/luxfi/anchor/pkg/contract"
	"github.com/luxfi/anchor/pkg/models"
	"github.com/luxfi/geth/common"
	"github.com/luxfi/geth/core/types"
	luxlog "github.com/luxfi/log"
	"github.com/stretchr/testify/require"
)

func TestConvertToStringWithThousandSeparator(t *testing.T) {
	require.Equal(t, "0", ConvertToStringWithThousandSeparator(0))
	require.Equal(t, "999", ConvertToStringWithThousandSeparator(999))
	require.Equal(t, "1_234_567", ConvertToStringWithThousandSeparator(1234567))
}

func TestStepTracker(t *testing.T) {
	require := require.New(t)
	var buf bytes.Buffer
	st := NewStepTracker(NewUserLog(luxlog.NewNoOpLogger(), &buf))
	now := time.Unix(0, 0)
	st.now = func() time.Time { return now }

	st.Start("Deploying MetaAnchor")
	now = now.Add(1500 * time.Millisecond)
	st.Complete("block 3")
	st.Start("Deploying Other")
	st.Failed("reverted")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Equal([]string{
		"Deploying MetaAnchor...",
		"✓ Deploying MetaAnchor (1.5s) - block 3",
		"Deploying Other...",
		"✗ Deploying Other (0.0s) - FAILED: reverted",
	}, lines)
}

func TestDeployProgressOnPlainWriter(t *testing.T) {
	require := require.New(t)
	var buf bytes.Buffer
	p := NewDeployProgress(&buf)
	require.False(p.isTTY)

	tx := types.NewTx(&types.LegacyTx{Nonce: 0, Gas: 21000, GasPrice: big.NewInt(1)})
	p.Submitted(&contract.Instance{ContractName: "MetaAnchor", Tx: tx})
	p.Finished(&models.DeploymentResult{
		ContractName: "MetaAnchor",
		Address:      common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3"),
		BlockNumber:  7,
		GasUsed:      1234567,
		Fee:          big.NewInt(21_000_000_000_000),
	})

	out := buf.String()
	require.Contains(out, "Waiting for MetaAnchor deployment "+tx.Hash().Hex())
	require.Contains(out, "block 7, gas used 1_234_567, fee 0.000021")
	require.NotContains(out, "deployed to:")
}

func TestDeployProgressFailure(t *testing.T) {
	var buf bytes.Buffer
	p := NewDeployProgress(&buf)

	p.Finished(&models.DeploymentResult{Err: errors.New("artifact missing")})
	require.Empty(t, buf.String())

	tx := types.NewTx(&types.LegacyTx{})
	p.Submitted(&contract.Instance{ContractName: "MetaAnchor", Tx: tx})
	p.Finished(&models.DeploymentResult{Err: errors.New("reverted")})
	require.Contains(t, buf.String(), "FAILED: reverted")
}

func TestPrintArtifactsTable(t *testing.T) {
	require := require.New(t)
	var buf bytes.Buffer
	lib := &artifacts.Artifact{
		ContractName: "Linked",
		SourceName:   "contracts/Linked.sol",
		Bytecode:     "0x6080",
		LinkReferences: map[string]map[string][]artifacts.LinkReference{
			"contracts/Math.sol": {"Math": {{Start: 1, Length: 20}}},
		},
	}
	PrintArtifactsTable(&buf, []*artifacts.Artifact{
		{ContractName: "MetaAnchor", SourceName: "contracts/MetaAnchor.sol", Bytecode: "0x60806040"},
		{ContractName: "IAnchor", SourceName: "contracts/IAnchor.sol", Bytecode: "0x"},
		lib,
	})
	out := buf.String()
	require.Contains(out, "MetaAnchor")
	require.Contains(out, "no (abstract)")
	require.Contains(out, "contracts/Math.sol:Math")
}

func TestPrintNetworksTable(t *testing.T) {
	var buf bytes.Buffer
	PrintNetworksTable(&buf, []models.Network{
		{Name: "localhost", URL: "http://127.0.0.1:8545", ChainID: 31337},
		{Name: "testnet", URL: "https://api.lux-test.network/ext/bc/C/rpc"},
	}, "testnet")
	out := buf.String()
	require.Contains(t, out, "31337")
	require.Contains(t, out, "any")
	require.Contains(t, out, "https://api.lux-test.network/ext/bc/C/rpc")
}

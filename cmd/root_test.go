// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/luxfi/anchor/internal/testutils"
	"github.com/luxfi/anchor/pkg/constants"
	"github.com/luxfi/anchor/pkg/prompts"
	"github.com/luxfi/geth/core/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

var successLine = regexp.MustCompile(`^MetaAnchor deployed to: 0x[0-9a-fA-F]{40}\n$`)

type harness struct {
	backend   *testutils.FakeBackend
	artifacts string
	stdout    bytes.Buffer
	stderr    bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		backend:   testutils.NewFakeBackend(),
		artifacts: filepath.Join(t.TempDir(), constants.DefaultArtifactsDir),
	}
	testutils.WriteArtifact(t, afero.NewOsFs(), h.artifacts, testutils.NewArtifact(constants.DefaultContractName))

	_, hexKey, err := testutils.GenerateHexKey()
	require.NoError(t, err)
	t.Setenv(constants.EnvPrivateKey, hexKey)
	t.Setenv(prompts.EnvNonInteractive, "1")
	t.Setenv("ANCHOR_NETWORK", "")
	t.Setenv("ANCHOR_ARTIFACTS", "")
	t.Setenv("ANCHOR_LOG_LEVEL", "")

	origHome, origDialer := homeDir, dialer
	homeDir = t.TempDir()
	dialer = h.backend.Dial
	t.Cleanup(func() {
		homeDir, dialer = origHome, origDialer
	})
	return h
}

func (h *harness) run(args ...string) int {
	h.stdout.Reset()
	h.stderr.Reset()
	args = append(args, "--artifacts", h.artifacts)
	return run(context.Background(), args, &h.stdout, &h.stderr)
}

func TestDefaultCommandDeploysMetaAnchor(t *testing.T) {
	require := require.New(t)
	h := newHarness(t)

	require.Equal(0, h.run())
	require.Regexp(successLine, h.stdout.String())
	require.Len(h.backend.Sent, 1)
	require.Contains(h.stderr.String(), "Waiting for MetaAnchor deployment")
	require.DirExists(filepath.Join(homeDir, constants.BaseDirName, constants.LogDir))
}

func TestDeployTwiceGivesDifferentAddresses(t *testing.T) {
	require := require.New(t)
	h := newHarness(t)

	require.Equal(0, h.run("contract", "deploy"))
	first := h.stdout.String()
	require.Equal(0, h.run("contract", "deploy", "MetaAnchor"))
	second := h.stdout.String()
	require.Regexp(successLine, first)
	require.Regexp(successLine, second)
	require.NotEqual(first, second)
}

func TestDeployMissingArtifact(t *testing.T) {
	require := require.New(t)
	h := newHarness(t)

	require.Equal(1, h.run("contract", "deploy", "DoesNotExist"))
	require.Empty(h.stdout.String())
	require.Contains(h.stderr.String(), `artifact for contract "DoesNotExist" not found`)
	require.Empty(h.backend.Sent)
}

func TestDeployRejected(t *testing.T) {
	require := require.New(t)
	h := newHarness(t)
	h.backend.ReceiptStatus = types.ReceiptStatusFailed

	require.Equal(1, h.run("--quiet"))
	require.Empty(h.stdout.String())
	require.Contains(h.stderr.String(), "deployment transaction reverted")
}

func TestDeployJSONOutput(t *testing.T) {
	require := require.New(t)
	h := newHarness(t)

	require.Equal(0, h.run("contract", "deploy", "--output", "json"))
	var out map[string]interface{}
	require.NoError(json.Unmarshal(h.stdout.Bytes(), &out))
	require.Equal("MetaAnchor", out["contractName"])
	require.Equal(constants.LocalhostNetwork, out["network"])
	require.Regexp(`^0x[0-9a-fA-F]{40}$`, out["address"])
	require.Equal("env", out["keySource"])
	require.NotContains(h.stderr.String(), "Waiting for")
}

func TestDeployYAMLOutput(t *testing.T) {
	h := newHarness(t)
	require.Equal(t, 0, h.run("contract", "deploy", "-o", "yaml"))
	require.Contains(t, h.stdout.String(), "contractName: MetaAnchor")
}

func TestDeployInvalidOutput(t *testing.T) {
	h := newHarness(t)
	require.Equal(t, 1, h.run("contract", "deploy", "--output", "xml"))
	require.Contains(t, h.stderr.String(), "unsupported output format")
	require.Empty(t, h.backend.Sent)
}

func TestUnknownNetwork(t *testing.T) {
	h := newHarness(t)
	require.Equal(t, 1, h.run("--network", "mainnet"))
	require.Contains(t, h.stderr.String(), "network is not configured")
}

func TestConfigFileNetwork(t *testing.T) {
	require := require.New(t)
	h := newHarness(t)
	h.backend.Chain.SetUint64(96368)
	cfg := filepath.Join(t.TempDir(), "anchor.yaml")
	require.NoError(os.WriteFile(cfg, []byte(`
network: testnet
networks:
  testnet:
    url: http://10.0.0.1:9650/ext/bc/C/rpc
    chain-id: 96368
`), 0o600))

	require.Equal(0, h.run("--config", cfg))
	require.Regexp(successLine, h.stdout.String())

	require.Equal(1, h.run("--config", cfg, "--network", "localhost"))
	require.Contains(h.stderr.String(), "chain ID mismatch")
}

func TestNetworkList(t *testing.T) {
	h := newHarness(t)
	require.Equal(t, 0, h.run("network", "list"))
	require.Contains(t, h.stdout.String(), constants.LocalhostRPC)
}

func TestNetworkStatus(t *testing.T) {
	h := newHarness(t)
	require.Equal(t, 0, h.run("network", "status"))
	require.Contains(t, h.stdout.String(), "31337")
	require.Contains(t, h.stdout.String(), "Base fee:     1 gwei")
}

func TestContractArtifacts(t *testing.T) {
	h := newHarness(t)
	require.Equal(t, 0, h.run("contract", "artifacts"))
	require.Contains(t, h.stdout.String(), "contracts/MetaAnchor.sol")
}

func TestLogLevelFromEnvAndFlag(t *testing.T) {
	require := require.New(t)
	h := newHarness(t)

	require.Equal(1, h.run("--log-level", "loud"))
	require.Contains(h.stderr.String(), `invalid log level "loud"`)
	require.Empty(h.backend.Sent)

	t.Setenv("ANCHOR_LOG_LEVEL", "loud")
	require.Equal(1, h.run())
	require.Contains(h.stderr.String(), `invalid log level "loud"`)

	t.Setenv("ANCHOR_LOG_LEVEL", "warn")
	require.Equal(0, h.run())
	require.Regexp(successLine, h.stdout.String())
}

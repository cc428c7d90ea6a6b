// Copyright (C) 2022-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

const (
	CLIName = "anchor"

	BaseDirName = ".anchor"
	LogDir      = "logs"

	// DefaultContractName is deployed when no contract is named on the command line.
	DefaultContractName = "MetaAnchor"

	DefaultConfigFileName = "anchor"
	EnvPrefix             = "ANCHOR"

	DefaultArtifactsDir = "artifacts"
	BuildInfoDir        = "build-info"
	DebugFileSuffix     = ".dbg.json"
	ArtifactFormat      = "hh-sol-artifact-1"

	LocalhostNetwork = "localhost"
	LocalhostRPC     = "http://127.0.0.1:8545"
	LocalhostChainID = 31337

	MaxLogFileSize   = 4
	MaxNumOfLogFiles = 5
	RetainOldFiles   = 0 // retain all old log files

	WeiPerEther = 1_000_000_000_000_000_000
)

// config keys
const (
	ConfigNetwork   = "network"
	ConfigNetworks  = "networks"
	ConfigArtifacts = "artifacts"
	ConfigLogLevel  = "log-level"

	NetworkURLKey      = "url"
	NetworkChainIDKey  = "chain-id"
	NetworkAccountsKey = "accounts"
	NetworkGasLimitKey = "gas-limit"
	NetworkGasPriceKey = "gas-price"
)

// environment variables holding the deployer key, in priority order
const (
	EnvPrivateKey    = "ANCHOR_PRIVATE_KEY"
	EnvLuxPrivateKey = "LUX_PRIVATE_KEY"
)

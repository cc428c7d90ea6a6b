// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package contract

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/luxfi/anchor/pkg/artifacts"
	"github.com/luxfi/anchor/pkg/constants"
	"github.com/luxfi/anchor/pkg/evm"
	"github.com/luxfi/anchor/pkg/key"
	"github.com/luxfi/anchor/pkg/models"
	"github.com/luxfi/geth/core/types"
	luxlog "github.com/luxfi/log"
	"go.uber.org/zap"
)

// ArtifactSource maps a contract name to its compiled artifact
type ArtifactSource interface {
	Artifact(name string) (*artifacts.Artifact, error)
}

// KeySource provides the deploying account. It is only asked once an artifact was found.
type KeySource interface {
	PrivateKey() (*ecdsa.PrivateKey, error)
}

// keySourceReporter is a KeySource that records where its key came from
type keySourceReporter interface {
	Source() key.Source
}

// Observer is notified while a deployment progresses
type Observer interface {
	Submitted(instance *Instance)
	Finished(result *models.DeploymentResult)
}

type Config struct {
	Artifacts ArtifactSource
	Keys      KeySource
	Network   models.Network
	Dial      Dialer
	Log       luxlog.Logger
	Observer  Observer
	// PollInterval between receipt queries, defaults to one second
	PollInterval time.Duration
}

// Deployer performs one linear deployment attempt per Deploy call: no retries, no resume.
type Deployer struct {
	cfg Config
	now func() time.Time
}

func NewDeployer(cfg Config) *Deployer {
	if cfg.Dial == nil {
		cfg.Dial = Dial
	}
	if cfg.Log == nil {
		cfg.Log = luxlog.NewNoOpLogger()
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}
	return &Deployer{
		cfg: cfg,
		now: time.Now,
	}
}

// Deploy resolves [contractName], submits its creation transaction with the
// constructor [args] and waits for the contract to be deployed. Any failure is
// returned as a *DeploymentFailure.
func (d *Deployer) Deploy(ctx context.Context, contractName string, args ...string) (*models.DeploymentResult, error) {
	result := &models.DeploymentResult{
		ContractName: contractName,
		Network:      d.cfg.Network.Name,
	}
	err := d.deploy(ctx, result, args)
	if err != nil {
		result.Err = err
	}
	if d.cfg.Observer != nil {
		d.cfg.Observer.Finished(result)
	}
	return result, err
}

func (d *Deployer) deploy(ctx context.Context, result *models.DeploymentResult, args []string) error {
	name := result.ContractName
	if strings.TrimSpace(name) == "" {
		return fail(name, StageArtifact, constants.ErrEmptyContractName)
	}
	artifact, err := d.cfg.Artifacts.Artifact(name)
	if err != nil {
		return fail(name, StageArtifact, err)
	}
	// the bare name is what the user sees in the result line
	result.ContractName = artifact.ContractName
	name = artifact.ContractName
	if _, err := artifact.CreationCode(); err != nil {
		return fail(name, StageArtifact, err)
	}
	contractABI, err := ParseABI(artifact)
	if err != nil {
		return fail(name, StageArtifact, err)
	}
	params, err := ParseConstructorArgs(contractABI, args)
	if err != nil {
		return fail(name, StageArguments, err)
	}

	if d.cfg.Keys == nil {
		return fail(name, StageSigner, constants.ErrNoDeployerKey)
	}
	privateKey, err := d.cfg.Keys.PrivateKey()
	if err != nil {
		return fail(name, StageSigner, err)
	}
	if reporter, ok := d.cfg.Keys.(keySourceReporter); ok {
		result.KeySource = string(reporter.Source())
	}

	backend, chainID, err := d.connect(ctx)
	if err != nil {
		return fail(name, StageNetwork, err)
	}
	defer backend.Close()
	result.ChainID = chainID.Uint64()

	signer, err := NewSigner(privateKey, chainID)
	if err != nil {
		return fail(name, StageSigner, err)
	}
	result.Deployer = signer.Address()

	factory, err := NewFactory(artifact, backend, signer, d.cfg.Network, chainID)
	if err != nil {
		return fail(name, StageArtifact, err)
	}
	factory.poll = d.cfg.PollInterval

	d.cfg.Log.Info("deploying contract",
		zap.String("contract", artifact.FullyQualifiedName()),
		zap.String("network", d.cfg.Network.Name),
		zap.String("deployer", signer.Address().Hex()),
		zap.String("keySource", result.KeySource),
	)
	instance, err := factory.Deploy(ctx, params...)
	if err != nil {
		return fail(name, StageSubmit, err)
	}
	result.TxHash = instance.Tx.Hash()
	d.cfg.Log.Info("deployment submitted",
		zap.String("contract", name),
		zap.String("tx", instance.Tx.Hash().Hex()),
		zap.String("address", instance.Address.Hex()),
	)
	if d.cfg.Observer != nil {
		d.cfg.Observer.Submitted(instance)
	}

	receipt, err := instance.Deployed(ctx)
	if receipt != nil {
		recordReceipt(result, receipt)
	}
	if err != nil {
		return fail(name, StageConfirm, err)
	}
	result.Address = instance.Address
	result.DeployedAt = d.now()
	d.cfg.Log.Info("contract deployed",
		zap.String("contract", name),
		zap.String("address", result.Address.Hex()),
		zap.Uint64("block", result.BlockNumber),
		zap.Uint64("gasUsed", result.GasUsed),
	)
	return nil
}

// connect dials the network and checks the node serves the configured chain
func (d *Deployer) connect(ctx context.Context) (Backend, *big.Int, error) {
	network := d.cfg.Network
	if err := network.Validate(); err != nil {
		return nil, nil, err
	}
	backend, err := d.cfg.Dial(ctx, network.URL)
	if err != nil {
		return nil, nil, err
	}
	chainID, err := backend.ChainID(ctx)
	if err != nil {
		backend.Close()
		return nil, nil, fmt.Errorf("failed to get chain ID from %s: %w", network.URL, err)
	}
	if network.ExpectsChainID() && chainID.Uint64() != network.ChainID {
		backend.Close()
		return nil, nil, fmt.Errorf(
			"%w: network %s is configured with chain ID %d but the node reports %v",
			ErrChainIDMismatch,
			network.Name,
			network.ChainID,
			chainID,
		)
	}
	return backend, chainID, nil
}

func recordReceipt(result *models.DeploymentResult, receipt *types.Receipt) {
	if receipt.BlockNumber != nil {
		result.BlockNumber = receipt.BlockNumber.Uint64()
	}
	result.GasUsed = receipt.GasUsed
	result.Fee = evm.CalculateFee(receipt.GasUsed, receipt.EffectiveGasPrice)
}

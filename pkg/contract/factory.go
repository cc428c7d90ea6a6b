// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package contract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/luxfi/anchor/pkg/artifacts"
	"github.com/luxfi/anchor/pkg/evm"
	"github.com/luxfi/anchor/pkg/models"
	"github.com/luxfi/crypto"
	ethereum "github.com/luxfi/geth"
	"github.com/luxfi/geth/accounts/abi"
	"github.com/luxfi/geth/common"
	"github.com/luxfi/geth/core/types"
)

const defaultPollInterval = time.Second

// Factory deploys instances of one compiled contract
type Factory struct {
	Artifact *artifacts.Artifact
	ABI      abi.ABI

	code    []byte
	backend Backend
	signer  *Signer
	network models.Network
	chainID *big.Int
	poll    time.Duration
}

// NewFactory validates that [artifact] is deployable and binds it to a backend and signer
func NewFactory(
	artifact *artifacts.Artifact,
	backend Backend,
	signer *Signer,
	network models.Network,
	chainID *big.Int,
) (*Factory, error) {
	code, err := artifact.CreationCode()
	if err != nil {
		return nil, err
	}
	contractABI, err := ParseABI(artifact)
	if err != nil {
		return nil, err
	}
	return &Factory{
		Artifact: artifact,
		ABI:      contractABI,
		code:     code,
		backend:  backend,
		signer:   signer,
		network:  network,
		chainID:  chainID,
		poll:     defaultPollInterval,
	}, nil
}

// ParseABI decodes the abi of [artifact]
func ParseABI(artifact *artifacts.Artifact) (abi.ABI, error) {
	if len(artifact.ABI) == 0 {
		return abi.ABI{}, nil
	}
	contractABI, err := abi.JSON(bytes.NewReader(artifact.ABI))
	if err != nil {
		return abi.ABI{}, fmt.Errorf("failed to parse abi of %s: %w", artifact.FullyQualifiedName(), err)
	}
	return contractABI, nil
}

// Deploy submits the creation transaction. It does not wait for it to be mined.
func (f *Factory) Deploy(ctx context.Context, params ...interface{}) (*Instance, error) {
	input, err := f.ABI.Pack("", params...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack constructor arguments: %w", err)
	}
	data := make([]byte, 0, len(f.code)+len(input))
	data = append(data, f.code...)
	data = append(data, input...)

	from := f.signer.Address()
	nonce, err := f.backend.PendingNonceAt(ctx, from)
	if err != nil {
		return nil, fmt.Errorf("failed to get nonce: %w", err)
	}
	tx, err := f.buildTx(ctx, from, nonce, data)
	if err != nil {
		return nil, err
	}
	signed, err := f.signer.Sign(tx)
	if err != nil {
		return nil, err
	}
	if err := f.backend.SendTransaction(ctx, signed); err != nil {
		return nil, evm.TransactionError(nil, err, "failure sending %s deployment", f.Artifact.ContractName)
	}
	return &Instance{
		ContractName: f.Artifact.ContractName,
		Address:      common.Address(crypto.CreateAddress(crypto.Address(from), nonce)),
		From:         from,
		Tx:           signed,
		backend:      f.backend,
		poll:         f.poll,
	}, nil
}

func (f *Factory) buildTx(ctx context.Context, from common.Address, nonce uint64, data []byte) (*types.Transaction, error) {
	gasLimit := f.network.GasLimit
	if gasLimit == 0 {
		estimated, err := f.backend.EstimateGas(ctx, ethereum.CallMsg{
			From:  from,
			Value: big.NewInt(0),
			Data:  data,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to estimate deployment gas: %w", err)
		}
		gasLimit = estimated
	}

	if f.network.GasPrice != nil {
		return types.NewTx(&types.LegacyTx{
			Nonce:    nonce,
			Value:    big.NewInt(0),
			Gas:      gasLimit,
			GasPrice: f.network.GasPrice,
			Data:     data,
		}), nil
	}

	header, err := f.backend.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest header: %w", err)
	}
	if header.BaseFee == nil {
		gasPrice, err := f.backend.SuggestGasPrice(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to suggest gas price: %w", err)
		}
		return types.NewTx(&types.LegacyTx{
			Nonce:    nonce,
			Value:    big.NewInt(0),
			Gas:      gasLimit,
			GasPrice: gasPrice,
			Data:     data,
		}), nil
	}

	tipCap, err := f.backend.SuggestGasTipCap(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to suggest gas tip cap: %w", err)
	}
	feeCap := new(big.Int).Add(new(big.Int).Mul(header.BaseFee, big.NewInt(2)), tipCap)
	return types.NewTx(&types.DynamicFeeTx{
		ChainID:   f.chainID,
		Nonce:     nonce,
		Value:     big.NewInt(0),
		Gas:       gasLimit,
		GasTipCap: tipCap,
		GasFeeCap: feeCap,
		Data:      data,
	}), nil
}

// Instance is a submitted, possibly not yet mined, deployment
type Instance struct {
	ContractName string
	Address      common.Address
	From         common.Address
	Tx           *types.Transaction

	backend Backend
	poll    time.Duration
}

// Deployed blocks until the creation transaction is mined and code exists at the address
func (i *Instance) Deployed(ctx context.Context) (*types.Receipt, error) {
	receipt, err := i.waitMined(ctx)
	if err != nil {
		return nil, evm.TransactionError(i.Tx, err, "failure waiting for %s deployment", i.ContractName)
	}
	if receipt.Status == types.ReceiptStatusFailed {
		return receipt, evm.TransactionError(i.Tx, ErrDeploymentReverted, "%s deployment in block %v", i.ContractName, receipt.BlockNumber)
	}
	if receipt.ContractAddress != (common.Address{}) && receipt.ContractAddress != i.Address {
		i.Address = receipt.ContractAddress
	}
	code, err := i.backend.CodeAt(ctx, i.Address, nil)
	if err != nil {
		return receipt, evm.TransactionError(i.Tx, err, "failure reading %s code", i.ContractName)
	}
	if len(code) == 0 {
		return receipt, evm.TransactionError(i.Tx, ErrNoCodeAfterDeploy, "%s at %s", i.ContractName, i.Address.Hex())
	}
	return receipt, nil
}

// waitMined polls for the receipt the way bind.WaitMined does, but gives up on
// errors other than the receipt not being available yet
func (i *Instance) waitMined(ctx context.Context) (*types.Receipt, error) {
	ticker := time.NewTicker(i.poll)
	defer ticker.Stop()
	for {
		receipt, err := i.backend.TransactionReceipt(ctx, i.Tx.Hash())
		if err == nil && receipt != nil {
			return receipt, nil
		}
		if err != nil && !errors.Is(err, ethereum.NotFound) {
			return nil, err
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

// Copyright (C) 2022-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package models

import (
	"fmt"
	"math/big"
	"time"

	"github.com/luxfi/geth/common"
)

// DeploymentResult holds the outcome of a single deployment attempt.
// Address is only set on success and Err only on failure.
type DeploymentResult struct {
	ContractName string         `json:"contractName"`
	Address      common.Address `json:"address"`
	Network      string         `json:"network"`
	ChainID      uint64         `json:"chainId"`
	Deployer     common.Address `json:"deployer"`
	// KeySource names where the deployer key was found, when known
	KeySource    string         `json:"keySource,omitempty"`
	TxHash       common.Hash    `json:"txHash"`
	BlockNumber  uint64         `json:"blockNumber"`
	GasUsed      uint64         `json:"gasUsed"`
	Fee          *big.Int       `json:"fee,omitempty"`
	DeployedAt   time.Time      `json:"deployedAt"`
	Err          error          `json:"-"`
}

// Succeeded is true when the contract is confirmed on chain
func (r *DeploymentResult) Succeeded() bool {
	return r != nil && r.Err == nil && r.Address != (common.Address{})
}

// SuccessLine is the one line printed for a confirmed deployment
func (r *DeploymentResult) SuccessLine() string {
	return fmt.Sprintf("%s deployed to: %s", r.ContractName, r.Address.Hex())
}

// Summary is the yaml/json friendly view of the result
func (r *DeploymentResult) Summary() map[string]interface{} {
	out := map[string]interface{}{
		"contractName": r.ContractName,
		"address":      r.Address.Hex(),
		"network":      r.Network,
		"chainId":      r.ChainID,
		"deployer":     r.Deployer.Hex(),
		"txHash":       r.TxHash.Hex(),
		"blockNumber":  r.BlockNumber,
		"gasUsed":      r.GasUsed,
		"deployedAt":   r.DeployedAt.UTC().Format(time.RFC3339),
	}
	if r.KeySource != "" {
		out["keySource"] = r.KeySource
	}
	if r.Fee != nil {
		out["fee"] = r.Fee.String()
	}
	return out
}

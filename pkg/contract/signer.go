// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package contract

import (
	"crypto/ecdsa"
	"fmt"
	"math/big"

	"github.com/luxfi/geth/accounts/abi/bind"
	"github.com/luxfi/geth/common"
	"github.com/luxfi/geth/core/types"
)

// Signer signs deployment transactions for one account on one chain
type Signer struct {
	opts *bind.TransactOpts
}

func NewSigner(key *ecdsa.PrivateKey, chainID *big.Int) (*Signer, error) {
	opts, err := bind.NewKeyedTransactorWithChainID(key, chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}
	return &Signer{opts: opts}, nil
}

func (s *Signer) Address() common.Address {
	return s.opts.From
}

func (s *Signer) Sign(tx *types.Transaction) (*types.Transaction, error) {
	signed, err := s.opts.Signer(s.opts.From, tx)
	if err != nil {
		return nil, fmt.Errorf("failed to sign transaction: %w", err)
	}
	return signed, nil
}

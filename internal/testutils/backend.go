// Copyright (C) 2022-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package testutils

import (
	"context"
	"errors"
	"math/big"
	"sync"

	"github.com/luxfi/anchor/pkg/contract"
	"github.com/luxfi/crypto"
	ethereum "github.com/luxfi/geth"
	"github.com/luxfi/geth/common"
	"github.com/luxfi/geth/core/types"
)

// FakeBackend is an in memory chain that mines every accepted transaction into its own block
type FakeBackend struct {
	mu sync.Mutex

	Chain       *big.Int
	Nonce       uint64
	BaseFee     *big.Int
	GasPrice    *big.Int
	GasEstimate uint64

	ChainIDErr  error
	EstimateErr error
	SendErr     error
	ReceiptErr  error

	// number of NotFound answers before a receipt is available
	PendingPolls int
	// never return a receipt
	NeverMined    bool
	ReceiptStatus uint64
	NoCode        bool

	Sent      []*types.Transaction
	Estimates int
	Polls     int
	Closed    bool

	receipts map[common.Hash]*types.Receipt
	code     map[common.Address][]byte
}

var _ contract.Backend = (*FakeBackend)(nil)

func NewFakeBackend() *FakeBackend {
	return &FakeBackend{
		Chain:         big.NewInt(31337),
		BaseFee:       big.NewInt(1_000_000_000),
		GasPrice:      big.NewInt(2_000_000_000),
		GasEstimate:   500_000,
		ReceiptStatus: types.ReceiptStatusSuccessful,
		receipts:      map[common.Hash]*types.Receipt{},
		code:          map[common.Address][]byte{},
	}
}

// Dial can be used as a contract.Dialer
func (b *FakeBackend) Dial(context.Context, string) (contract.Backend, error) {
	return b, nil
}

func (b *FakeBackend) ChainID(context.Context) (*big.Int, error) {
	if b.ChainIDErr != nil {
		return nil, b.ChainIDErr
	}
	return new(big.Int).Set(b.Chain), nil
}

func (b *FakeBackend) PendingNonceAt(context.Context, common.Address) (uint64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.Nonce, nil
}

func (b *FakeBackend) HeaderByNumber(context.Context, *big.Int) (*types.Header, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return &types.Header{Number: big.NewInt(int64(len(b.Sent))), BaseFee: b.BaseFee}, nil
}

func (b *FakeBackend) SuggestGasPrice(context.Context) (*big.Int, error) {
	return new(big.Int).Set(b.GasPrice), nil
}

func (*FakeBackend) SuggestGasTipCap(context.Context) (*big.Int, error) {
	return big.NewInt(100_000_000), nil
}

func (b *FakeBackend) EstimateGas(context.Context, ethereum.CallMsg) (uint64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Estimates++
	if b.EstimateErr != nil {
		return 0, b.EstimateErr
	}
	return b.GasEstimate, nil
}

func (b *FakeBackend) SendTransaction(_ context.Context, tx *types.Transaction) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.SendErr != nil {
		return b.SendErr
	}
	from, err := types.Sender(types.LatestSignerForChainID(b.Chain), tx)
	if err != nil {
		return err
	}
	if tx.Nonce() != b.Nonce {
		return errors.New("nonce too low")
	}
	address := common.Address(crypto.CreateAddress(crypto.Address(from), tx.Nonce()))
	b.Nonce++
	b.Sent = append(b.Sent, tx)
	gasPrice := tx.GasPrice()
	if tx.Type() == types.DynamicFeeTxType {
		gasPrice = new(big.Int).Add(b.BaseFee, tx.GasTipCap())
	}
	b.receipts[tx.Hash()] = &types.Receipt{
		Type:              tx.Type(),
		Status:            b.ReceiptStatus,
		TxHash:            tx.Hash(),
		ContractAddress:   address,
		GasUsed:           tx.Gas() / 2,
		EffectiveGasPrice: gasPrice,
		BlockNumber:       big.NewInt(int64(len(b.Sent))),
	}
	if b.ReceiptStatus == types.ReceiptStatusSuccessful && !b.NoCode {
		b.code[address] = []byte{0x60, 0x80, 0x60, 0x40}
	}
	return nil
}

func (b *FakeBackend) TransactionReceipt(_ context.Context, hash common.Hash) (*types.Receipt, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Polls++
	if b.ReceiptErr != nil {
		return nil, b.ReceiptErr
	}
	if b.NeverMined || b.Polls <= b.PendingPolls {
		return nil, ethereum.NotFound
	}
	receipt, ok := b.receipts[hash]
	if !ok {
		return nil, ethereum.NotFound
	}
	return receipt, nil
}

func (b *FakeBackend) CodeAt(_ context.Context, account common.Address, _ *big.Int) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.code[account], nil
}

func (b *FakeBackend) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Closed = true
}

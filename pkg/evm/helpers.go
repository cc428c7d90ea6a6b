// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package evm

import (
	"crypto/ecdsa"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/luxfi/anchor/pkg/constants"
	"github.com/luxfi/crypto"
	"github.com/luxfi/geth/core/types"
)

// transform a tx operation error into an error that contains:
// - the [err] itself
// - the [tx] hash (or information on the tx not being submitted)
// - another descriptive [msg], together with formated [args]
func TransactionError(tx *types.Transaction, err error, msg string, args ...interface{}) error {
	msgSuffix := ": %w"
	if tx != nil {
		msgSuffix += fmt.Sprintf(" (txHash=%s)", tx.Hash().String())
	} else {
		msgSuffix += " (tx failed to be submitted)"
	}
	args = append(args, err)
	return fmt.Errorf(msg+msgSuffix, args...)
}

// parses a hex encoded secp256k1 [privateKey], with or without 0x prefix
func ParsePrivateKey(privateKey string) (*ecdsa.PrivateKey, error) {
	privateKey = strings.TrimPrefix(strings.TrimSpace(privateKey), "0x")
	if _, err := hex.DecodeString(privateKey); err != nil {
		return nil, fmt.Errorf("%w: not hex encoded", constants.ErrInvalidPrivateKey)
	}
	pk, err := crypto.HexToECDSA(privateKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", constants.ErrInvalidPrivateKey, err)
	}
	return pk, nil
}

// CalculateFee returns gasUsed * effectiveGasPrice in wei
func CalculateFee(gasUsed uint64, gasPrice *big.Int) *big.Int {
	if gasPrice == nil {
		return new(big.Int)
	}
	return new(big.Int).Mul(new(big.Int).SetUint64(gasUsed), gasPrice)
}

// FormatEther renders a wei amount in ether with up to 18 decimals, trailing zeros trimmed
func FormatEther(wei *big.Int) string {
	return FormatUnits(wei, 18)
}

// FormatUnits renders [amount] divided by 10^[decimals], trailing zeros trimmed
func FormatUnits(amount *big.Int, decimals int) string {
	if amount == nil {
		return "0"
	}
	sign := ""
	v := new(big.Int).Set(amount)
	if v.Sign() < 0 {
		sign = "-"
		v.Neg(v)
	}
	unit := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	whole, frac := new(big.Int).QuoRem(v, unit, new(big.Int))
	if frac.Sign() == 0 {
		return sign + whole.String()
	}
	fracStr := frac.String()
	fracStr = strings.TrimRight(strings.Repeat("0", decimals-len(fracStr))+fracStr, "0")
	return sign + whole.String() + "." + fracStr
}

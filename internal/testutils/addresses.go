// Copyright (C) 2022, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package testutils

import (
	"crypto/ecdsa"
	"encoding/hex"

	"github.com/luxfi/crypto"
)

// GenerateHexKey returns a fresh key and its hex encoding without 0x prefix
func GenerateHexKey() (*ecdsa.PrivateKey, string, error) {
	pk, err := crypto.GenerateKey()
	if err != nil {
		return nil, "", err
	}
	return pk, hex.EncodeToString(crypto.FromECDSA(pk)), nil
}

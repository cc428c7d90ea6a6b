// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package contract_test

import (
	"crypto/ecdsa"

	"github.com/luxfi/anchor/pkg/key"
)

type staticKey struct {
	key   *ecdsa.PrivateKey
	err   error
	calls int
}

func (k *staticKey) PrivateKey() (*ecdsa.PrivateKey, error) {
	k.calls++
	return k.key, k.err
}

// sourcedKey also reports where its key came from, like key.Resolver
type sourcedKey struct {
	*staticKey
	source key.Source
}

func (k *sourcedKey) Source() key.Source {
	return k.source
}

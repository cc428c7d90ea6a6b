// Copyright (C) 2022-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package models

import (
	"fmt"
	"math/big"
	"net/url"
	"strings"
)

// Network is a deployment target as described in the project config.
type Network struct {
	Name     string   `json:"name"`
	URL      string   `json:"url"`
	ChainID  uint64   `json:"chainId,omitempty"`
	Accounts []string `json:"-"`
	// GasLimit of 0 means the node estimates it
	GasLimit uint64 `json:"gasLimit,omitempty"`
	// GasPrice in wei; nil means the node suggests fees
	GasPrice *big.Int `json:"gasPrice,omitempty"`
}

func (n Network) String() string {
	if n.ChainID != 0 {
		return fmt.Sprintf("%s (chain %d)", n.Name, n.ChainID)
	}
	return n.Name
}

// Validate checks that the network can be dialed
func (n Network) Validate() error {
	if n.Name == "" {
		return fmt.Errorf("network name must not be empty")
	}
	if n.URL == "" {
		return fmt.Errorf("network %s has no url", n.Name)
	}
	u, err := url.Parse(n.URL)
	if err != nil {
		return fmt.Errorf("network %s has an invalid url %q: %w", n.Name, n.URL, err)
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https", "ws", "wss":
	default:
		if !strings.HasSuffix(n.URL, ".ipc") {
			return fmt.Errorf("network %s url %q must be http(s), ws(s) or an ipc path", n.Name, n.URL)
		}
	}
	if n.GasPrice != nil && n.GasPrice.Sign() < 0 {
		return fmt.Errorf("network %s gas price must not be negative", n.Name)
	}
	return nil
}

// ExpectsChainID reports whether the config pins the chain ID
func (n Network) ExpectsChainID() bool {
	return n.ChainID != 0
}

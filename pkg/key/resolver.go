// Copyright (C) 2022-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package key

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/luxfi/anchor/pkg/constants"
	"github.com/luxfi/anchor/pkg/evm"
	"github.com/luxfi/anchor/pkg/models"
	"github.com/luxfi/anchor/pkg/prompts"
)

// Source names where a deployer key came from
type Source string

const (
	SourceEnv     Source = "env"
	SourceLuxEnv  Source = "lux-env"
	SourceNetwork Source = "network"
	SourcePrompt  Source = "prompt"
)

// Resolver finds the deployer key. Lookup order:
//  1. ANCHOR_PRIVATE_KEY
//  2. LUX_PRIVATE_KEY
//  3. first entry of the network accounts
//  4. interactive prompt
type Resolver struct {
	network  models.Network
	prompter prompts.Prompter
	getenv   func(string) string

	key    *ecdsa.PrivateKey
	source Source
}

// NewResolver returns a resolver for [network]. [prompter] may be nil, in which case
// a missing key is never asked for.
func NewResolver(network models.Network, prompter prompts.Prompter) *Resolver {
	return &Resolver{
		network:  network,
		prompter: prompter,
		getenv:   os.Getenv,
	}
}

// PrivateKey resolves the key on first use and returns the same key afterwards
func (r *Resolver) PrivateKey() (*ecdsa.PrivateKey, error) {
	if r.key != nil {
		return r.key, nil
	}
	raw, source, err := r.lookup()
	if err != nil {
		return nil, err
	}
	key, err := evm.ParsePrivateKey(raw)
	if err != nil {
		return nil, fmt.Errorf("%s key: %w", source, err)
	}
	r.key = key
	r.source = source
	return key, nil
}

// Source reports where the resolved key came from, empty before resolution
func (r *Resolver) Source() Source {
	return r.source
}

func (r *Resolver) lookup() (string, Source, error) {
	if v := strings.TrimSpace(r.getenv(constants.EnvPrivateKey)); v != "" {
		return v, SourceEnv, nil
	}
	if v := strings.TrimSpace(r.getenv(constants.EnvLuxPrivateKey)); v != "" {
		return v, SourceLuxEnv, nil
	}
	if len(r.network.Accounts) > 0 && strings.TrimSpace(r.network.Accounts[0]) != "" {
		return r.network.Accounts[0], SourceNetwork, nil
	}
	if r.prompter == nil {
		return "", "", constants.ErrNoDeployerKey
	}
	v, err := r.prompter.CapturePrivateKey(fmt.Sprintf("Private key to deploy on %s", r.network.Name))
	if err != nil {
		if errors.Is(err, prompts.ErrNonInteractive) {
			return "", "", constants.ErrNoDeployerKey
		}
		return "", "", fmt.Errorf("failed to read private key: %w", err)
	}
	return v, SourcePrompt, nil
}

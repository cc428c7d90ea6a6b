// Copyright (C) 2022-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package key_test

import (
	"errors"
	"testing"

	"github.com/luxfi/anchor/internal/testutils"
	"github.com/luxfi/anchor/pkg/constants"
	"github.com/luxfi/anchor/pkg/key"
	"github.com/luxfi/anchor/pkg/models"
	"github.com/luxfi/anchor/pkg/prompts"
	"github.com/luxfi/crypto"
	"github.com/luxfi/geth/common"
	"github.com/stretchr/testify/require"
)

type stubPrompter struct {
	prompts.Prompter
	key   string
	err   error
	calls int
}

func (p *stubPrompter) CapturePrivateKey(string) (string, error) {
	p.calls++
	return p.key, p.err
}

func newTestResolver(env map[string]string, network models.Network, prompter prompts.Prompter) *key.Resolver {
	r := key.NewResolver(network, prompter)
	key.SetGetenv(r, func(k string) string { return env[k] })
	return r
}

func hexKey(t *testing.T) (string, string) {
	t.Helper()
	pk, hex, err := testutils.GenerateHexKey()
	require.NoError(t, err)
	return hex, common.Address(crypto.PubkeyToAddress(pk.PublicKey)).Hex()
}

func TestResolverPriority(t *testing.T) {
	anchorKey, anchorAddr := hexKey(t)
	luxKey, luxAddr := hexKey(t)
	accountKey, accountAddr := hexKey(t)
	promptKey, promptAddr := hexKey(t)
	network := models.Network{Name: "localhost", Accounts: []string{accountKey}}

	tests := []struct {
		name    string
		env     map[string]string
		network models.Network
		want    string
		source  key.Source
	}{
		{
			name:    "anchor env wins",
			env:     map[string]string{constants.EnvPrivateKey: anchorKey, constants.EnvLuxPrivateKey: luxKey},
			network: network,
			want:    anchorAddr,
			source:  key.SourceEnv,
		},
		{
			name:    "lux env",
			env:     map[string]string{constants.EnvLuxPrivateKey: "0x" + luxKey},
			network: network,
			want:    luxAddr,
			source:  key.SourceLuxEnv,
		},
		{
			name:    "network account",
			network: network,
			want:    accountAddr,
			source:  key.SourceNetwork,
		},
		{
			name:    "prompt",
			network: models.Network{Name: "localhost"},
			want:    promptAddr,
			source:  key.SourcePrompt,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompter := &stubPrompter{key: promptKey}
			r := newTestResolver(tt.env, tt.network, prompter)
			pk, err := r.PrivateKey()
			require.NoError(t, err)
			require.Equal(t, tt.want, common.Address(crypto.PubkeyToAddress(pk.PublicKey)).Hex())
			require.Equal(t, tt.source, r.Source())
			if tt.source != key.SourcePrompt {
				require.Zero(t, prompter.calls)
			}
		})
	}
}

func TestResolverCachesKey(t *testing.T) {
	promptKey, _ := hexKey(t)
	prompter := &stubPrompter{key: promptKey}
	r := newTestResolver(nil, models.Network{Name: "localhost"}, prompter)

	first, err := r.PrivateKey()
	require.NoError(t, err)
	second, err := r.PrivateKey()
	require.NoError(t, err)
	require.Same(t, first, second)
	require.Equal(t, 1, prompter.calls)
}

func TestResolverNoKey(t *testing.T) {
	r := newTestResolver(nil, models.Network{Name: "localhost"}, nil)
	_, err := r.PrivateKey()
	require.ErrorIs(t, err, constants.ErrNoDeployerKey)

	r = newTestResolver(nil, models.Network{Name: "localhost"}, prompts.NewNonInteractivePrompter())
	_, err = r.PrivateKey()
	require.ErrorIs(t, err, constants.ErrNoDeployerKey)
}

func TestResolverPromptFailure(t *testing.T) {
	aborted := errors.New("^C")
	r := newTestResolver(nil, models.Network{Name: "localhost"}, &stubPrompter{err: aborted})
	_, err := r.PrivateKey()
	require.ErrorIs(t, err, aborted)
	require.NotErrorIs(t, err, constants.ErrNoDeployerKey)
}

func TestResolverInvalidKey(t *testing.T) {
	r := newTestResolver(map[string]string{constants.EnvPrivateKey: "0xzz"}, models.Network{}, nil)
	_, err := r.PrivateKey()
	require.ErrorIs(t, err, constants.ErrInvalidPrivateKey)
	require.Contains(t, err.Error(), "env key")
}

// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

import "errors"

var (
	ErrEmptyContractName = errors.New("contract name must not be empty")
	ErrUnknownNetwork    = errors.New("network is not configured")
	ErrNoDeployerKey     = errors.New("no deployer private key configured: set " + EnvPrivateKey + " or add accounts to the network config")
	ErrInvalidPrivateKey = errors.New("invalid private key")
)

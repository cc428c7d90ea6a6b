// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package contract

import (
	"errors"
	"fmt"
)

var (
	ErrChainIDMismatch     = errors.New("chain ID mismatch")
	ErrDeploymentReverted  = errors.New("deployment transaction reverted")
	ErrNoCodeAfterDeploy   = errors.New("no contract code at the deployed address")
	ErrArgumentCount       = errors.New("constructor argument count mismatch")
	ErrUnsupportedArgument = errors.New("unsupported constructor argument type")
)

// Stage identifies the step of a deployment that failed
type Stage string

const (
	StageArtifact  Stage = "artifact"
	StageArguments Stage = "arguments"
	StageSigner    Stage = "signer"
	StageNetwork   Stage = "network"
	StageSubmit    Stage = "submit"
	StageConfirm   Stage = "confirm"
)

// DeploymentFailure is the only error kind returned by Deployer.Deploy.
// It wraps the underlying diagnostic so errors.Is and errors.As see through it.
type DeploymentFailure struct {
	Contract string
	Stage    Stage
	Err      error
}

func (e *DeploymentFailure) Error() string {
	return fmt.Sprintf("failed to deploy %s (%s): %v", e.Contract, e.Stage, e.Err)
}

func (e *DeploymentFailure) Unwrap() error {
	return e.Err
}

func fail(contract string, stage Stage, err error) *DeploymentFailure {
	return &DeploymentFailure{
		Contract: contract,
		Stage:    stage,
		Err:      err,
	}
}

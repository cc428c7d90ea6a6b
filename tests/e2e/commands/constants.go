// Copyright (C) 2022, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commands

const (
	DefaultCLIBinary = "../../bin/anchor"
	ContractCmd      = "contract"
	NetworkCmd       = "network"
)

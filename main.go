// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"os"

	"github.com/luxfi/anchor/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}

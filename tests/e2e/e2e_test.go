// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package e2e

import (
	"os"
	"testing"

	_ "github.com/luxfi/anchor/tests/e2e/testcases/deploy"
	ginkgo "github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

// TestE2e runs the anchor binary end to end. It needs a built binary
// (see ANCHOR_BINARY) and is skipped unless RUN_E2E is set.
func TestE2e(t *testing.T) {
	if os.Getenv("RUN_E2E") == "" {
		t.Skip("set RUN_E2E to run the end to end suite")
	}
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "anchor e2e test suites")
}

// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package deploy

import (
	"os"

	"github.com/luxfi/anchor/tests/e2e/commands"
	"github.com/luxfi/anchor/tests/e2e/utils"
	ginkgo "github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

const addressLine = `^MetaAnchor deployed to: 0x[0-9a-fA-F]{40}\n$`

var _ = ginkgo.Describe("[Deploy]", func() {
	var project utils.Project

	ginkgo.BeforeEach(func() {
		dir, err := os.MkdirTemp("", "anchor-e2e")
		gomega.Expect(err).Should(gomega.BeNil())
		project, err = utils.NewProject(dir)
		gomega.Expect(err).Should(gomega.BeNil())
	})

	ginkgo.AfterEach(func() {
		gomega.Expect(os.RemoveAll(project.Dir)).Should(gomega.Succeed())
	})

	ginkgo.It("fails for a contract without artifact", func() {
		out := commands.Deploy(project, "DoesNotExist")
		gomega.Expect(out.ExitCode).Should(gomega.Equal(1))
		gomega.Expect(out.Stdout).Should(gomega.BeEmpty())
		gomega.Expect(out.Stderr).Should(gomega.ContainSubstring(`artifact for contract "DoesNotExist" not found`))
	})

	ginkgo.Context("with a running node", func() {
		ginkgo.BeforeEach(func() {
			if status := commands.NetworkStatus(project); status.ExitCode != 0 {
				ginkgo.Skip("no node reachable on the default network: " + status.Stderr)
			}
		})

		ginkgo.It("deploys MetaAnchor", func() {
			out := commands.Deploy(project, "")
			gomega.Expect(out.ExitCode).Should(gomega.Equal(0), out.Stderr)
			gomega.Expect(out.Stdout).Should(gomega.MatchRegexp(addressLine))
		})

		ginkgo.It("deploys a new instance on every run", func() {
			first := commands.Deploy(project, "MetaAnchor")
			second := commands.Deploy(project, "MetaAnchor")
			gomega.Expect(first.ExitCode).Should(gomega.Equal(0), first.Stderr)
			gomega.Expect(second.ExitCode).Should(gomega.Equal(0), second.Stderr)
			gomega.Expect(first.Stdout).ShouldNot(gomega.Equal(second.Stdout))
		})
	})
})

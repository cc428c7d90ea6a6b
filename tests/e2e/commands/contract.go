// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commands

import (
	"bytes"
	"errors"
	"os"
	"os/exec"

	"github.com/luxfi/anchor/tests/e2e/utils"
	"github.com/onsi/gomega"
)

// Result is what one anchor invocation printed and how it exited
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

func cliBinary() string {
	if bin := os.Getenv("ANCHOR_BINARY"); bin != "" {
		return bin
	}
	return DefaultCLIBinary
}

/* #nosec G204 */
func Run(env []string, args ...string) Result {
	cmd := exec.Command(cliBinary(), args...)
	cmd.Env = append(os.Environ(), env...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	result := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		return result
	}
	gomega.Expect(err).Should(gomega.BeNil())
	return result
}

// Deploy runs the zero argument entry point, or contract deploy when [contractName] is set
func Deploy(project utils.Project, contractName string, extraArgs ...string) Result {
	args := []string{}
	if contractName != "" {
		args = append(args, ContractCmd, "deploy", contractName)
	}
	args = append(args, "--non-interactive", "--artifacts", project.ArtifactsDir)
	args = append(args, extraArgs...)
	return Run(project.Env(), args...)
}

// NetworkStatus checks whether the network of [project] is reachable
func NetworkStatus(project utils.Project) Result {
	return Run(project.Env(), NetworkCmd, "status", "--non-interactive")
}

// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ux

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/luxfi/anchor/pkg/contract"
	"github.com/luxfi/anchor/pkg/evm"
	"github.com/luxfi/anchor/pkg/models"
	luxlog "github.com/luxfi/log"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

const spinnerRefresh = 100 * time.Millisecond

// DeployProgress reports a running deployment on a terminal. It never writes to
// stdout so the result line stays the only thing a script has to parse.
type DeployProgress struct {
	mu      sync.Mutex
	writer  io.Writer
	isTTY   bool
	steps   *StepTracker
	spinner *progressbar.ProgressBar
	stop    chan struct{}
	done    chan struct{}
	started bool
}

var _ contract.Observer = (*DeployProgress)(nil)

// NewDeployProgress writes to [writer] only. The deployer logs the same events
// to the application log.
func NewDeployProgress(writer io.Writer) *DeployProgress {
	return &DeployProgress{
		writer: writer,
		isTTY:  isTerminal(writer),
		steps:  NewStepTracker(NewUserLog(luxlog.NewNoOpLogger(), writer)),
	}
}

// isTerminal checks if the writer is a terminal
func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return false
}

func (p *DeployProgress) Submitted(instance *contract.Instance) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.started = true
	p.steps.Start(fmt.Sprintf("Waiting for %s deployment %s", instance.ContractName, instance.Tx.Hash().Hex()))
	if p.isTTY {
		p.startSpinner(instance.ContractName)
	}
}

func (p *DeployProgress) Finished(result *models.DeploymentResult) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopSpinner()
	if !p.started {
		return
	}
	p.started = false
	if !result.Succeeded() {
		reason := "no contract address"
		if result.Err != nil {
			reason = result.Err.Error()
		}
		p.steps.Failed(reason)
		return
	}
	p.steps.Complete(fmt.Sprintf(
		"block %d, gas used %s, fee %s",
		result.BlockNumber,
		ConvertToStringWithThousandSeparator(result.GasUsed),
		evm.FormatEther(result.Fee),
	))
}

func (p *DeployProgress) startSpinner(contractName string) {
	p.spinner = progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(p.writer),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetDescription("confirming "+contractName),
		progressbar.OptionClearOnFinish(),
	)
	p.stop = make(chan struct{})
	p.done = make(chan struct{})
	go func(bar *progressbar.ProgressBar, stop <-chan struct{}, done chan<- struct{}) {
		defer close(done)
		ticker := time.NewTicker(spinnerRefresh)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				_ = bar.Add(1)
			}
		}
	}(p.spinner, p.stop, p.done)
}

func (p *DeployProgress) stopSpinner() {
	if p.spinner == nil {
		return
	}
	close(p.stop)
	<-p.done
	_ = p.spinner.Finish()
	_ = p.spinner.Clear()
	p.spinner = nil
}

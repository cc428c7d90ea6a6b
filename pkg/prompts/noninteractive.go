// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prompts

import (
	"errors"
	"fmt"
)

// ErrNonInteractive is returned for any prompt when prompting is disabled.
// Callers map it to the error naming the flag or env var that is missing.
var ErrNonInteractive = errors.New("prompting is disabled")

// NonInteractivePrompter answers every prompt with ErrNonInteractive
type NonInteractivePrompter struct{}

var _ Prompter = (*NonInteractivePrompter)(nil)

func NewNonInteractivePrompter() *NonInteractivePrompter {
	return &NonInteractivePrompter{}
}

func (*NonInteractivePrompter) CapturePrivateKey(promptStr string) (string, error) {
	return "", refuse(promptStr)
}

func (*NonInteractivePrompter) CaptureList(promptStr string, _ []string) (string, error) {
	return "", refuse(promptStr)
}

func refuse(promptStr string) error {
	return fmt.Errorf("%w: %q needs an answer, run on a terminal without --non-interactive and %s",
		ErrNonInteractive, promptStr, EnvNonInteractive)
}

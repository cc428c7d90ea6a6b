// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package prompts

import (
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	// EnvNonInteractive disables prompts when set to 1, true, yes or on
	EnvNonInteractive = "ANCHOR_NON_INTERACTIVE"
	EnvCI             = "CI"
)

// stdinIsTerminal is swapped in tests
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func envEnabled(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "t", "yes", "y", "on":
		return true
	}
	return false
}

// CanPrompt reports whether anchor may ask the user for input. It may not when
// [disabled] is set, when ANCHOR_NON_INTERACTIVE or CI is enabled, or when stdin
// is piped.
func CanPrompt(disabled bool) bool {
	if disabled || envEnabled(EnvNonInteractive) || envEnabled(EnvCI) {
		return false
	}
	return stdinIsTerminal()
}

// NewPrompterForMode returns a terminal prompter, or one that refuses every
// prompt when prompting is not possible
func NewPrompterForMode(disabled bool) Prompter {
	if !CanPrompt(disabled) {
		return NewNonInteractivePrompter()
	}
	return NewPrompter()
}

// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package prompts

import (
	"errors"
	"fmt"
	"strings"

	"github.com/luxfi/anchor/pkg/evm"
	"github.com/manifoldco/promptui"
)

// promptUIRunner is a variable for testing purposes to allow mocking prompt.Run()
var promptUIRunner = func(prompt promptui.Prompt) (string, error) {
	return prompt.Run()
}

// promptUISelectRunner is a variable for testing purposes to allow mocking select.Run()
var promptUISelectRunner = func(sel promptui.Select) (int, string, error) {
	return sel.Run()
}

// Prompter asks the user for the values anchor cannot find elsewhere
type Prompter interface {
	CapturePrivateKey(promptStr string) (string, error)
	CaptureList(promptStr string, options []string) (string, error)
}

type realPrompter struct{}

func NewPrompter() Prompter {
	return &realPrompter{}
}

// CapturePrivateKey asks for a hex encoded private key without echoing it
func (*realPrompter) CapturePrivateKey(promptStr string) (string, error) {
	prompt := promptui.Prompt{
		Label:    promptStr,
		Mask:     '*',
		Validate: validatePrivateKey,
	}
	str, err := promptUIRunner(prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(str), nil
}

func (*realPrompter) CaptureList(promptStr string, options []string) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("no options to choose from for %q", promptStr)
	}
	prompt := promptui.Select{
		Label: promptStr,
		Items: options,
	}
	_, listDecision, err := promptUISelectRunner(prompt)
	if err != nil {
		return "", err
	}
	return listDecision, nil
}

func validateNonEmpty(input string) error {
	if strings.TrimSpace(input) == "" {
		return errors.New("input cannot be empty")
	}
	return nil
}

func validatePrivateKey(input string) error {
	if err := validateNonEmpty(input); err != nil {
		return err
	}
	_, err := evm.ParsePrivateKey(input)
	return err
}

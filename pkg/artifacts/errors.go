// Copyright (C) 2022-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package artifacts

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrArtifactNotFound  = errors.New("artifact not found")
	ErrAmbiguousArtifact = errors.New("ambiguous contract name")
	ErrAbstractContract  = errors.New("contract is abstract and can't be deployed")
	ErrUnlinkedLibraries = errors.New("contract is missing links for libraries")
	ErrUnsupportedFormat = errors.New("unsupported artifact format")
)

// NotFoundError is returned when no artifact matches a contract name.
// It matches ErrArtifactNotFound with errors.Is.
type NotFoundError struct {
	Name        string
	Suggestions []string
}

func (e *NotFoundError) Error() string {
	msg := fmt.Sprintf("artifact for contract %q not found", e.Name)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(", did you mean %s?", strings.Join(e.Suggestions, ", "))
	}
	return msg
}

func (*NotFoundError) Is(target error) bool {
	return target == ErrArtifactNotFound
}

// AmbiguousError is returned when a bare contract name matches several sources.
// It matches ErrAmbiguousArtifact with errors.Is.
type AmbiguousError struct {
	Name string
	// Candidates are sorted fully qualified names
	Candidates []string
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("%s: %q matches %s, use a fully qualified name",
		ErrAmbiguousArtifact, e.Name, strings.Join(e.Candidates, ", "))
}

func (*AmbiguousError) Is(target error) bool {
	return target == ErrAmbiguousArtifact
}

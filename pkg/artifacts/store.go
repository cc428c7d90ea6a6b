// Copyright (C) 2022-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package artifacts

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/luxfi/anchor/pkg/constants"
	"github.com/spf13/afero"
)

// Store reads compiled artifacts laid out as <root>/<sourceName>/<ContractName>.json
type Store struct {
	fs   afero.Fs
	root string
}

func NewStore(fs afero.Fs, root string) *Store {
	return &Store{
		fs:   fs,
		root: filepath.Clean(root),
	}
}

func (s *Store) Root() string {
	return s.root
}

// Artifact resolves a bare contract name or a fully qualified name.
func (s *Store) Artifact(name string) (*Artifact, error) {
	if strings.TrimSpace(name) == "" {
		return nil, constants.ErrEmptyContractName
	}
	sourceName, contractName := ParseFullyQualifiedName(name)
	if sourceName != "" {
		return s.readFullyQualified(sourceName, contractName)
	}
	paths, err := s.artifactPaths()
	if err != nil {
		return nil, err
	}
	matches := []*Artifact{}
	suggestions := []string{}
	for _, p := range paths {
		base := strings.TrimSuffix(filepath.Base(p), ".json")
		if base != contractName {
			if strings.EqualFold(base, contractName) {
				suggestions = append(suggestions, base)
			}
			continue
		}
		a, err := s.read(p)
		if err != nil {
			return nil, err
		}
		matches = append(matches, a)
	}
	switch len(matches) {
	case 0:
		return nil, &NotFoundError{Name: name, Suggestions: suggestions}
	case 1:
		return matches[0], nil
	default:
		fqns := make([]string, 0, len(matches))
		for _, a := range matches {
			fqns = append(fqns, a.FullyQualifiedName())
		}
		sort.Strings(fqns)
		return nil, &AmbiguousError{Name: name, Candidates: fqns}
	}
}

// List returns every artifact sorted by fully qualified name
func (s *Store) List() ([]*Artifact, error) {
	paths, err := s.artifactPaths()
	if err != nil {
		return nil, err
	}
	all := make([]*Artifact, 0, len(paths))
	for _, p := range paths {
		a, err := s.read(p)
		if err != nil {
			return nil, err
		}
		all = append(all, a)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].FullyQualifiedName() < all[j].FullyQualifiedName()
	})
	return all, nil
}

func (s *Store) readFullyQualified(sourceName, contractName string) (*Artifact, error) {
	p := filepath.Join(s.root, filepath.FromSlash(sourceName), contractName+".json")
	exists, err := afero.Exists(s.fs, p)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, &NotFoundError{Name: FullyQualifiedName(sourceName, contractName)}
	}
	return s.read(p)
}

func (s *Store) read(path string) (*Artifact, error) {
	bs, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed reading artifact %s: %w", path, err)
	}
	var a Artifact
	if err := json.Unmarshal(bs, &a); err != nil {
		return nil, fmt.Errorf("failed parsing artifact %s: %w", path, err)
	}
	if err := a.validate(); err != nil {
		return nil, fmt.Errorf("artifact %s: %w", path, err)
	}
	return &a, nil
}

// artifactPaths walks the store skipping build info and debug files
func (s *Store) artifactPaths() ([]string, error) {
	exists, err := afero.DirExists(s.fs, s.root)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, nil
	}
	paths := []string{}
	err = afero.Walk(s.fs, s.root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if path != s.root && info.Name() == constants.BuildInfoDir {
				return filepath.SkipDir
			}
			return nil
		}
		name := info.Name()
		if filepath.Ext(name) != ".json" || strings.HasSuffix(name, constants.DebugFileSuffix) {
			return nil
		}
		// artifacts sit directly under their source file directory
		if filepath.Dir(path) == s.root {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed scanning artifacts in %s: %w", s.root, err)
	}
	sort.Strings(paths)
	return paths, nil
}

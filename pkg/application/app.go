// Copyright (C) 2022, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package application

import (
	"errors"
	"path/filepath"

	"github.com/luxfi/anchor/pkg/artifacts"
	"github.com/luxfi/anchor/pkg/config"
	"github.com/luxfi/anchor/pkg/constants"
	"github.com/luxfi/anchor/pkg/contract"
	"github.com/luxfi/anchor/pkg/key"
	"github.com/luxfi/anchor/pkg/models"
	"github.com/luxfi/anchor/pkg/prompts"
	luxlog "github.com/luxfi/log"
	"github.com/spf13/afero"
)

type Anchor struct {
	Log    luxlog.Logger
	Conf   *config.Config
	Prompt prompts.Prompter
	// Fs holds the project files, the OS filesystem unless replaced in tests
	Fs      afero.Fs
	baseDir string
	// Dial overrides how networks are reached, nil means ethclient
	Dial contract.Dialer
}

func New() *Anchor {
	return &Anchor{}
}

func (app *Anchor) Setup(baseDir string, log luxlog.Logger, conf *config.Config, prompt prompts.Prompter) {
	app.baseDir = baseDir
	app.Log = log
	app.Conf = conf
	app.Prompt = prompt
	if app.Fs == nil {
		app.Fs = afero.NewOsFs()
	}
}

func (app *Anchor) GetBaseDir() string {
	return app.baseDir
}

func (app *Anchor) GetLogDir() string {
	return filepath.Join(app.baseDir, constants.LogDir)
}

// ArtifactStore opens [dir], or the configured artifacts directory when [dir] is empty
func (app *Anchor) ArtifactStore(dir string) *artifacts.Store {
	if dir == "" {
		dir = app.Conf.ArtifactsDir()
	}
	return artifacts.NewStore(app.Fs, dir)
}

// ArtifactSource is the artifact store of [dir] that asks which source is meant
// when a bare contract name is ambiguous and prompting is possible
func (app *Anchor) ArtifactSource(dir string) contract.ArtifactSource {
	return &promptingSource{
		store:    app.ArtifactStore(dir),
		prompter: app.Prompt,
	}
}

type promptingSource struct {
	store    *artifacts.Store
	prompter prompts.Prompter
}

func (s *promptingSource) Artifact(name string) (*artifacts.Artifact, error) {
	a, err := s.store.Artifact(name)
	var ambiguous *artifacts.AmbiguousError
	if err == nil || s.prompter == nil || !errors.As(err, &ambiguous) {
		return a, err
	}
	choice, promptErr := s.prompter.CaptureList("Which "+name+" do you want to deploy?", ambiguous.Candidates)
	if promptErr != nil {
		return nil, err
	}
	return s.store.Artifact(choice)
}

// Network resolves [name] against the configured networks
func (app *Anchor) Network(name string) (models.Network, error) {
	return app.Conf.Network(name)
}

// NewDeployer wires the artifact store, key resolution and logging for a deployment on [network]
func (app *Anchor) NewDeployer(network models.Network, source contract.ArtifactSource, observer contract.Observer) *contract.Deployer {
	return contract.NewDeployer(contract.Config{
		Artifacts: source,
		Keys:      key.NewResolver(network, app.Prompt),
		Network:   network,
		Dial:      app.Dial,
		Log:       app.Log,
		Observer:  observer,
	})
}

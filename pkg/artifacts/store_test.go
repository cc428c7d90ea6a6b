// Copyright (C) 2022-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package artifacts_test

import (
	"path/filepath"
	"testing"

	"github.com/luxfi/anchor/internal/testutils"
	"github.com/luxfi/anchor/pkg/artifacts"
	"github.com/luxfi/anchor/pkg/constants"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const root = "/project/artifacts"

func newStore(t *testing.T, as ...*artifacts.Artifact) (*artifacts.Store, afero.Fs) {
	fs := afero.NewMemMapFs()
	for _, a := range as {
		testutils.WriteArtifact(t, fs, root, a)
	}
	return artifacts.NewStore(fs, root), fs
}

func TestArtifactByName(t *testing.T) {
	require := require.New(t)
	store, _ := newStore(t, testutils.NewArtifact("MetaAnchor"), testutils.NewArtifact("Other"))

	a, err := store.Artifact("MetaAnchor")
	require.NoError(err)
	require.Equal("MetaAnchor", a.ContractName)
	require.Equal("contracts/MetaAnchor.sol:MetaAnchor", a.FullyQualifiedName())

	code, err := a.CreationCode()
	require.NoError(err)
	require.NotEmpty(code)
}

func TestArtifactByFullyQualifiedName(t *testing.T) {
	require := require.New(t)
	store, _ := newStore(t, testutils.NewArtifact("MetaAnchor"))

	a, err := store.Artifact("contracts/MetaAnchor.sol:MetaAnchor")
	require.NoError(err)
	require.Equal("MetaAnchor", a.ContractName)

	_, err = store.Artifact("contracts/Missing.sol:MetaAnchor")
	require.ErrorIs(err, artifacts.ErrArtifactNotFound)
}

func TestArtifactNotFound(t *testing.T) {
	require := require.New(t)
	store, _ := newStore(t, testutils.NewArtifact("MetaAnchor"))

	_, err := store.Artifact("DoesNotExist")
	require.ErrorIs(err, artifacts.ErrArtifactNotFound)
	require.Contains(err.Error(), `artifact for contract "DoesNotExist" not found`)

	_, err = store.Artifact("metaanchor")
	require.ErrorIs(err, artifacts.ErrArtifactNotFound)
	require.Contains(err.Error(), "did you mean MetaAnchor?")
}

func TestArtifactEmptyName(t *testing.T) {
	store, _ := newStore(t)
	_, err := store.Artifact("  ")
	require.ErrorIs(t, err, constants.ErrEmptyContractName)
}

func TestArtifactAmbiguous(t *testing.T) {
	require := require.New(t)
	first := testutils.NewArtifact("MetaAnchor")
	second := testutils.NewArtifact("MetaAnchor")
	second.SourceName = "contracts/legacy/MetaAnchor.sol"
	store, _ := newStore(t, first, second)

	_, err := store.Artifact("MetaAnchor")
	require.ErrorIs(err, artifacts.ErrAmbiguousArtifact)
	require.Contains(err.Error(), "contracts/MetaAnchor.sol:MetaAnchor")
	require.Contains(err.Error(), "contracts/legacy/MetaAnchor.sol:MetaAnchor")
	var ambiguous *artifacts.AmbiguousError
	require.ErrorAs(err, &ambiguous)
	require.Equal([]string{
		"contracts/MetaAnchor.sol:MetaAnchor",
		"contracts/legacy/MetaAnchor.sol:MetaAnchor",
	}, ambiguous.Candidates)

	a, err := store.Artifact("contracts/legacy/MetaAnchor.sol:MetaAnchor")
	require.NoError(err)
	require.Equal("contracts/legacy/MetaAnchor.sol", a.SourceName)
}

func TestListSkipsBuildInfoAndDebugFiles(t *testing.T) {
	require := require.New(t)
	store, fs := newStore(t, testutils.NewArtifact("B"), testutils.NewArtifact("A"))
	require.NoError(fs.MkdirAll(filepath.Join(root, "build-info"), 0o755))
	require.NoError(afero.WriteFile(fs, filepath.Join(root, "build-info", "abc.json"), []byte("{}"), 0o644))
	require.NoError(afero.WriteFile(fs, filepath.Join(root, "contracts", "A.sol", "A.dbg.json"), []byte("{}"), 0o644))

	all, err := store.List()
	require.NoError(err)
	require.Len(all, 2)
	require.Equal("A", all[0].ContractName)
	require.Equal("B", all[1].ContractName)
}

func TestListRootSpellings(t *testing.T) {
	for _, spelling := range []string{"artifacts", "./artifacts", "artifacts/"} {
		t.Run(spelling, func(t *testing.T) {
			require := require.New(t)
			fs := afero.NewMemMapFs()
			testutils.WriteArtifact(t, fs, "artifacts", testutils.NewArtifact("MetaAnchor"))
			require.NoError(afero.WriteFile(fs, filepath.Join("artifacts", "stray.json"), []byte("{}"), 0o644))

			store := artifacts.NewStore(fs, spelling)
			require.Equal("artifacts", store.Root())

			all, err := store.List()
			require.NoError(err)
			require.Len(all, 1)
			require.Equal("MetaAnchor", all[0].ContractName)

			_, err = store.Artifact("MetaAnchor")
			require.NoError(err)
		})
	}
}

func TestMissingRootIsEmpty(t *testing.T) {
	require := require.New(t)
	store := artifacts.NewStore(afero.NewMemMapFs(), "/nowhere")

	all, err := store.List()
	require.NoError(err)
	require.Empty(all)

	_, err = store.Artifact("MetaAnchor")
	require.ErrorIs(err, artifacts.ErrArtifactNotFound)
}

func TestUnsupportedFormat(t *testing.T) {
	a := testutils.NewArtifact("MetaAnchor")
	a.Format = "something-else"
	store, _ := newStore(t, a)

	_, err := store.Artifact("MetaAnchor")
	require.ErrorIs(t, err, artifacts.ErrUnsupportedFormat)
}

func TestCreationCodeRejectsUndeployable(t *testing.T) {
	require := require.New(t)

	abstract := testutils.NewArtifact("IAnchor")
	abstract.Bytecode = "0x"
	require.True(abstract.IsAbstract())
	_, err := abstract.CreationCode()
	require.ErrorIs(err, artifacts.ErrAbstractContract)

	linked := testutils.NewArtifact("Registry")
	linked.Bytecode = "0x73__$d5c2f4e1b8a3$__6080"
	linked.LinkReferences = map[string]map[string][]artifacts.LinkReference{
		"contracts/Lib.sol": {"AnchorLib": {{Start: 1, Length: 20}}},
	}
	require.Equal([]string{"contracts/Lib.sol:AnchorLib"}, linked.UnlinkedLibraries())
	_, err = linked.CreationCode()
	require.ErrorIs(err, artifacts.ErrUnlinkedLibraries)
	require.Contains(err.Error(), "contracts/Lib.sol:AnchorLib")
}

func TestParseFullyQualifiedName(t *testing.T) {
	src, name := artifacts.ParseFullyQualifiedName("contracts/MetaAnchor.sol:MetaAnchor")
	require.Equal(t, "contracts/MetaAnchor.sol", src)
	require.Equal(t, "MetaAnchor", name)

	src, name = artifacts.ParseFullyQualifiedName("MetaAnchor")
	require.Empty(t, src)
	require.Equal(t, "MetaAnchor", name)
}

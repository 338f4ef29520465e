package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAtomicRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	cfg := validConfig()

	require.NoError(t, SaveAtomic(path, cfg))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.App.Port, got.App.Port)
	assert.Equal(t, cfg.Filter.Require, got.Filter.Require)
	assert.Equal(t, cfg.Sort.DegreeWeights, got.Sort.DegreeWeights)
}

func TestSaveAtomicKeepsBackup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	first := validConfig()
	require.NoError(t, SaveAtomic(path, first))

	second := first
	second.App.Port = 9999
	require.NoError(t, SaveAtomic(path, second))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9999, got.App.Port)

	bak, err := Load(path + ".bak")
	require.NoError(t, err)
	assert.Equal(t, first.App.Port, bak.App.Port)
}

func TestSaveAtomicRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	cfg := validConfig()
	cfg.Filter.Scope = "nowhere"

	err := SaveAtomic(path, cfg)
	require.Error(t, err)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "invalid config must not be written")
}

func TestEnsureUserConfig(t *testing.T) {
	dataDir := t.TempDir()
	defaultPath := filepath.Join(t.TempDir(), "default.yml")
	require.NoError(t, SaveAtomic(defaultPath, validConfig()))

	userPath, err := EnsureUserConfig(dataDir, defaultPath)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dataDir, "config.yml"), userPath)

	// Second call must not clobber user edits.
	edited := validConfig()
	edited.App.Port = 4242
	require.NoError(t, SaveAtomic(userPath, edited))

	again, err := EnsureUserConfig(dataDir, defaultPath)
	require.NoError(t, err)
	got, err := Load(again)
	require.NoError(t, err)
	assert.Equal(t, 4242, got.App.Port)
}

func TestNamedPairs(t *testing.T) {
	dataDir := t.TempDir()

	names, err := ListNamed(dataDir)
	require.NoError(t, err)
	assert.Empty(t, names)

	p := NamedPair{
		Filter: FilterSettings{Scope: "title", Require: []string{"engineer"}},
		Sort:   SortSettings{LocationPriority: []string{"CA"}},
	}
	require.NoError(t, SaveNamed(dataDir, "My Search", p))

	names, err = ListNamed(dataDir)
	require.NoError(t, err)
	assert.Equal(t, []string{"my_search"}, names)

	got, err := LoadNamed(dataDir, "my search")
	require.NoError(t, err)
	assert.Equal(t, p.Filter.Require, got.Filter.Require)

	_, err = LoadNamed(dataDir, "../escape")
	require.Error(t, err)

	bad := p
	bad.Filter.Scope = "nowhere"
	require.Error(t, SaveNamed(dataDir, "broken", bad))
}

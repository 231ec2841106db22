package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"source.hodakov.me/hdkv/animetree/internal/configuration"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func writeConfig(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "animetree.yaml")

	_, err := runCLI(t, "config", "init", "--path", path)
	require.NoError(t, err)

	return path
}

func TestConfigInitAndValidate(t *testing.T) {
	t.Parallel()

	path := writeConfig(t)

	config, err := configuration.Load(path)
	require.NoError(t, err)
	assert.Equal(t, configuration.Default(), config)

	_, err = runCLI(t, "config", "init", "--path", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = runCLI(t, "config", "init", "--path", path, "--overwrite")
	require.NoError(t, err)

	out, err := runCLI(t, "--config", path, "config", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration valid")
}

func TestConfigValidateRejectsBrokenFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "animetree.yaml")
	require.NoError(t, os.WriteFile(path, []byte("metadata:\n  episode_name_fallback: title\n"), 0o644))

	_, err := runCLI(t, "--config", path, "config", "validate")
	require.ErrorIs(t, err, configuration.ErrInvalidConfiguration)
}

func TestScanJSON(t *testing.T) {
	t.Parallel()

	configPath := writeConfig(t)

	library := filepath.Join(t.TempDir(), "Anime")
	show := filepath.Join(library, "Franchise", "02. Show")
	require.NoError(t, os.MkdirAll(filepath.Join(show, "extras"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(show, "Show - 01.mkv"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(show, "cover.jpg"), nil, 0o644))

	out, err := runCLI(t, "--config", configPath, "scan", library, "--json")
	require.NoError(t, err)

	var report struct {
		Root    string `json:"root"`
		Ignored bool   `json:"ignored"`
		Rows    []struct {
			Path  string `json:"path"`
			Role  string `json:"role"`
			Kind  string `json:"kind"`
			Name  string `json:"name"`
			Index *int   `json:"index"`
		} `json:"rows"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))

	assert.Equal(t, library, report.Root)
	assert.False(t, report.Ignored)

	roles := make(map[string]string, len(report.Rows))
	kinds := make(map[string]string, len(report.Rows))
	for _, row := range report.Rows {
		roles[row.Path] = row.Role
		kinds[row.Path] = row.Kind
	}

	assert.Equal(t, "FranchiseFolder", roles[filepath.Join(library, "Franchise")])
	assert.Equal(t, "AnimeFolder", roles[show])
	assert.Equal(t, "ExtraFolder", roles[filepath.Join(show, "extras")])
	assert.Equal(t, "EpisodeFile", roles[filepath.Join(show, "Show - 01.mkv")])
	assert.Equal(t, "CreateMedia", kinds[filepath.Join(show, "Show - 01.mkv")])
	assert.Equal(t, "Ignore", kinds[filepath.Join(show, "cover.jpg")])
}

func TestScanTableForIgnoredLibrary(t *testing.T) {
	t.Parallel()

	configPath := writeConfig(t)
	library := filepath.Join(t.TempDir(), "Shows")
	require.NoError(t, os.MkdirAll(library, 0o755))

	out, err := runCLI(t, "--config", configPath, "scan", library)
	require.NoError(t, err)
	assert.Contains(t, out, "not an anime tvshows library")
}

func TestClassifyFolder(t *testing.T) {
	t.Parallel()

	configPath := writeConfig(t)

	out, err := runCLI(t, "--config", configPath, "classify", "--dir", "--json", "/media/Anime/Franchise/03. Bocchi the Rock!")
	require.NoError(t, err)

	var result struct {
		Role   string `json:"role"`
		Folder struct {
			Name  string `json:"name"`
			Index *int   `json:"index"`
		} `json:"folder"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))

	assert.Equal(t, "AnimeFolder", result.Role)
	assert.Equal(t, "Bocchi the Rock!", result.Folder.Name)
	require.NotNil(t, result.Folder.Index)
	assert.Equal(t, 3, *result.Folder.Index)
}

func TestClassifyFileTable(t *testing.T) {
	t.Parallel()

	configPath := writeConfig(t)

	out, err := runCLI(t, "--config", configPath, "classify", "/media/Anime/01. Show/extras/NCOP.mkv")
	require.NoError(t, err)
	assert.Contains(t, out, "ExtraVideoFile")
	assert.Contains(t, out, "Category")

	out, err = runCLI(t, "--config", configPath, "classify", "/media/Anime/01. Show/cover.jpg")
	require.NoError(t, err)
	assert.Contains(t, out, "Unknown")
	assert.NotContains(t, out, "Sort name")
}

func TestClassifyFolderIndexError(t *testing.T) {
	t.Parallel()

	configPath := writeConfig(t)

	_, err := runCLI(t, "--config", configPath, "classify", "--dir", "/media/Anime/99999999999999999999999. Huge")
	require.Error(t, err)
}

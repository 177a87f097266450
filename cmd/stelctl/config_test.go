package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/stelkit/stel/printer"
)

func TestResolveSettingsDefaults(t *testing.T) {
	s := settingsFor(t)
	assert.Equal(t, "utf-8", s.Parse.Encoding)
	assert.Equal(t, printer.FormatText, s.Printer.Format)
	assert.False(t, s.Printer.ShowDigest)
	assert.Equal(t, []string{".stel"}, s.Scan.Extensions)
	assert.Equal(t, []string{".git"}, s.Scan.SkipDirs)
}

func TestResolveSettingsConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "stelctl.toml", []byte(`
encoding = "windows-1252"
format = "cbor"
digest = true
extensions = ["stel", ".bak"]
skip_dirs = [".git", "node_modules"]
`))

	s := settingsFor(t, "--config", path)
	assert.Equal(t, "windows-1252", s.Parse.Encoding)
	assert.Equal(t, printer.FormatCBOR, s.Printer.Format)
	assert.True(t, s.Printer.ShowDigest)
	assert.Equal(t, []string{".stel", ".bak"}, s.Scan.Extensions)
	assert.Equal(t, []string{".git", "node_modules"}, s.Scan.SkipDirs)

	// Flags win over the file.
	s = settingsFor(t, "--config", path, "--format", "text", "--encoding", "utf-8", "--digest=false")
	assert.Equal(t, "utf-8", s.Parse.Encoding)
	assert.Equal(t, printer.FormatText, s.Printer.Format)
	assert.False(t, s.Printer.ShowDigest)

	s = settingsFor(t, "--config", path, "--json")
	assert.Equal(t, printer.FormatJSON, s.Printer.Format)
}

func TestResolveSettingsErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := resolveSettings(newFlagCmd(t, "--config", filepath.Join(dir, "missing.toml")))
	require.Error(t, err, "an explicit config file must exist")

	bad := writeTestFile(t, dir, "bad.toml", []byte(`format = "xml"`))
	_, err = resolveSettings(newFlagCmd(t, "--config", bad))
	require.Error(t, err)

	unknown := writeTestFile(t, dir, "unknown.toml", []byte(`colour = "red"`))
	_, err = resolveSettings(newFlagCmd(t, "--config", unknown))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "colour")

	_, err = resolveSettings(newFlagCmd(t, "--encoding", "klingon"))
	require.Error(t, err)

	_, err = resolveSettings(newFlagCmd(t, "--format", "yaml"))
	require.Error(t, err)
}

func TestNormalizeExtensions(t *testing.T) {
	assert.Equal(t, []string{".stel", ".bin"}, normalizeExtensions([]string{"stel", " .bin ", ""}))
}

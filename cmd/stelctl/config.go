package main

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/joshuapare/stelkit/stel"
	"github.com/joshuapare/stelkit/stel/printer"
	"github.com/joshuapare/stelkit/stel/scan"
)

// defaultConfigFile is read from the working directory when --config is not given.
const defaultConfigFile = "stelctl.toml"

// fileConfig mirrors the keys accepted in stelctl.toml.
type fileConfig struct {
	Encoding   string   `toml:"encoding"`
	Format     string   `toml:"format"`
	Digest     bool     `toml:"digest"`
	Extensions []string `toml:"extensions"`
	SkipDirs   []string `toml:"skip_dirs"`
}

// settings is the effective configuration: defaults, then the config file,
// then command-line flags.
type settings struct {
	Parse   stel.Options
	Printer printer.Options
	Scan    scan.Options
}

func defaultSettings() settings {
	return settings{
		Parse:   stel.DefaultOptions(),
		Printer: printer.DefaultOptions(),
		Scan:    scan.DefaultOptions(),
	}
}

// applyConfigFile overlays the keys defined in path onto s. A missing file is
// only an error when required is set.
func applyConfigFile(s *settings, path string, required bool) error {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load config %s: %w", path, err)
	}

	if meta.IsDefined("encoding") {
		s.Parse.Encoding = strings.TrimSpace(raw.Encoding)
	}
	if meta.IsDefined("format") {
		f, err := printer.ParseFormat(raw.Format)
		if err != nil {
			return fmt.Errorf("config %s: %w", path, err)
		}
		s.Printer.Format = f
	}
	if meta.IsDefined("digest") {
		s.Printer.ShowDigest = raw.Digest
	}
	if meta.IsDefined("extensions") {
		s.Scan.Extensions = normalizeExtensions(raw.Extensions)
	}
	if meta.IsDefined("skip_dirs") {
		s.Scan.SkipDirs = raw.SkipDirs
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	return nil
}

// normalizeExtensions adds the leading dot where it was left out.
func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	return out
}

// resolveSettings builds the effective settings for cmd.
func resolveSettings(cmd *cobra.Command) (settings, error) {
	s := defaultSettings()
	flags := cmd.Flags()

	path, required := configPath, flags.Changed("config")
	if path == "" {
		path = defaultConfigFile
	}
	if err := applyConfigFile(&s, path, required); err != nil {
		return settings{}, err
	}

	if flags.Changed("encoding") {
		s.Parse.Encoding = encoding
	}
	if flags.Changed("format") {
		f, err := printer.ParseFormat(formatName)
		if err != nil {
			return settings{}, err
		}
		s.Printer.Format = f
	}
	if jsonOut {
		s.Printer.Format = printer.FormatJSON
	}
	if flags.Changed("digest") {
		s.Printer.ShowDigest = digest
	}

	if err := s.Parse.Validate(); err != nil {
		return settings{}, err
	}
	return s, nil
}

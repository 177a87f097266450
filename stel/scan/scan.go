// Package scan locates STEL files on disk.
package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
)

// DefaultExtension is the file extension of STEL files.
const DefaultExtension = ".stel"

// Options controls which paths Find reports.
type Options struct {
	// Extensions lists the accepted file extensions, leading dot included.
	// Matching is case-sensitive.
	// Default: [".stel"]
	Extensions []string

	// SkipDirs lists directory base names that are never descended into.
	// Default: [".git"]
	SkipDirs []string
}

// DefaultOptions returns the default scan options.
func DefaultOptions() Options {
	return Options{
		Extensions: []string{DefaultExtension},
		SkipDirs:   []string{".git"},
	}
}

// Match reports whether path has one of the accepted extensions.
func (o Options) Match(path string) bool {
	return slices.Contains(o.Extensions, filepath.Ext(path))
}

// Find returns the STEL files under root in lexical order.
//
// When root is a regular file it is returned alone if its extension matches.
// When root is a directory it is walked recursively, skipping directories
// named in SkipDirs. Errors reading a directory abort the walk.
func Find(root string, opts Options) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}
	if !info.IsDir() {
		if opts.Match(root) {
			return []string{root}, nil
		}
		return nil, nil
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && slices.Contains(opts.SkipDirs, d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() && opts.Match(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}
	return files, nil
}

// ErrNoFiles is returned by FindAll when no path yields a STEL file.
var ErrNoFiles = errors.New("scan: no matching files")

// FindAll runs Find over each root and concatenates the results. With
// recursive false, directories are rejected instead of walked.
func FindAll(roots []string, recursive bool, opts Options) ([]string, error) {
	var all []string
	for _, root := range roots {
		if !recursive {
			info, err := os.Stat(root)
			if err != nil {
				return nil, fmt.Errorf("scan %s: %w", root, err)
			}
			if info.IsDir() {
				return nil, fmt.Errorf("scan %s: is a directory (use --recursive)", root)
			}
			// An explicitly named file is parsed whatever its extension.
			all = append(all, root)
			continue
		}
		files, err := Find(root, opts)
		if err != nil {
			return nil, err
		}
		all = append(all, files...)
	}
	if len(all) == 0 {
		return nil, ErrNoFiles
	}
	return all, nil
}

//go:build !unix

// Package mmfile provides platform-specific helpers for mapping STEL files
// read-only into memory.
package mmfile

import "os"

// Map reads the entire file where read-only mapping is not wired up.
func Map(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return data, func() error { return nil }, nil
}

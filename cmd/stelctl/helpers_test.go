package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/stelkit/internal/testutil"
)

// stelBytes builds a STEL buffer whose metadata block carries name, or no
// metadata block at all when name is empty.
func stelBytes(name string) []byte {
	b := testutil.Builder{
		HeaderA: []byte("0123456789ABCD"),
		HeaderB: []byte{0x01, 0x02},
		Tail:    []byte{0xEE},
	}
	if name != "" {
		b.Fields = [][]byte{testutil.Field(testutil.TagName, name)}
	}
	return b.Bytes()
}

func writeTestFile(t *testing.T, dir, rel string, data []byte) string {
	t.Helper()
	return testutil.WriteFile(t, dir, rel, data)
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	return buf.String(), fnErr
}

// newFlagCmd returns a command with the global flags parsed from args.
// Defining the flags resets every global to its default first.
func newFlagCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	addGlobalFlags(cmd.Flags())
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

// settingsFor resolves settings as the parse command would for args.
func settingsFor(t *testing.T, args ...string) settings {
	t.Helper()
	s, err := resolveSettings(newFlagCmd(t, args...))
	require.NoError(t, err)
	return s
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}

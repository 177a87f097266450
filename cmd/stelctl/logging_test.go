package main

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]struct {
		level zerolog.Level
		ok    bool
	}{
		"":        {zerolog.InfoLevel, false},
		"debug":   {zerolog.DebugLevel, true},
		" WARN ":  {zerolog.WarnLevel, true},
		"off":     {zerolog.Disabled, true},
		"verbose": {zerolog.InfoLevel, false},
	}
	for raw, want := range tests {
		level, ok := parseLevel(raw)
		assert.Equal(t, want.level, level, raw)
		assert.Equal(t, want.ok, ok, raw)
	}
}

func TestInitLoggerLevels(t *testing.T) {
	t.Setenv(envLogLevel, "")
	defer func() { verbose, quiet = false, false }()

	verbose, quiet = false, false
	assert.Equal(t, zerolog.InfoLevel, initLogger(&bytes.Buffer{}).GetLevel())

	verbose = true
	assert.Equal(t, zerolog.DebugLevel, initLogger(&bytes.Buffer{}).GetLevel())

	quiet = true
	assert.Equal(t, zerolog.ErrorLevel, initLogger(&bytes.Buffer{}).GetLevel())

	t.Setenv(envLogLevel, "trace")
	assert.Equal(t, zerolog.TraceLevel, initLogger(&bytes.Buffer{}).GetLevel())
}

func TestInitLoggerWritesToOutput(t *testing.T) {
	t.Setenv(envLogLevel, "")
	noColor = true
	defer func() { noColor = false }()

	var out bytes.Buffer
	logger := initLogger(&out)
	logger.Info().Str("path", "x.stel").Msg("parsed")
	assert.Contains(t, out.String(), "parsed")
	assert.Contains(t, out.String(), "x.stel")
}

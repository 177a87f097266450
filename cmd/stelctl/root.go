package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	// Global flags
	verbose    bool
	quiet      bool
	jsonOut    bool
	noColor    bool
	digest     bool
	formatName string
	encoding   string
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "stelctl",
	Short: "Inspect STEL binary files",
	Long: `stelctl decodes STEL binary files and reports their sections: the two
opaque header regions, the human metadata block (name, description, field 3A,
website link) when present, and any leftover bytes.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initLogger(os.Stderr)
	},
}

func init() {
	addGlobalFlags(rootCmd.PersistentFlags())
}

// addGlobalFlags defines the flags shared by every subcommand.
func addGlobalFlags(fs *pflag.FlagSet) {
	fs.BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	fs.BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	fs.BoolVar(&jsonOut, "json", false, "Output in JSON format (same as --format json)")
	fs.BoolVar(&noColor, "no-color", false, "Disable colored log output")
	fs.BoolVar(&digest, "digest", false, "Include file size and BLAKE3 digest")
	fs.StringVarP(&formatName, "format", "f", "text", "Output format: text, json or cbor")
	fs.StringVar(&encoding, "encoding", "utf-8", "Text encoding of metadata strings (WHATWG label)")
	fs.StringVar(&configPath, "config", "", "Path to a TOML config file (default ./"+defaultConfigFile+" if present)")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

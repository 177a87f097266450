package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/joshuapare/stelkit/stel"
	"github.com/joshuapare/stelkit/stel/printer"
	"github.com/joshuapare/stelkit/stel/scan"
)

var parseRecursive bool

func init() {
	rootCmd.AddCommand(newParseCmd())
}

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <path>...",
		Short: "Decode STEL files and print their sections",
		Long: `The parse command decodes each STEL file and prints its header regions,
human metadata and leftover bytes. With --recursive, directories are walked
and every file with a configured extension (default .stel) is parsed; .git
directories are skipped.

A file that fails to parse is reported and the remaining files are still
processed. The command exits with an error if any file failed.

Example:
  stelctl parse level.stel
  stelctl parse -r ./levels --format json
  stelctl parse -r . --encoding windows-1252 --digest`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveSettings(cmd)
			if err != nil {
				return err
			}
			return runParse(args, s)
		},
	}
	cmd.Flags().BoolVarP(&parseRecursive, "recursive", "r", false, "Descend into directories")
	return cmd
}

func runParse(args []string, s settings) error {
	files, err := scan.FindAll(args, parseRecursive, s.Scan)
	if err != nil {
		if errors.Is(err, scan.ErrNoFiles) {
			return fmt.Errorf("no %s files found in %s", strings.Join(s.Scan.Extensions, "/"), strings.Join(args, ", "))
		}
		return err
	}
	log.Debug().Int("files", len(files)).Str("encoding", s.Parse.Encoding).Msg("starting parse")

	p := printer.New(os.Stdout, s.Printer)
	failed := 0
	for _, path := range files {
		f, err := stel.ParseFile(path, s.Parse)
		if err != nil {
			failed++
			log.Error().Err(err).Str("path", path).Msg("parse failed")
			if perr := p.PrintFailure(path, err); perr != nil {
				return perr
			}
			continue
		}
		log.Debug().
			Str("path", path).
			Int("size", f.Size).
			Bool("human_metadata", f.Container.Human != nil).
			Int("leftover", len(f.Container.Leftover)).
			Msg("parsed")
		if err := p.PrintFile(f); err != nil {
			return fmt.Errorf("print %s: %w", path, err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) failed to parse", failed, len(files))
	}
	return nil
}

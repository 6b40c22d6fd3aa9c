/*
This is free and unencumbered software released into the public domain. For more
information, see <http://unlicense.org/> or the accompanying UNLICENSE file.
*/

// Package pipeline sequences the three processing stages over one set of
// directories: raw formatting, decoding, then aggregation. Each stage is
// the same code the standalone commands run; the first failure aborts the
// run.
package pipeline

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/iand/punster/codebook"
	"github.com/iand/punster/decode"
	"github.com/iand/punster/format"
	"github.com/iand/punster/histpun"
	"github.com/iand/punster/logging"
)

var Command = &cli.Command{
	Name:   "run",
	Usage:  "Run the full pipeline: format, decode and aggregate.",
	Action: run,
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:        "input",
			Aliases:     []string{"i"},
			Usage:       "Directory containing fixed-width .txt files",
			Value:       ".",
			Destination: &opts.inputDir,
		},
		&cli.StringFlag{
			Name:        "rawdir",
			Usage:       "Directory for raw-formatted CSV files",
			Value:       "csv_raw_formatted",
			Destination: &opts.rawDir,
		},
		&cli.StringFlag{
			Name:        "decodeddir",
			Usage:       "Directory for decoded CSV files",
			Value:       "csv_decoded",
			Destination: &opts.decodedDir,
		},
		&cli.StringFlag{
			Name:        "codebooks",
			Aliases:     []string{"c"},
			Usage:       "Directory containing the code book JSON files",
			Value:       ".",
			Destination: &opts.codebookDir,
		},
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Filename of the statistical table to write",
			Value:       "histpun_output.csv",
			Destination: &opts.outputFilename,
		},
	}, logging.Flags...),
}

var opts struct {
	inputDir       string
	rawDir         string
	decodedDir     string
	codebookDir    string
	outputFilename string
}

func run(cc *cli.Context) error {
	logging.Setup()

	// Load the code books before doing any work so a missing or
	// malformed book aborts the run before any output is written.
	books, err := codebook.LoadSet(opts.codebookDir)
	if err != nil {
		return fmt.Errorf("load code books: %w", err)
	}

	if err := format.Process(opts.inputDir, opts.rawDir); err != nil {
		return fmt.Errorf("format stage: %w", err)
	}

	if err := decode.Process(opts.rawDir, opts.decodedDir, books); err != nil {
		return fmt.Errorf("decode stage: %w", err)
	}

	if err := histpun.Process(opts.decodedDir, opts.outputFilename); err != nil {
		return fmt.Errorf("aggregation stage: %w", err)
	}

	return nil
}

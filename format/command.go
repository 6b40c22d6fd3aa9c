/*
This is free and unencumbered software released into the public domain. For more
information, see <http://unlicense.org/> or the accompanying UNLICENSE file.
*/

// Package format implements the raw-formatting stage: fixed-width flat
// files in, one raw CSV per input file out. Extraction is purely
// positional; every interpretation of a value happens in the decode stage.
package format

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/iand/punster/csvio"
	"github.com/iand/punster/flatfile"
	"github.com/iand/punster/logging"
)

var Command = &cli.Command{
	Name:   "format",
	Usage:  "Extract raw fields from fixed-width intake record files.",
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
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Directory in which to write raw-formatted CSV files",
			Value:       "csv_raw_formatted",
			Destination: &opts.outputDir,
		},
	}, logging.Flags...),
}

var opts struct {
	inputDir  string
	outputDir string
}

func run(cc *cli.Context) error {
	logging.Setup()
	return Process(opts.inputDir, opts.outputDir)
}

// Process extracts every *.txt file in inputDir into a raw CSV in
// outputDir. Files are processed in name order. No matching input files
// is an error before any output is written.
func Process(inputDir string, outputDir string) error {
	files, err := flatfile.Discover(inputDir, "*.txt")
	if err != nil {
		return fmt.Errorf("discover flat files: %w", err)
	}

	for _, filename := range files {
		if err := formatFile(filename, outputDir); err != nil {
			return fmt.Errorf("format %s: %w", filepath.Base(filename), err)
		}
	}

	return nil
}

func formatFile(filename string, outputDir string) error {
	lines, err := flatfile.ReadLines(filename)
	if err != nil {
		return err
	}

	header := flatfile.InmateLayout.Names()
	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rec := flatfile.InmateLayout.Extract(line)
		row := make([]string, len(header))
		for i, name := range header {
			row[i] = rec[name]
		}
		rows = append(rows, row)
	}

	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	outName := filepath.Join(outputDir, base+"_rawformatted.csv")
	if err := csvio.WriteRows(outName, header, rows); err != nil {
		return err
	}
	logging.Info("wrote raw-formatted file", "filename", outName, "records", len(rows))

	return nil
}

/*
This is free and unencumbered software released into the public domain. For more
information, see <http://unlicense.org/> or the accompanying UNLICENSE file.
*/

package decode

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/iand/punster/codebook"
	"github.com/iand/punster/csvio"
	"github.com/iand/punster/flatfile"
	"github.com/iand/punster/logging"
)

var Command = &cli.Command{
	Name:   "decode",
	Usage:  "Decode raw-formatted record files into human-readable fields.",
	Action: run,
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:        "input",
			Aliases:     []string{"i"},
			Usage:       "Directory containing raw-formatted CSV files",
			Value:       "csv_raw_formatted",
			Destination: &opts.inputDir,
		},
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Directory in which to write decoded CSV files",
			Value:       "csv_decoded",
			Destination: &opts.outputDir,
		},
		&cli.StringFlag{
			Name:        "codebooks",
			Aliases:     []string{"c"},
			Usage:       "Directory containing the code book JSON files",
			Value:       ".",
			Destination: &opts.codebookDir,
		},
	}, logging.Flags...),
}

var opts struct {
	inputDir    string
	outputDir   string
	codebookDir string
}

func run(cc *cli.Context) error {
	logging.Setup()

	books, err := codebook.LoadSet(opts.codebookDir)
	if err != nil {
		return fmt.Errorf("load code books: %w", err)
	}
	if logging.Opts.VeryVerbose {
		logging.Dump(books)
	}

	return Process(opts.inputDir, opts.outputDir, books)
}

// Process decodes every raw-formatted CSV in inputDir into a decoded CSV
// in outputDir, in name order.
func Process(inputDir string, outputDir string, books *codebook.Set) error {
	files, err := flatfile.Discover(inputDir, "*_rawformatted.csv")
	if err != nil {
		return fmt.Errorf("discover raw-formatted files: %w", err)
	}

	d := NewDecoder(books)
	for _, filename := range files {
		if err := decodeFile(d, filename, outputDir); err != nil {
			return fmt.Errorf("decode %s: %w", filepath.Base(filename), err)
		}
	}

	return nil
}

func decodeFile(d *Decoder, filename string, outputDir string) error {
	rows, err := csvio.ReadRows(filename)
	if err != nil {
		return err
	}

	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, d.Decode(row))
	}

	base := strings.TrimSuffix(filepath.Base(filename), "_rawformatted.csv")
	outName := filepath.Join(outputDir, base+"_decoded.csv")
	if err := csvio.WriteRows(outName, Columns, out); err != nil {
		return err
	}
	logging.Info("wrote decoded file", "filename", outName, "records", len(out))

	return nil
}

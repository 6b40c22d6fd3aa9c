/*
This is free and unencumbered software released into the public domain. For more
information, see <http://unlicense.org/> or the accompanying UNLICENSE file.
*/

package histpun

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/iand/punster/csvio"
	"github.com/iand/punster/flatfile"
	"github.com/iand/punster/logging"
)

// Header is the fixed column order of the statistical table.
var Header = []string{
	"Country",
	"Year",
	"Statistic",
	"Value",
	"Source",
	"State",
	"Race",
	"Gender",
	"Age",
	"Crime",
	"Institution",
	"County",
	"Complete",
}

var Command = &cli.Command{
	Name:   "histpun",
	Usage:  "Aggregate decoded records into the year-by-year statistical table.",
	Action: run,
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:        "input",
			Aliases:     []string{"i"},
			Usage:       "Directory containing decoded CSV files",
			Value:       "csv_decoded",
			Destination: &opts.inputDir,
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
	outputFilename string
}

func run(cc *cli.Context) error {
	logging.Setup()
	return Process(opts.inputDir, opts.outputFilename)
}

// Process reads every decoded CSV in inputDir, aggregates the combined
// record stream and writes the statistical table. Aggregation runs over
// the union of all files because the completeness tags describe whole
// years, and one year's records may span files.
func Process(inputDir string, outputFilename string) error {
	recs, dropped, err := LoadRecords(inputDir)
	if err != nil {
		return err
	}
	if dropped > 0 {
		logging.Info("excluded records with no reception year", "count", dropped)
	}

	rows := Aggregate(recs)

	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, encode(row))
	}
	if err := csvio.WriteRows(outputFilename, Header, out); err != nil {
		return fmt.Errorf("write statistical table: %w", err)
	}
	logging.Info("wrote statistical table", "filename", outputFilename, "rows", len(rows))

	return nil
}

// LoadRecords reads every decoded CSV in dir into the aggregation view,
// returning the records plus the count of rows excluded for having no
// parseable reception date.
func LoadRecords(dir string) ([]Record, int, error) {
	files, err := flatfile.Discover(dir, "*_decoded.csv")
	if err != nil {
		return nil, 0, fmt.Errorf("discover decoded files: %w", err)
	}

	var recs []Record
	dropped := 0
	for _, filename := range files {
		rows, err := csvio.ReadRows(filename)
		if err != nil {
			return nil, 0, fmt.Errorf("read %s: %w", filepath.Base(filename), err)
		}
		for _, row := range rows {
			rec, ok := ParseRecord(row)
			if !ok {
				dropped++
				continue
			}
			recs = append(recs, rec)
		}
	}

	return recs, dropped, nil
}

func encode(row Row) []string {
	return []string{
		row.Country,
		strconv.Itoa(row.Year),
		row.Statistic,
		strconv.Itoa(row.Value),
		row.Source,
		row.State,
		row.Race,
		row.Gender,
		row.Age,
		row.Crime,
		row.Institution,
		row.County,
		row.Complete,
	}
}

/*
This is free and unencumbered software released into the public domain. For more
information, see <http://unlicense.org/> or the accompanying UNLICENSE file.
*/

// Package chart renders a bar chart of prisoners received per year from
// the decoded record files.
package chart

import (
	"fmt"
	"os"
	"strconv"

	"github.com/urfave/cli/v2"
	gochart "github.com/wcharczuk/go-chart/v2"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/iand/punster/histpun"
	"github.com/iand/punster/logging"
)

var Command = &cli.Command{
	Name:   "chart",
	Usage:  "Render a chart of prisoners received per year.",
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
			Usage:       "Output image filename",
			Value:       "histpun_chart.png",
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

	recs, _, err := histpun.LoadRecords(opts.inputDir)
	if err != nil {
		return fmt.Errorf("load records: %w", err)
	}

	counts := make(map[int]int)
	for _, rec := range recs {
		counts[rec.Year()]++
	}
	years := maps.Keys(counts)
	slices.Sort(years)

	bars := make([]gochart.Value, 0, len(years))
	for _, year := range years {
		bars = append(bars, gochart.Value{
			Value: float64(counts[year]),
			Label: strconv.Itoa(year),
		})
	}

	graph := gochart.BarChart{
		Title:    "Prisoners received per year",
		Height:   512,
		BarWidth: 40,
		Bars:     bars,
	}

	f, err := os.Create(opts.outputFilename)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()

	if err := graph.Render(gochart.PNG, f); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	logging.Info("wrote chart", "filename", opts.outputFilename, "years", len(years))

	return nil
}

/*
This is free and unencumbered software released into the public domain. For more
information, see <http://unlicense.org/> or the accompanying UNLICENSE file.
*/

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/iand/punster/chart"
	"github.com/iand/punster/decode"
	"github.com/iand/punster/format"
	"github.com/iand/punster/histpun"
	"github.com/iand/punster/pipeline"
)

func main() {
	app := &cli.App{
		Name:     "punster",
		HelpName: "punster",
		Usage:    "Decode historical inmate intake records and build punishment statistics",
		Commands: []*cli.Command{
			format.Command,
			decode.Command,
			histpun.Command,
			chart.Command,
			pipeline.Command,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}

package logging

import (
	"github.com/iand/pontium/hlog"
	"github.com/kortschak/utter"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/slog"
)

var Flags = []cli.Flag{
	&cli.BoolFlag{
		Name:        "verbose",
		Aliases:     []string{"v"},
		Usage:       "Set logging level more verbose to include info level logs",
		Value:       false,
		Destination: &Opts.Verbose,
	},

	&cli.BoolFlag{
		Name:        "veryverbose",
		Aliases:     []string{"vv"},
		Usage:       "Set logging level more verbose to include debug level logs",
		Destination: &Opts.VeryVerbose,
	},

	&cli.StringSliceFlag{
		Name:        "log-files",
		Usage:       "Always emit debug logging for these input file base names, comma separated",
		Destination: &Opts.LogFiles,
	},
}

var Opts struct {
	Verbose     bool
	VeryVerbose bool
	LogFiles    cli.StringSlice
}

func Setup() {
	h := new(hlog.Handler)
	h = h.WithLevel(level())
	logFiles := Opts.LogFiles.Value()
	if len(logFiles) > 0 {
		for _, name := range logFiles {
			h = h.WithAttrLevel(slog.String("file", name), slog.LevelDebug)
		}
	}

	slog.SetDefault(slog.New(h))
}

// level maps the verbosity flags to the minimum emitted log level.
func level() slog.Level {
	switch {
	case Opts.VeryVerbose:
		return slog.LevelDebug
	case Opts.Verbose:
		return slog.LevelInfo
	default:
		return slog.LevelWarn
	}
}

var (
	Default = slog.Default
	Debug   = slog.Debug
	Info    = slog.Info
	Warn    = slog.Warn
	Error   = slog.Error
	With    = slog.With
)

func Dump(v any) {
	switch vt := v.(type) {
	case string:
		slog.Info(vt)
	default:
		slog.Info(utter.Sdump(v))
	}
}

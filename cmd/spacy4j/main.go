package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/languagetoys/spacy4j/config"
)

// Build information, set via ldflags.
var (
	BuildTag    = "dev"
	BuildCommit = ""
)

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr}

	if err := run(os.Args, ui); err != nil {
		fmt.Fprintf(ui.Err, "spacy4j: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, ui UI) error {
	st := &state{ui: ui}

	app := &cli.App{
		Name:      "spacy4j",
		Usage:     "tokenized document toolkit",
		Writer:    ui.Out,
		ErrWriter: ui.Err,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "store",
				Aliases: []string{"s"},
				Usage:   "document store: docfile directory, sqlite file or postgres:// DSN",
				EnvVars: []string{config.EnvStore},
			},
			&cli.StringFlag{
				Name:    "config",
				Usage:   "configuration file",
				EnvVars: []string{config.EnvConfig},
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable colored output",
			},
		},
		Before: st.before,
		After:  st.after,
		Commands: []*cli.Command{
			lsCommand(st),
			docCommand(st),
			sentsCommand(st),
			tokensCommand(st),
			textCommand(st),
			findCommand(st),
			statCommand(st),
			convertCommand(st),
			importCommand(st),
			exportCommand(st),
			exploreCommand(st),
			versionCommand(st),
		},
	}

	return app.Run(args)
}

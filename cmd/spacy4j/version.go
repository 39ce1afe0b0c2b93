package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

func versionCommand(st *state) *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "show build information",
		Action: func(c *cli.Context) error {
			_, err := fmt.Fprintf(st.ui.Out, "spacy4j version %s (commit: %s)\n", BuildTag, BuildCommit)
			return err
		},
	}
}

package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/languagetoys/spacy4j/corpus"
)

func convertCommand(st *state) *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "convert a docfile between codec formats",
		ArgsUsage: "<in> <out>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return errors.New("convert command needs exactly two arguments: <in> <out>")
			}

			in, out := c.Args().Get(0), c.Args().Get(1)

			doc, err := corpus.ReadFile(in)
			if err != nil {
				return err
			}

			if err := corpus.WriteFile(out, doc); err != nil {
				return err
			}

			fmt.Fprintf(st.ui.Err, "Converted %s to %s\n", in, out)
			return nil
		},
	}
}

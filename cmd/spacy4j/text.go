package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/languagetoys/spacy4j/container"
	"github.com/languagetoys/spacy4j/corpus"
)

func textCommand(st *state) *cli.Command {
	return &cli.Command{
		Name:      "text",
		Usage:     "print the text reconstructed from a docfile's tokens",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "ws",
				Usage: "keep leading and trailing whitespace",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return errors.New("text command needs exactly one argument: <file>")
			}

			doc, err := corpus.ReadFile(c.Args().First())
			if err != nil {
				return err
			}

			if c.Bool("ws") {
				fmt.Fprintln(st.ui.Out, container.TextWithWhitespace(doc.Tokens))
				return nil
			}

			fmt.Fprintln(st.ui.Out, container.TextTrimmed(doc.Tokens))
			return nil
		},
	}
}

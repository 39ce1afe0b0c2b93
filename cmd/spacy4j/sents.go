package main

import (
	"errors"

	"github.com/urfave/cli/v2"
)

func sentsCommand(st *state) *cli.Command {
	return &cli.Command{
		Name:      "sents",
		Usage:     "list the sentences of a document",
		ArgsUsage: "<id|title>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return errors.New("sents command needs exactly one argument: <id|title>")
			}

			repo, err := st.repository(c)
			if err != nil {
				return err
			}

			doc, err := readDocArg(repo, c.Args().First())
			if err != nil {
				return err
			}

			st.renderer(c).Doc(doc.Container())
			return nil
		},
	}
}

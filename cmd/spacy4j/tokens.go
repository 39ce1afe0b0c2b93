package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"
)

func tokensCommand(st *state) *cli.Command {
	return &cli.Command{
		Name:      "tokens",
		Usage:     "show the token table of a document or one sentence",
		ArgsUsage: "<id|title> [sentence]",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 || c.NArg() > 2 {
				return errors.New("tokens command needs <id|title> and an optional sentence index")
			}

			repo, err := st.repository(c)
			if err != nil {
				return err
			}

			doc, err := readDocArg(repo, c.Args().First())
			if err != nil {
				return err
			}

			cd := doc.Container()
			r := st.renderer(c)

			if c.NArg() == 1 {
				r.TokenTable(cd.TokenData())
				return nil
			}

			sentId, err := strconv.Atoi(c.Args().Get(1))
			if err != nil {
				return fmt.Errorf("invalid sentence index: %s", c.Args().Get(1))
			}

			sentences := cd.Sentences()
			if sentId < 0 || sentId >= len(sentences) {
				return fmt.Errorf("sentence index %d out of bounds (doc has %d sentences)", sentId, len(sentences))
			}

			r.TokenTable(sentences[sentId].TokenData())
			return nil
		},
	}
}

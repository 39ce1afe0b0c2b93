package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/languagetoys/spacy4j/render"
)

func docCommand(st *state) *cli.Command {
	return &cli.Command{
		Name:      "doc",
		Usage:     "show a document",
		ArgsUsage: "<id|title>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "write the document as JSON",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return errors.New("doc command needs exactly one argument: <id|title>")
			}

			repo, err := st.repository(c)
			if err != nil {
				return err
			}

			doc, err := readDocArg(repo, c.Args().First())
			if err != nil {
				return err
			}

			if c.Bool("json") {
				return render.NewJSONRenderer(st.ui.Out).Doc(doc)
			}

			fmt.Fprintf(st.ui.Out, "📖 %d %s\n", doc.Id, doc.Title)
			if len(doc.Labels) > 0 {
				fmt.Fprintf(st.ui.Out, "🔖 %s\n", strings.Join(doc.Labels, ", "))
			}
			fmt.Fprintln(st.ui.Out, doc.Container().Text())
			return nil
		},
	}
}

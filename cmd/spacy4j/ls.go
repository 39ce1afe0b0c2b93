package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"
)

func lsCommand(st *state) *cli.Command {
	return &cli.Command{
		Name:      "ls",
		Usage:     "list documents in the store",
		ArgsUsage: "[label]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "labels",
				Aliases: []string{"l"},
				Usage:   "list the label set instead of documents",
			},
		},
		Action: func(c *cli.Context) error {
			repo, err := st.repository(c)
			if err != nil {
				return err
			}

			match := c.Args().First()

			if c.Bool("labels") {
				labels, err := repo.Labels(match)
				if err != nil {
					return err
				}
				if len(labels) > 0 {
					fmt.Fprintln(st.ui.Out, strings.Join(labels, ", "))
				}
				return nil
			}

			docs, err := repo.List(match)
			if err != nil {
				return err
			}

			for _, doc := range docs {
				fmt.Fprintf(st.ui.Out, "📖 %d %s\n", doc.Id, doc.Title)
			}
			return nil
		},
	}
}

package main

import (
	"fmt"

	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"

	"github.com/languagetoys/spacy4j/storage/filesystem"
)

func importCommand(st *state) *cli.Command {
	return &cli.Command{
		Name:  "import",
		Usage: "copy documents from a docfile directory into a store",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "from",
				Required: true,
				Usage:    "source docfile directory",
			},
			&cli.StringFlag{
				Name:     "to",
				Required: true,
				Usage:    "target store: sqlite file or postgres:// DSN, created when missing",
			},
		},
		Action: func(c *cli.Context) error {
			src, err := filesystem.NewDocStore(c.String("from"))
			if err != nil {
				return err
			}

			dst, err := st.open(c.String("to"), true)
			if err != nil {
				return err
			}

			docs, err := src.List("")
			if err != nil {
				return err
			}

			fmt.Fprintf(st.ui.Out, "Reading docs from %s...\n", c.String("from"))

			uiprogress.Start()
			bar := uiprogress.AddBar(len(docs))
			bar.AppendCompleted()
			bar.PrependElapsed()

			count := 0
			for _, meta := range docs {
				doc, err := src.Read(meta.Id)
				if err != nil {
					uiprogress.Stop()
					return fmt.Errorf("failed to read doc %s: %w", meta.Title, err)
				}

				if err := dst.Write(doc); err != nil {
					uiprogress.Stop()
					return fmt.Errorf("failed to write doc %s: %w", meta.Title, err)
				}
				count++
				bar.Incr()
			}
			uiprogress.Stop()

			fmt.Fprintf(st.ui.Out, "Successfully imported %d docs from %s to %s\n", count, c.String("from"), c.String("to"))
			return nil
		},
	}
}

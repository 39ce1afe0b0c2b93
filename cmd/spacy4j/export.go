package main

import (
	"fmt"
	"os"

	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"

	"github.com/languagetoys/spacy4j/corpus"
	"github.com/languagetoys/spacy4j/storage/filesystem"
)

func exportCommand(st *state) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "copy documents from a store into a docfile directory",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "from",
				Required: true,
				Usage:    "source store: sqlite file or postgres:// DSN",
			},
			&cli.StringFlag{
				Name:     "to",
				Required: true,
				Usage:    "target docfile directory, created when missing",
			},
		},
		Action: func(c *cli.Context) error {
			src, err := st.open(c.String("from"), false)
			if err != nil {
				return err
			}

			if err := os.MkdirAll(c.String("to"), 0755); err != nil {
				return fmt.Errorf("failed to create target directory: %w", err)
			}

			dst, err := filesystem.NewDocStore(c.String("to"))
			if err != nil {
				return err
			}

			docs, err := src.List("")
			if err != nil {
				return err
			}

			uiprogress.Start()
			bar := uiprogress.AddBar(len(docs))
			bar.AppendCompleted()
			bar.PrependElapsed()

			count := 0
			for _, meta := range docs {
				doc, err := src.Read(meta.Id)
				if err != nil {
					uiprogress.Stop()
					return fmt.Errorf("failed to read doc %s (id %d): %w", meta.Title, meta.Id, err)
				}

				// stored titles need a codec extension to become file names
				if _, err := corpus.FormatForPath(doc.Title); err != nil {
					doc.Title += ".json"
				}

				if err := dst.Write(doc); err != nil {
					uiprogress.Stop()
					return fmt.Errorf("failed to write doc %s: %w", doc.Title, err)
				}
				count++
				bar.Incr()
			}
			uiprogress.Stop()

			fmt.Fprintf(st.ui.Out, "Successfully exported %d docs from %s to %s\n", count, c.String("from"), c.String("to"))
			return nil
		},
	}
}

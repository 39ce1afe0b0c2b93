package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/languagetoys/spacy4j/config"
	"github.com/languagetoys/spacy4j/corpus"
	"github.com/languagetoys/spacy4j/render"
	"github.com/languagetoys/spacy4j/storage"
)

func findCommand(st *state) *cli.Command {
	return &cli.Command{
		Name:      "find",
		Usage:     "search sentences containing all given lemmas",
		ArgsUsage: "<lemma> ...",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"n"},
				Value:   100,
				Usage:   "maximum number of hits",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "hit format: " + strings.Join(render.SupportedFormats(), ", "),
				EnvVars: []string{config.EnvFormat},
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "write hits as JSON",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return errors.New("find command needs at least one lemma")
			}

			if c.IsSet("format") && !render.IsSupportedFormat(c.String("format")) {
				return fmt.Errorf("unsupported format %q, allowed: %s", c.String("format"), strings.Join(render.SupportedFormats(), ", "))
			}

			repo, err := st.repository(c)
			if err != nil {
				return err
			}

			lemmas := c.Args().Slice()
			limit := c.Int("limit")

			if c.Bool("json") {
				var hits []corpus.Sentence
				if err := findAll(repo, lemmas, limit, func(hit corpus.Sentence) error {
					hits = append(hits, hit)
					return nil
				}); err != nil {
					return err
				}
				return render.NewJSONRenderer(st.ui.Out).Hits(hits)
			}

			r := st.renderer(c)
			return findAll(repo, lemmas, limit, func(hit corpus.Sentence) error {
				r.Hit(hit, lemmas)
				return nil
			})
		},
	}
}

// findAll pages through FindLemma until limit hits are delivered or the
// cursor stops advancing.
func findAll(repo storage.DocReader, lemmas []string, limit int, onHit func(corpus.Sentence) error) error {
	found := 0
	cursor := storage.Cursor(0)

	for found < limit {
		next, err := repo.FindLemma(lemmas, cursor, limit-found, func(hit corpus.Sentence) error {
			found++
			return onHit(hit)
		})
		if err != nil {
			return err
		}

		if next == cursor {
			return nil
		}
		cursor = next
	}

	return nil
}

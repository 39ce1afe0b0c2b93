package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/languagetoys/spacy4j/stat"
)

func statCommand(st *state) *cli.Command {
	return &cli.Command{
		Name:      "stat",
		Usage:     "show statistics for the store or one document",
		ArgsUsage: "[id|title]",
		Action: func(c *cli.Context) error {
			if c.NArg() > 1 {
				return errors.New("stat command accepts at most one argument")
			}

			repo, err := st.repository(c)
			if err != nil {
				return err
			}

			hdl := stat.NewHandler()

			if c.NArg() == 1 {
				doc, err := readDocArg(repo, c.Args().First())
				if err != nil {
					return err
				}
				hdl.Aggregate(doc.Container())
			} else {
				docs, err := repo.List("")
				if err != nil {
					return err
				}
				for _, meta := range docs {
					doc, err := repo.Read(meta.Id)
					if err != nil {
						return err
					}
					hdl.Aggregate(doc.Container())
				}
			}

			printStats(st.ui.Out, hdl.Get())
			return nil
		},
	}
}

func printStats(w io.Writer, stats stat.Stats) {
	fmt.Fprintf(w, "%-18s %d\n", "docs", stats.NumDocs)
	fmt.Fprintf(w, "%-18s %d\n", "sentences", stats.NumSentences)
	fmt.Fprintf(w, "%-18s %d\n", "tokens", stats.NumTokens)
	fmt.Fprintf(w, "%-18s %d\n", "runes", stats.NumRunes)
	fmt.Fprintf(w, "%-18s min %d, mean %d, max %d\n", "tokens/sentence",
		stats.TokensPerSentenceMin, stats.TokensPerSentenceMean, stats.TokensPerSentenceMax)

	if len(stats.TopLemmas) > 0 {
		lemmas := make([]string, 0, len(stats.TopLemmas))
		for _, lc := range stats.TopLemmas {
			lemmas = append(lemmas, fmt.Sprintf("%s (%d)", lc.Lemma, lc.Count))
		}
		fmt.Fprintf(w, "%-18s %s\n", "top lemmas", strings.Join(lemmas, ", "))
	}
}

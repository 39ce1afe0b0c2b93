package main

import (
	"fmt"
	"strings"

	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"

	"github.com/languagetoys/spacy4j/config"
	"github.com/languagetoys/spacy4j/explore"
	"github.com/languagetoys/spacy4j/render"
	"github.com/languagetoys/spacy4j/storage"
)

func exploreCommand(st *state) *cli.Command {
	return &cli.Command{
		Name:  "explore",
		Usage: "enter interactive explore mode",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "hit format: " + strings.Join(render.SupportedFormats(), ", "),
				EnvVars: []string{config.EnvFormat},
			},
		},
		Action: func(c *cli.Context) error {
			if c.IsSet("format") && !render.IsSupportedFormat(c.String("format")) {
				return fmt.Errorf("unsupported format %q, allowed: %s", c.String("format"), strings.Join(render.SupportedFormats(), ", "))
			}

			repo, err := st.repository(c)
			if err != nil {
				return err
			}

			// docfile stores scan lazily, load everything before the prompt
			if pre, ok := repo.(storage.Preloader); ok {
				if err := preload(pre); err != nil {
					return err
				}
			}

			h := explore.NewHandler(repo, st.renderer(c), nil)
			return h.Run()
		},
	}
}

func preload(pre storage.Preloader) error {
	uiprogress.Start()

	var bar *uiprogress.Bar
	err := pre.Preload(func(current, total int, title string) {
		if bar == nil {
			bar = uiprogress.AddBar(total)
			bar.AppendCompleted()
			bar.PrependElapsed()
		}
		bar.Set(current)
	})

	uiprogress.Stop()
	return err
}

package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/languagetoys/spacy4j/config"
	"github.com/languagetoys/spacy4j/corpus"
	"github.com/languagetoys/spacy4j/render"
	"github.com/languagetoys/spacy4j/storage"
	"github.com/languagetoys/spacy4j/storage/filesystem"
	"github.com/languagetoys/spacy4j/storage/postgres"
	"github.com/languagetoys/spacy4j/storage/sqlite/zombiezen"
)

// state carries what the commands share: the output streams, the loaded
// configuration and the lazily opened store connections.
type state struct {
	ui   UI
	cfg  config.Config
	pool Pool
	pg   *postgres.DocStore
}

func (s *state) before(c *cli.Context) error {
	path := c.String("config")
	if path == "" {
		p, err := config.Path()
		if err != nil {
			return err
		}
		path = p
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	s.cfg = cfg
	return nil
}

func (s *state) after(c *cli.Context) error {
	if s.pg != nil {
		if err := s.pg.Close(); err != nil {
			return err
		}
	}
	return s.pool.Close()
}

// storePath resolves the store location: the flag (which also binds the
// environment variable), then the config file.
func (s *state) storePath(c *cli.Context) (string, error) {
	if p := c.String("store"); p != "" {
		return p, nil
	}

	if p := s.cfg.Store.Path; p != "" {
		return p, nil
	}

	return "", errors.New("no store configured: use --store, SPACY4J_STORE or the config file")
}

func (s *state) repository(c *cli.Context) (storage.DocRepository, error) {
	path, err := s.storePath(c)
	if err != nil {
		return nil, err
	}
	return s.open(path, false)
}

// open resolves path to a store backend: a postgres:// DSN, a docfile
// directory or a sqlite file. With create set, a missing path is
// treated as a sqlite file to initialize.
func (s *state) open(path string, create bool) (storage.DocRepository, error) {
	if isPostgres(path) {
		store, err := postgres.Open(path)
		if err != nil {
			return nil, err
		}
		s.pg = store
		return store, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if !create {
			return nil, fmt.Errorf("repository not found: %s", path)
		}
	} else if info.IsDir() {
		return filesystem.NewDocStore(path)
	}

	pool, err := s.pool.Open(path)
	if err != nil {
		return nil, err
	}
	return zombiezen.NewDocStore(pool), nil
}

func isPostgres(path string) bool {
	return strings.HasPrefix(path, "postgres://") || strings.HasPrefix(path, "postgresql://")
}

// renderer builds the terminal renderer from config and flags.
func (s *state) renderer(c *cli.Context) *render.Renderer {
	r := render.NewRenderer(s.ui.Out)
	r.HasColor = s.cfg.Render.Color && !c.Bool("no-color")

	format := s.cfg.Render.Format
	if c.IsSet("format") {
		format = c.String("format")
	}
	if render.IsSupportedFormat(format) {
		r.Format = format
	}

	return r
}

// readDocArg loads a document by numeric id, falling back to a title
// match.
func readDocArg(repo storage.DocRepository, arg string) (corpus.Doc, error) {
	if id, err := strconv.Atoi(arg); err == nil {
		return repo.Read(id)
	}

	docs, err := repo.List("")
	if err != nil {
		return corpus.Doc{}, err
	}

	for _, doc := range docs {
		if strings.Contains(doc.Title, arg) {
			return repo.Read(doc.Id)
		}
	}

	return corpus.Doc{}, fmt.Errorf("no document matches %q: %w", arg, storage.ErrNotFound)
}

// Pool hands out the shared sqlite connection pool, opening it on first
// use.
type Pool struct {
	p *sqlitex.Pool
}

func (p *Pool) Open(path string) (*sqlitex.Pool, error) {
	if p.p != nil {
		return p.p, nil
	}
	pool, err := zombiezen.NewPool(path)
	if err != nil {
		return nil, err
	}
	p.p = pool
	return p.p, nil
}

func (p *Pool) Close() error {
	if p.p != nil {
		return p.p.Close()
	}
	return nil
}

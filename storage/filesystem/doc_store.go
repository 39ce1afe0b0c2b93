// Package filesystem stores one document file per document in a
// directory. Listings come from the directory scan; bodies are read on
// demand or preloaded in bulk.
package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/languagetoys/spacy4j/container"
	"github.com/languagetoys/spacy4j/corpus"
	"github.com/languagetoys/spacy4j/storage"
)

type DocStore struct {
	dir string

	// In-memory cache, index == document id. Bodies are nil until read.
	docs []corpus.Doc
}

var _ storage.DocRepository = (*DocStore)(nil)
var _ storage.Preloader = (*DocStore)(nil)

// NewDocStore scans dir and lists every document file in it. Ids are
// assigned by file name order. Bodies are not loaded.
func NewDocStore(dir string) (*DocStore, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	// TODO: read labels during the scan so List can filter unloaded docs.
	docs := make([]corpus.Doc, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if _, err := corpus.FormatForPath(entry.Name()); err != nil {
			continue
		}
		docs = append(docs, corpus.Doc{
			Id:    len(docs),
			Title: entry.Name(),
		})
	}

	return &DocStore{dir: dir, docs: docs}, nil
}

// Preload reads every document body, in parallel. cb, when not nil, is
// called once per completed document.
func (h *DocStore) Preload(cb func(current, total int, title string)) error {
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())

	var mu sync.Mutex
	done := 0
	total := len(h.docs)

	for i := range h.docs {
		i := i
		g.Go(func() error {
			doc := &h.docs[i]
			full, err := corpus.ReadFile(filepath.Join(h.dir, doc.Title))
			if err != nil {
				return fmt.Errorf("%s: %w", doc.Title, err)
			}
			doc.Labels = full.Labels
			doc.Text = full.Text
			doc.Tokens = full.Tokens

			mu.Lock()
			done++
			if cb != nil {
				cb(done, total, doc.Title)
			}
			mu.Unlock()
			return nil
		})
	}

	return g.Wait()
}

func (h *DocStore) List(labelMatch string) ([]corpus.Doc, error) {
	metas := make([]corpus.Doc, 0, len(h.docs))
	for _, doc := range h.docs {
		if labelMatch != "" && !hasLabel(doc.Labels, labelMatch) {
			continue
		}
		metas = append(metas, corpus.Doc{
			Id:     doc.Id,
			Title:  doc.Title,
			Labels: doc.Labels,
		})
	}
	return metas, nil
}

func (h *DocStore) Read(id int) (corpus.Doc, error) {
	if id < 0 || id >= len(h.docs) {
		return corpus.Doc{}, fmt.Errorf("doc id out of range: %d: %w", id, storage.ErrNotFound)
	}

	if h.docs[id].Tokens == nil {
		full, err := corpus.ReadFile(filepath.Join(h.dir, h.docs[id].Title))
		if err != nil {
			return corpus.Doc{}, err
		}
		full.Id = id
		full.Title = h.docs[id].Title
		h.docs[id] = full
	}
	return h.docs[id], nil
}

// FindLemma scans every sentence segment in id order. The cursor is
// the ordinal of the last visited segment across the whole directory.
func (h *DocStore) FindLemma(lemmas []string, after storage.Cursor, limit int, onHit func(corpus.Sentence) error) (storage.Cursor, error) {
	if len(lemmas) == 0 || limit <= 0 {
		return after, nil
	}

	cursor := after
	ordinal := storage.Cursor(0)
	hits := 0

	for id := range h.docs {
		doc, err := h.Read(id)
		if err != nil {
			return cursor, err
		}

		for sentIdx, segment := range corpus.SplitSentences(doc.Tokens) {
			ordinal++
			if ordinal <= after {
				continue
			}
			cursor = ordinal

			if !hasAllLemmas(segment, lemmas) {
				continue
			}
			err := onHit(corpus.Sentence{
				DocId:    doc.Id,
				DocTitle: doc.Title,
				Index:    sentIdx,
				Tokens:   segment,
			})
			if err != nil {
				return cursor, err
			}
			hits++
			if hits >= limit {
				return cursor, nil
			}
		}
	}
	return cursor, nil
}

func (h *DocStore) Labels(pattern string) ([]string, error) {
	seen := make(map[string]bool)
	for _, doc := range h.docs {
		for _, label := range doc.Labels {
			if pattern != "" && !strings.Contains(label, pattern) {
				continue
			}
			seen[label] = true
		}
	}

	labels := make([]string, 0, len(seen))
	for label := range seen {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels, nil
}

// Write persists the document as a file in the directory and registers
// it under the next free id. The title must carry a codec extension.
func (h *DocStore) Write(doc corpus.Doc) error {
	if doc.Title == "" {
		return fmt.Errorf("doc title required")
	}
	if err := corpus.WriteFile(filepath.Join(h.dir, doc.Title), doc); err != nil {
		return err
	}

	for i := range h.docs {
		if h.docs[i].Title == doc.Title {
			doc.Id = i
			h.docs[i] = doc
			return nil
		}
	}
	doc.Id = len(h.docs)
	h.docs = append(h.docs, doc)
	return nil
}

func hasLabel(labels []string, match string) bool {
	for _, label := range labels {
		if strings.Contains(label, match) {
			return true
		}
	}
	return false
}

func hasAllLemmas(tokens []container.TokenData, lemmas []string) bool {
	for _, lemma := range lemmas {
		found := false
		for _, tok := range tokens {
			if tok.Lemma == lemma {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

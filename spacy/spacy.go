// Package spacy is the boundary to the external NLP pipeline.
//
// The library never tokenizes, tags or parses text itself. An Adapter
// implementation (an embedded runtime, a subprocess, a remote service)
// produces the token records; this package checks the producer
// contract and builds container documents from them.
package spacy

import (
	"context"
	"fmt"

	"github.com/languagetoys/spacy4j/container"
)

// Adapter produces token records for a text by running it through an
// NLP pipeline. Records must satisfy the contract checked by
// container.Validate: gap-free 0-based indices and non-decreasing rune
// offsets into the given text.
type Adapter interface {
	NLP(ctx context.Context, text string) ([]container.TokenData, error)
}

// SpaCy turns pipeline output into container documents.
type SpaCy struct {
	adapter Adapter
}

// New creates a front over the given adapter.
func New(adapter Adapter) *SpaCy {
	return &SpaCy{adapter: adapter}
}

// NLP annotates one text and returns it as a document. The document
// keeps the input text verbatim.
func (s *SpaCy) NLP(ctx context.Context, text string) (*container.Doc, error) {
	tokens, err := s.adapter.NLP(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("annotate: %w", err)
	}
	if err := container.Validate(tokens); err != nil {
		return nil, fmt.Errorf("adapter records: %w", err)
	}
	return container.NewDocWithText(text, tokens), nil
}

// Pipe annotates texts in input order, failing on the first error.
func (s *SpaCy) Pipe(ctx context.Context, texts []string) ([]*container.Doc, error) {
	docs := make([]*container.Doc, 0, len(texts))
	for _, text := range texts {
		doc, err := s.NLP(ctx, text)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

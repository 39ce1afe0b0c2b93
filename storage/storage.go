// Package storage defines the repositories annotated documents are
// kept in.
package storage

import (
	"errors"

	"github.com/languagetoys/spacy4j/corpus"
)

// ErrNotFound is returned when no document exists for an id.
var ErrNotFound = errors.New("document not found")

// Cursor for paginated lemma-based queries. The zero cursor starts
// from the beginning; any other value resumes a previous query.
type Cursor int64

// DocReader defines read operations for document storage
type DocReader interface {
	// List returns the metadata (Id, Title, Labels) of documents.
	// If labelMatch is not empty, only documents with at least one
	// label containing the string are returned. Content (Tokens, Text)
	// is not loaded.
	List(labelMatch string) ([]corpus.Doc, error)

	// Read returns a document by ID
	Read(id int) (corpus.Doc, error)

	// FindLemma calls onHit for every sentence containing ALL given
	// lemmas, resuming after the given cursor, at most limit hits.
	// It returns the cursor to resume from.
	FindLemma(lemmas []string, after Cursor, limit int, onHit func(corpus.Sentence) error) (Cursor, error)

	// Labels returns all unique labels found across all documents,
	// sorted alphabetically. If pattern is not empty, it returns labels
	// that contain the pattern.
	Labels(pattern string) ([]string, error)
}

// DocWriter defines write operations for document storage
type DocWriter interface {
	// Write persists a document and its sentence and lemma index rows
	Write(doc corpus.Doc) error
}

// DocRepository combines read and write operations
type DocRepository interface {
	DocReader
	DocWriter
}

// Preloader defines an optional capability for repositories that
// require or support eager loading of data into memory.
type Preloader interface {
	Preload(cb func(current, total int, title string)) error
}

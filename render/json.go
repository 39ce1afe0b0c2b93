package render

import (
	"encoding/json"
	"io"

	"github.com/languagetoys/spacy4j/corpus"
)

// JSONRenderer writes documents and search hits as JSON to a writer,
// for piping into other tools.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

// Hits serializes search hits as a JSON array.
func (r *JSONRenderer) Hits(hits []corpus.Sentence) error {
	return json.NewEncoder(r.W).Encode(hits)
}

// Doc serializes one stored document.
func (r *JSONRenderer) Doc(doc corpus.Doc) error {
	enc := json.NewEncoder(r.W)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

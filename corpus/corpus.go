// Package corpus is the stored form of annotated documents: the
// envelope with storage metadata, and the file codecs.
package corpus

import (
	"github.com/languagetoys/spacy4j/container"
)

// Doc is a document as it is stored and serialized: the raw token
// records plus storage metadata.
type Doc struct {
	Id int `json:"id"`

	// Title identifies the document in listings. Filesystem stores use
	// the file name.
	Title string `json:"title"`

	Labels []string `json:"labels"`

	// Text is the original surface text. Optional: when empty it is
	// reconstructed from the records.
	Text string `json:"text"`

	Tokens []container.TokenData `json:"tokens"`
}

// NewDoc wraps a container document for storage.
func NewDoc(title string, doc *container.Doc) Doc {
	return Doc{
		Title:  title,
		Text:   doc.Text(),
		Tokens: doc.TokenData(),
	}
}

// Container builds the container document for the records, using the
// stored text when present.
func (d Doc) Container() *container.Doc {
	if d.Text != "" {
		return container.NewDocWithText(d.Text, d.Tokens)
	}
	return container.NewDoc(d.Tokens)
}

// Sentence is one sentence of a stored document, as returned by lemma
// searches.
type Sentence struct {
	DocId    int    `json:"doc_id"`
	DocTitle string `json:"doc_title"`

	// Index of the sentence within the document, starting at 0.
	Index int `json:"index"`

	Tokens []container.TokenData `json:"tokens"`
}

// Text returns the trimmed surface text of the sentence.
func (s Sentence) Text() string {
	return container.TextTrimmed(s.Tokens)
}

// SplitSentences cuts records into sentence segments for storage: a
// new segment opens at every token flagged as sentence start. Unlike
// container.Doc.Sentences, tokens before the first flagged token form
// a leading segment, so the segments always cover every record and
// concatenating them restores the input. Pipelines flag the first
// token, so segments normally coincide with sentences.
func SplitSentences(tokens []container.TokenData) [][]container.TokenData {
	var segments [][]container.TokenData
	start := 0
	for i, tok := range tokens {
		if i > 0 && tok.SentStart {
			segments = append(segments, tokens[start:i])
			start = i
		}
	}
	if start < len(tokens) {
		segments = append(segments, tokens[start:])
	}
	return segments
}

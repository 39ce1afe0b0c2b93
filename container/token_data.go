package container

import "fmt"

// TokenData is the record for a single token as produced by an NLP
// pipeline (spacy, stanza). Records are plain values: the pipeline
// writes them once and nothing in this package modifies them.
type TokenData struct {
	// The index of the token in the document, starting at 0.
	Index int `json:"index"`

	// the index of the start character of the token in the original doc
	// (set by spacy, stanza), rune, utf8 based
	Idx int `json:"idx"`

	// The unmodified word
	Text string `json:"text"`

	// Whitespace preceding the token. Empty except for the first token
	// of a document that starts with whitespace.
	Before string `json:"before"`

	// Whitespace following the token.
	After string `json:"after"`

	// True for the first token of a sentence.
	SentStart bool `json:"sent_start"`

	// The lemma of the word
	Lemma string `json:"lemma"`

	// A string containing detailed POS data
	Tag string `json:"tag"`

	Pos string `json:"pos"`
	Dep string `json:"dep"`

	// The index of the dependency head of the token.
	Head int `json:"head"`
}

// Validate checks the producer contract on a sequence of records:
// indices are 0-based and gap-free, begin offsets are non-negative and
// non-decreasing. Doc constructors trust their input and do not call
// it; apply it where records enter the process.
func Validate(tokens []TokenData) error {
	offset := 0
	for i, tok := range tokens {
		if tok.Index != i {
			return fmt.Errorf("token at position %d has index %d: %w", i, tok.Index, ErrTokenOrder)
		}
		if tok.Idx < 0 || tok.Idx < offset {
			return fmt.Errorf("token %d has begin offset %d after offset %d: %w", i, tok.Idx, offset, ErrTokenOrder)
		}
		offset = tok.Idx
	}
	return nil
}

// Package container holds tokenized documents produced by an external
// NLP pipeline.
//
// A Doc owns an ordered sequence of TokenData records together with the
// surface text they were produced from. Docs are immutable once
// constructed: the constructors copy records in, TokenData copies them
// out, and the Span and Token views carry no data of their own. Any
// number of goroutines may read the same Doc without locking.
package container

import (
	"fmt"
	"slices"
)

// Doc is an immutable tokenized document.
type Doc struct {
	text   string
	tokens []TokenData
}

// NewDocWithText creates a Doc from the original surface text and its
// token records. The records are trusted: offsets and whitespace must
// be consistent with the given text, as produced by a single pipeline
// run over it.
func NewDocWithText(text string, tokens []TokenData) *Doc {
	return &Doc{text: text, tokens: slices.Clone(tokens)}
}

// NewDoc creates a Doc from token records alone. The surface text is
// reconstructed from the records, without leading and trailing
// whitespace.
func NewDoc(tokens []TokenData) *Doc {
	return &Doc{text: TextTrimmed(tokens), tokens: slices.Clone(tokens)}
}

// Text returns the surface text. It is fixed at construction and never
// recomputed.
func (d *Doc) Text() string { return d.text }

// IsEmpty reports whether the Doc has no tokens.
func (d *Doc) IsEmpty() bool { return len(d.tokens) == 0 }

// Len returns the number of tokens.
func (d *Doc) Len() int { return len(d.tokens) }

// StartChar returns the begin offset of the first token, in runes.
// 0 for an empty Doc.
func (d *Doc) StartChar() int {
	if len(d.tokens) == 0 {
		return 0
	}
	return d.tokens[0].Idx
}

// EndChar returns the begin offset of the last token, in runes.
// 0 for an empty Doc.
func (d *Doc) EndChar() int {
	if len(d.tokens) == 0 {
		return 0
	}
	return d.tokens[len(d.tokens)-1].Idx
}

// Token returns the token at index i.
func (d *Doc) Token(i int) (Token, error) {
	if i < 0 || i >= len(d.tokens) {
		return Token{}, fmt.Errorf("index %d, document length %d: %w", i, len(d.tokens), ErrIndexOutOfRange)
	}
	return Token{doc: d, index: i}, nil
}

// Tokens returns a view for every token, in document order.
func (d *Doc) Tokens() []Token {
	views := make([]Token, len(d.tokens))
	for i := range d.tokens {
		views[i] = Token{doc: d, index: i}
	}
	return views
}

// Span returns the half-open token range [start, end).
func (d *Doc) Span(start, end int) (Span, error) {
	if start < 0 || start > end || end > len(d.tokens) {
		return Span{}, fmt.Errorf("span [%d, %d), document length %d: %w", start, end, len(d.tokens), ErrInvalidSpan)
	}
	return Span{doc: d, start: start, end: end}, nil
}

// Sentences returns one Span per sentence, in document order. A
// sentence runs from a token flagged as sentence start up to the next
// flagged token or the end of the document. Tokens before the first
// flagged token belong to no sentence.
func (d *Doc) Sentences() []Span {
	var starts []int
	for i, tok := range d.tokens {
		if tok.SentStart {
			starts = append(starts, i)
		}
	}
	starts = append(starts, len(d.tokens))

	spans := make([]Span, 0, len(starts)-1)
	for i := 0; i+1 < len(starts); i++ {
		if starts[i] == starts[i+1] {
			continue
		}
		spans = append(spans, Span{doc: d, start: starts[i], end: starts[i+1]})
	}
	return spans
}

// TokenData returns a copy of the raw records, for serialization by
// other packages.
func (d *Doc) TokenData() []TokenData {
	return slices.Clone(d.tokens)
}

// Equal reports whether both Docs hold the same text and the same
// records. Two distinct Docs with equal content are Equal but their
// views are not interchangeable.
func (d *Doc) Equal(other *Doc) bool {
	if d == other {
		return true
	}
	if d == nil || other == nil {
		return false
	}
	return d.text == other.text && slices.Equal(d.tokens, other.tokens)
}

func (d *Doc) String() string { return d.text }

// TokenIterator walks the tokens of a Doc without materializing views
// for all of them. It is not safe for concurrent use; Reset rewinds it
// for another pass.
type TokenIterator struct {
	doc *Doc
	pos int
}

// Iterator returns an iterator positioned before the first token.
func (d *Doc) Iterator() *TokenIterator {
	return &TokenIterator{doc: d, pos: -1}
}

// Next advances the iterator and reports whether a token is available.
func (it *TokenIterator) Next() bool {
	it.pos++
	return it.pos < len(it.doc.tokens)
}

// Token returns the token at the current position. It is valid only
// after a call to Next that returned true.
func (it *TokenIterator) Token() Token {
	return Token{doc: it.doc, index: it.pos}
}

// Reset rewinds the iterator to before the first token.
func (it *TokenIterator) Reset() {
	it.pos = -1
}

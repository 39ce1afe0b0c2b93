package container

import (
	"fmt"
	"slices"
	"unicode/utf8"
)

// Span is a half-open token range [Start, End) of a Doc. Spans carry no
// data of their own: they are created by Doc.Span, Doc.Sentences and
// Token.Span, already bounds-checked, and stay valid for the life of
// the Doc. Two spans are equal under == when they cover the same range
// of the same Doc; equal ranges of different Docs are not equal.
type Span struct {
	doc   *Doc
	start int
	end   int
}

// Start returns the document index of the first covered token.
func (s Span) Start() int { return s.start }

// End returns the document index one past the last covered token.
func (s Span) End() int { return s.end }

// Len returns the number of covered tokens.
func (s Span) Len() int { return s.end - s.start }

// IsEmpty reports whether the span covers no tokens.
func (s Span) IsEmpty() bool { return s.start == s.end }

// Doc returns the owning document.
func (s Span) Doc() *Doc { return s.doc }

// Token returns the i-th covered token. The index is span-local:
// Token(0) is the token at Start.
func (s Span) Token(i int) (Token, error) {
	if i < 0 || i >= s.Len() {
		return Token{}, fmt.Errorf("index %d, span length %d: %w", i, s.Len(), ErrIndexOutOfRange)
	}
	return Token{doc: s.doc, index: s.start + i}, nil
}

// Tokens returns a view for every covered token.
func (s Span) Tokens() []Token {
	views := make([]Token, 0, s.Len())
	for i := s.start; i < s.end; i++ {
		views = append(views, Token{doc: s.doc, index: i})
	}
	return views
}

// TokenData returns a copy of the covered records.
func (s Span) TokenData() []TokenData {
	return slices.Clone(s.doc.tokens[s.start:s.end])
}

// StartChar returns the rune offset of the covered text in the
// document text. 0 for an empty span.
func (s Span) StartChar() int {
	if s.IsEmpty() {
		return 0
	}
	return s.doc.tokens[s.start].Idx
}

// EndChar returns the rune offset one past the covered text, derived
// from the begin offset and text of the last covered token. 0 for an
// empty span.
func (s Span) EndChar() int {
	if s.IsEmpty() {
		return 0
	}
	last := s.doc.tokens[s.end-1]
	return last.Idx + utf8.RuneCountInString(last.Text)
}

// Text returns the slice of the document text covered by the span. The
// trailing whitespace of the last token is not included.
func (s Span) Text() string {
	if s.IsEmpty() {
		return ""
	}
	runes := []rune(s.doc.text)
	return string(runes[s.StartChar():s.EndChar()])
}

func (s Span) String() string { return s.Text() }

package container

import "unicode/utf8"

// Token is a view of a single token of a Doc: the record plus its
// position. Like Span it carries no data of its own and is compared
// with ==.
type Token struct {
	doc   *Doc
	index int
}

func (t Token) data() TokenData { return t.doc.tokens[t.index] }

// Index returns the position of the token in the document.
func (t Token) Index() int { return t.index }

// Text returns the unmodified word.
func (t Token) Text() string { return t.data().Text }

// WhitespaceBefore returns the whitespace preceding the token.
func (t Token) WhitespaceBefore() string { return t.data().Before }

// WhitespaceAfter returns the whitespace following the token.
func (t Token) WhitespaceAfter() string { return t.data().After }

// IsSentenceStart reports whether the token opens a sentence.
func (t Token) IsSentenceStart() bool { return t.data().SentStart }

// CharStart returns the begin offset of the token text, in runes.
func (t Token) CharStart() int { return t.data().Idx }

// CharEnd returns the offset one past the token text, in runes.
func (t Token) CharEnd() int {
	d := t.data()
	return d.Idx + utf8.RuneCountInString(d.Text)
}

// Lemma returns the lemma of the word.
func (t Token) Lemma() string { return t.data().Lemma }

// Tag returns the detailed POS tag.
func (t Token) Tag() string { return t.data().Tag }

// Pos returns the coarse POS tag.
func (t Token) Pos() string { return t.data().Pos }

// Dep returns the dependency relation to the head.
func (t Token) Dep() string { return t.data().Dep }

// Head returns the document index of the dependency head, as set by
// the pipeline.
func (t Token) Head() int { return t.data().Head }

// Data returns a copy of the raw record.
func (t Token) Data() TokenData { return t.data() }

// Span returns the degenerate span covering only this token.
func (t Token) Span() Span {
	return Span{doc: t.doc, start: t.index, end: t.index + 1}
}

func (t Token) Doc() *Doc { return t.doc }

func (t Token) String() string { return t.Text() }

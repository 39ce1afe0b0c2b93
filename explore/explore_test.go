package explore

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/c-bata/go-prompt"

	"github.com/languagetoys/spacy4j/container"
	"github.com/languagetoys/spacy4j/corpus"
	"github.com/languagetoys/spacy4j/render"
	"github.com/languagetoys/spacy4j/storage"
)

type fakeRepo struct {
	docs []corpus.Doc
}

var _ storage.DocReader = (*fakeRepo)(nil)

func (f *fakeRepo) List(labelMatch string) ([]corpus.Doc, error) {
	return f.docs, nil
}

func (f *fakeRepo) Read(id int) (corpus.Doc, error) {
	for _, d := range f.docs {
		if d.Id == id {
			return d, nil
		}
	}
	return corpus.Doc{}, storage.ErrNotFound
}

func (f *fakeRepo) FindLemma(lemmas []string, after storage.Cursor, limit int, onHit func(corpus.Sentence) error) (storage.Cursor, error) {
	if after != 0 {
		return after, nil
	}

	cursor := after
	for _, d := range f.docs {
		for i, seg := range corpus.SplitSentences(d.Tokens) {
			if !hasAll(seg, lemmas) {
				continue
			}
			cursor++
			if err := onHit(corpus.Sentence{DocId: d.Id, DocTitle: d.Title, Index: i, Tokens: seg}); err != nil {
				return cursor, err
			}
		}
	}
	return cursor, nil
}

func (f *fakeRepo) Labels(pattern string) ([]string, error) {
	return nil, nil
}

func hasAll(tokens []container.TokenData, lemmas []string) bool {
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

func testDocs() []corpus.Doc {
	return []corpus.Doc{
		{
			Id:    0,
			Title: "cat.json",
			Text:  "The cat sat",
			Tokens: []container.TokenData{
				{Index: 0, Idx: 0, Text: "The", After: " ", SentStart: true, Lemma: "the"},
				{Index: 1, Idx: 4, Text: "cat", After: " ", Lemma: "cat"},
				{Index: 2, Idx: 8, Text: "sat", After: "", Lemma: "sit"},
			},
		},
		{
			Id:    1,
			Title: "gato.json",
			Text:  "El gato duerme.",
			Tokens: []container.TokenData{
				{Index: 0, Idx: 0, Text: "El", After: " ", SentStart: true, Lemma: "el"},
				{Index: 1, Idx: 3, Text: "gato", After: " ", Lemma: "gato"},
				{Index: 2, Idx: 8, Text: "duerme", After: "", Lemma: "dormir"},
				{Index: 3, Idx: 14, Text: ".", After: "", Lemma: "."},
			},
		},
	}
}

func newTestHandler() (*Handler, *bytes.Buffer) {
	var buf bytes.Buffer
	r := render.NewRenderer(&buf)
	repo := &fakeRepo{docs: testDocs()}
	return NewHandler(repo, r, nil), &buf
}

func TestEvalList(t *testing.T) {
	h, buf := newTestHandler()

	if err := h.Eval("ls", testDocs()); err != nil {
		t.Fatalf("failed to eval: %v", err)
	}

	got := buf.String()
	if !strings.Contains(got, "cat.json") || !strings.Contains(got, "gato.json") {
		t.Fatalf("expected both titles, got %q", got)
	}
}

func TestEvalDoc(t *testing.T) {
	h, buf := newTestHandler()

	if err := h.Eval("0", testDocs()); err != nil {
		t.Fatalf("failed to eval: %v", err)
	}

	if !strings.Contains(buf.String(), "The cat sat") {
		t.Fatalf("expected sentence text, got %q", buf.String())
	}
}

func TestEvalDocByTitle(t *testing.T) {
	h, buf := newTestHandler()

	if err := h.Eval("gato", testDocs()); err != nil {
		t.Fatalf("failed to eval: %v", err)
	}

	if !strings.Contains(buf.String(), "El gato duerme") {
		t.Fatalf("expected sentence text, got %q", buf.String())
	}
}

func TestEvalTokenTable(t *testing.T) {
	h, buf := newTestHandler()

	if err := h.Eval("0 0", testDocs()); err != nil {
		t.Fatalf("failed to eval: %v", err)
	}

	got := buf.String()
	if !strings.Contains(got, "LEMMA") {
		t.Fatalf("expected table header, got %q", got)
	}
	if !strings.Contains(got, "sit") {
		t.Fatalf("expected lemma column, got %q", got)
	}
}

func TestEvalSentenceOutOfBounds(t *testing.T) {
	h, _ := newTestHandler()

	if err := h.Eval("0 5", testDocs()); err == nil {
		t.Fatal("expected out of bounds error")
	}
}

func TestEvalUnknownDoc(t *testing.T) {
	h, _ := newTestHandler()

	err := h.Eval("perro", testDocs())
	if err == nil {
		t.Fatal("expected error for unknown doc")
	}
}

func TestEvalReadMissing(t *testing.T) {
	h, _ := newTestHandler()

	err := h.Eval("7", testDocs())
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestEvalSearch(t *testing.T) {
	h, buf := newTestHandler()

	if err := h.Eval("/gato", testDocs()); err != nil {
		t.Fatalf("failed to eval: %v", err)
	}

	if !strings.Contains(buf.String(), "El gato duerme") {
		t.Fatalf("expected hit, got %q", buf.String())
	}
}

func TestEvalSearchNoHits(t *testing.T) {
	h, buf := newTestHandler()

	if err := h.Eval("/perro", testDocs()); err != nil {
		t.Fatalf("failed to eval: %v", err)
	}

	if !strings.Contains(buf.String(), "no sentences found") {
		t.Fatalf("expected no hits notice, got %q", buf.String())
	}
}

func TestEvalSearchEmpty(t *testing.T) {
	h, _ := newTestHandler()

	if err := h.Eval("/", testDocs()); err == nil {
		t.Fatal("expected error for empty search")
	}
}

func TestCompleterTitles(t *testing.T) {
	h, _ := newTestHandler()
	completer := h.completer(testDocs())

	buf := prompt.NewBuffer()
	buf.InsertText("gat", false, true)

	suggestions := completer(*buf.Document())
	if len(suggestions) != 1 {
		t.Fatalf("expected 1 suggestion, got %d", len(suggestions))
	}

	if suggestions[0].Text != "1" {
		t.Fatalf("expected doc id suggestion '1', got %q", suggestions[0].Text)
	}
}

func TestCompleterCommands(t *testing.T) {
	h, _ := newTestHandler()
	completer := h.completer(testDocs())

	buf := prompt.NewBuffer()
	buf.InsertText("l", false, true)

	suggestions := completer(*buf.Document())
	found := false
	for _, s := range suggestions {
		if s.Text == "ls" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected 'ls' suggestion")
	}
}

func TestCompleterSkipsSearch(t *testing.T) {
	h, _ := newTestHandler()
	completer := h.completer(testDocs())

	buf := prompt.NewBuffer()
	buf.InsertText("/gat", false, true)

	if suggestions := completer(*buf.Document()); len(suggestions) != 0 {
		t.Fatalf("expected no suggestions for search input, got %d", len(suggestions))
	}
}

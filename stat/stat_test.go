package stat

import (
	"testing"

	"github.com/languagetoys/spacy4j/container"
)

func catDoc() *container.Doc {
	tokens := []container.TokenData{
		{Index: 0, Idx: 0, Text: "The", After: " ", SentStart: true, Lemma: "the"},
		{Index: 1, Idx: 4, Text: "cat", After: " ", Lemma: "cat"},
		{Index: 2, Idx: 8, Text: "sat", After: "", Lemma: "sit"},
	}
	return container.NewDocWithText("The cat sat", tokens)
}

func gatoDoc() *container.Doc {
	tokens := []container.TokenData{
		{Index: 0, Idx: 0, Text: "El", After: " ", SentStart: true, Lemma: "el"},
		{Index: 1, Idx: 3, Text: "gato", After: " ", Lemma: "gato"},
		{Index: 2, Idx: 8, Text: "duerme", After: "", Lemma: "dormir"},
		{Index: 3, Idx: 14, Text: ".", After: " ", Lemma: "."},
		{Index: 4, Idx: 16, Text: "El", After: " ", SentStart: true, Lemma: "el"},
		{Index: 5, Idx: 19, Text: "perro", After: " ", Lemma: "perro"},
		{Index: 6, Idx: 25, Text: "ladra", After: "", Lemma: "ladrar"},
		{Index: 7, Idx: 30, Text: ".", After: "", Lemma: "."},
	}
	return container.NewDocWithText("El gato duerme. El perro ladra.", tokens)
}

func TestAggregate(t *testing.T) {
	hdl := NewHandler()
	hdl.Aggregate(gatoDoc())
	hdl.Aggregate(catDoc())

	stats := hdl.Get()

	if stats.NumDocs != 2 {
		t.Fatalf("expected 2 docs, got %d", stats.NumDocs)
	}

	if stats.NumSentences != 3 {
		t.Fatalf("expected 3 sentences, got %d", stats.NumSentences)
	}

	if stats.NumTokens != 11 {
		t.Fatalf("expected 11 tokens, got %d", stats.NumTokens)
	}

	if stats.NumRunes != 42 {
		t.Fatalf("expected 42 runes, got %d", stats.NumRunes)
	}

	if stats.TokensPerSentenceMin != 3 {
		t.Fatalf("expected min 3, got %d", stats.TokensPerSentenceMin)
	}

	if stats.TokensPerSentenceMax != 4 {
		t.Fatalf("expected max 4, got %d", stats.TokensPerSentenceMax)
	}

	if stats.TokensPerSentenceMean != 3 {
		t.Fatalf("expected mean 3, got %d", stats.TokensPerSentenceMean)
	}

	if stats.TokensPerSentenceDis[4] != 2 {
		t.Fatalf("expected 2 sentences with 4 tokens, got %d", stats.TokensPerSentenceDis[4])
	}

	if stats.TokensPerSentenceDis[3] != 1 {
		t.Fatalf("expected 1 sentence with 3 tokens, got %d", stats.TokensPerSentenceDis[3])
	}
}

func TestTopLemmasOrder(t *testing.T) {
	hdl := NewHandler()
	hdl.Aggregate(gatoDoc())
	hdl.Aggregate(catDoc())

	stats := hdl.Get()

	if len(stats.TopLemmas) != 9 {
		t.Fatalf("expected 9 distinct lemmas, got %d", len(stats.TopLemmas))
	}

	// count descending, ties alphabetical
	if stats.TopLemmas[0].Lemma != "." || stats.TopLemmas[0].Count != 2 {
		t.Fatalf("expected {. 2} first, got %+v", stats.TopLemmas[0])
	}

	if stats.TopLemmas[1].Lemma != "el" || stats.TopLemmas[1].Count != 2 {
		t.Fatalf("expected {el 2} second, got %+v", stats.TopLemmas[1])
	}

	if stats.TopLemmas[2].Lemma != "cat" {
		t.Fatalf("expected 'cat' third, got %q", stats.TopLemmas[2].Lemma)
	}
}

func TestGetEmpty(t *testing.T) {
	hdl := NewHandler()

	stats := hdl.Get()

	if stats.NumDocs != 0 {
		t.Fatalf("expected 0 docs, got %d", stats.NumDocs)
	}

	if stats.TokensPerSentenceMean != 0 {
		t.Fatalf("expected mean 0, got %d", stats.TokensPerSentenceMean)
	}

	if len(stats.TopLemmas) != 0 {
		t.Fatalf("expected no lemmas, got %d", len(stats.TopLemmas))
	}
}

func TestAggregateUnflaggedTokens(t *testing.T) {
	tokens := []container.TokenData{
		{Index: 0, Idx: 0, Text: "The", After: " ", Lemma: "the"},
		{Index: 1, Idx: 4, Text: "cat", After: "", Lemma: "cat"},
	}
	doc := container.NewDoc(tokens)

	hdl := NewHandler()
	hdl.Aggregate(doc)

	stats := hdl.Get()

	if stats.NumSentences != 0 {
		t.Fatalf("expected 0 sentences, got %d", stats.NumSentences)
	}

	if stats.NumTokens != 2 {
		t.Fatalf("expected 2 tokens, got %d", stats.NumTokens)
	}
}

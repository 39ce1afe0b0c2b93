package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/languagetoys/spacy4j/config"
	"github.com/languagetoys/spacy4j/container"
	"github.com/languagetoys/spacy4j/corpus"
)

func testUI() (UI, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return UI{Out: &out, Err: &errOut}, &out, &errOut
}

func writeDocfile(t *testing.T, dir, name string, doc corpus.Doc) {
	t.Helper()
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("failed to marshal doc: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), data, 0644); err != nil {
		t.Fatalf("failed to write doc: %v", err)
	}
}

func newTestStore(t *testing.T) string {
	t.Helper()

	// points config at a missing file so defaults apply
	t.Setenv(config.EnvConfig, filepath.Join(t.TempDir(), "spacy4j.toml"))

	dir := t.TempDir()
	writeDocfile(t, dir, "cat.json", corpus.Doc{
		Title:  "cat.json",
		Labels: []string{"en", "animals"},
		Text:   "The cat sat",
		Tokens: []container.TokenData{
			{Index: 0, Idx: 0, Text: "The", After: " ", SentStart: true, Lemma: "the", Pos: "DET", Tag: "DT", Dep: "det", Head: 2},
			{Index: 1, Idx: 4, Text: "cat", After: " ", Lemma: "cat", Pos: "NOUN", Tag: "NN", Dep: "nsubj", Head: 2},
			{Index: 2, Idx: 8, Text: "sat", After: "", Lemma: "sit", Pos: "VERB", Tag: "VBD", Dep: "ROOT", Head: 2},
		},
	})
	writeDocfile(t, dir, "gato.json", corpus.Doc{
		Title:  "gato.json",
		Labels: []string{"es", "animals"},
		Text:   "El gato duerme.",
		Tokens: []container.TokenData{
			{Index: 0, Idx: 0, Text: "El", After: " ", SentStart: true, Lemma: "el"},
			{Index: 1, Idx: 3, Text: "gato", After: " ", Lemma: "gato"},
			{Index: 2, Idx: 8, Text: "duerme", After: "", Lemma: "dormir"},
			{Index: 3, Idx: 14, Text: ".", After: "", Lemma: "."},
		},
	})
	return dir
}

func TestRunLs(t *testing.T) {
	dir := newTestStore(t)
	ui, out, _ := testUI()

	if err := run([]string{"spacy4j", "--store", dir, "ls"}, ui); err != nil {
		t.Fatalf("failed to run: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "cat.json") || !strings.Contains(got, "gato.json") {
		t.Fatalf("expected both docs listed, got %q", got)
	}
}

func TestRunDocJSON(t *testing.T) {
	dir := newTestStore(t)
	ui, out, _ := testUI()

	if err := run([]string{"spacy4j", "--store", dir, "doc", "--json", "0"}, ui); err != nil {
		t.Fatalf("failed to run: %v", err)
	}

	var doc corpus.Doc
	if err := json.Unmarshal(out.Bytes(), &doc); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if doc.Title != "cat.json" {
		t.Fatalf("expected title 'cat.json', got %q", doc.Title)
	}

	if len(doc.Tokens) != 3 {
		t.Fatalf("expected 3 tokens, got %d", len(doc.Tokens))
	}
}

func TestRunDocByTitle(t *testing.T) {
	dir := newTestStore(t)
	ui, out, _ := testUI()

	if err := run([]string{"spacy4j", "--store", dir, "doc", "gato"}, ui); err != nil {
		t.Fatalf("failed to run: %v", err)
	}

	if !strings.Contains(out.String(), "El gato duerme.") {
		t.Fatalf("expected doc text, got %q", out.String())
	}
}

func TestRunSents(t *testing.T) {
	dir := newTestStore(t)
	ui, out, _ := testUI()

	if err := run([]string{"spacy4j", "--store", dir, "--no-color", "sents", "0"}, ui); err != nil {
		t.Fatalf("failed to run: %v", err)
	}

	if !strings.Contains(out.String(), "The cat sat") {
		t.Fatalf("expected sentence, got %q", out.String())
	}
}

func TestRunTokens(t *testing.T) {
	dir := newTestStore(t)
	ui, out, _ := testUI()

	if err := run([]string{"spacy4j", "--store", dir, "--no-color", "tokens", "0"}, ui); err != nil {
		t.Fatalf("failed to run: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "INDEX") || !strings.Contains(got, "sit") {
		t.Fatalf("expected token table, got %q", got)
	}
}

func TestRunTokensSentenceOutOfBounds(t *testing.T) {
	dir := newTestStore(t)
	ui, _, _ := testUI()

	if err := run([]string{"spacy4j", "--store", dir, "tokens", "0", "4"}, ui); err == nil {
		t.Fatal("expected out of bounds error")
	}
}

func TestRunText(t *testing.T) {
	dir := newTestStore(t)
	ui, out, _ := testUI()

	if err := run([]string{"spacy4j", "text", filepath.Join(dir, "cat.json")}, ui); err != nil {
		t.Fatalf("failed to run: %v", err)
	}

	if out.String() != "The cat sat\n" {
		t.Fatalf("expected trimmed text, got %q", out.String())
	}
}

func TestRunFind(t *testing.T) {
	dir := newTestStore(t)
	ui, out, _ := testUI()

	if err := run([]string{"spacy4j", "--store", dir, "--no-color", "find", "cat"}, ui); err != nil {
		t.Fatalf("failed to run: %v", err)
	}

	if !strings.Contains(out.String(), "The cat sat") {
		t.Fatalf("expected hit, got %q", out.String())
	}
}

func TestRunFindJSON(t *testing.T) {
	dir := newTestStore(t)
	ui, out, _ := testUI()

	if err := run([]string{"spacy4j", "--store", dir, "find", "--json", "gato"}, ui); err != nil {
		t.Fatalf("failed to run: %v", err)
	}

	var hits []corpus.Sentence
	if err := json.Unmarshal(out.Bytes(), &hits); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if len(hits) != 1 {
		t.Fatalf("expected 1 hit, got %d", len(hits))
	}

	if hits[0].DocTitle != "gato.json" {
		t.Fatalf("expected hit in gato.json, got %q", hits[0].DocTitle)
	}
}

func TestRunFindNoLemma(t *testing.T) {
	dir := newTestStore(t)
	ui, _, _ := testUI()

	if err := run([]string{"spacy4j", "--store", dir, "find"}, ui); err == nil {
		t.Fatal("expected error without lemmas")
	}
}

func TestRunStat(t *testing.T) {
	dir := newTestStore(t)
	ui, out, _ := testUI()

	if err := run([]string{"spacy4j", "--store", dir, "stat"}, ui); err != nil {
		t.Fatalf("failed to run: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "docs") || !strings.Contains(got, "sentences") {
		t.Fatalf("expected stats output, got %q", got)
	}
	if !strings.Contains(got, "top lemmas") {
		t.Fatalf("expected lemma ranking, got %q", got)
	}
}

func TestRunConvert(t *testing.T) {
	dir := newTestStore(t)
	ui, _, _ := testUI()

	out := filepath.Join(t.TempDir(), "cat.mp")
	if err := run([]string{"spacy4j", "convert", filepath.Join(dir, "cat.json"), out}, ui); err != nil {
		t.Fatalf("failed to run: %v", err)
	}

	doc, err := corpus.ReadFile(out)
	if err != nil {
		t.Fatalf("failed to read converted doc: %v", err)
	}

	if doc.Text != "The cat sat" {
		t.Fatalf("expected converted text, got %q", doc.Text)
	}
}

func TestRunVersion(t *testing.T) {
	t.Setenv(config.EnvConfig, filepath.Join(t.TempDir(), "spacy4j.toml"))
	ui, out, _ := testUI()

	if err := run([]string{"spacy4j", "version"}, ui); err != nil {
		t.Fatalf("failed to run: %v", err)
	}

	if !strings.Contains(out.String(), "spacy4j version") {
		t.Fatalf("expected version line, got %q", out.String())
	}
}

func TestRunNoStore(t *testing.T) {
	t.Setenv(config.EnvConfig, filepath.Join(t.TempDir(), "spacy4j.toml"))
	t.Setenv(config.EnvStore, "")
	ui, _, _ := testUI()

	if err := run([]string{"spacy4j", "ls"}, ui); err == nil {
		t.Fatal("expected error without a store")
	}
}

func TestRunConfigStore(t *testing.T) {
	dir := newTestStore(t)

	cfgPath := filepath.Join(t.TempDir(), "spacy4j.toml")
	content := "[store]\npath = \"" + dir + "\"\n"
	if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	t.Setenv(config.EnvConfig, cfgPath)
	t.Setenv(config.EnvStore, "")

	ui, out, _ := testUI()
	if err := run([]string{"spacy4j", "ls"}, ui); err != nil {
		t.Fatalf("failed to run: %v", err)
	}

	if !strings.Contains(out.String(), "cat.json") {
		t.Fatalf("expected docs from config store, got %q", out.String())
	}
}

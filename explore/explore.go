// Package explore implements the interactive document explorer.
package explore

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/languagetoys/spacy4j/corpus"
	"github.com/languagetoys/spacy4j/render"
	"github.com/languagetoys/spacy4j/storage"
)

const (
	// searchPrefix is the character in the prompt that starts a lemma search
	searchPrefix = "/"

	// searchBatch is the hit count per FindLemma page, searchLimit caps
	// the total hits per search to avoid a hang on broad lemmas.
	searchBatch = 500
	searchLimit = 2000
)

type Handler struct {
	Repo     storage.DocReader
	Renderer *render.Renderer
	Logger   *slog.Logger
}

func NewHandler(repo storage.DocReader, r *render.Renderer, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		Repo:     repo,
		Renderer: r,
		Logger:   logger,
	}
}

func (h *Handler) Run() error {

	fmt.Fprintln(h.Renderer.Out, "🔑 Ctrl+F: next format, ls, <doc> [sentence], /lemma ..., quit")

	docs, err := h.Repo.List("")
	if err != nil {
		return err
	}

	// initialize prompt history
	history := []string{}

	for {

		in := prompt.Input("      📖 ", h.completer(docs),
			prompt.OptionTitle("spacy4j explore"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlF,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.NextFormat()
					fmt.Fprintln(h.Renderer.Out, "Format set to: "+h.Renderer.Format)
				}}),
		)

		if in == "quit" {
			return nil
		}

		if strings.TrimSpace(in) == "" {
			continue
		}

		history = append(history, in)

		if err := h.Eval(in, docs); err != nil {
			fmt.Fprintf(h.Renderer.Out, "✍  %v\n", err)
		}
	}
}

// Eval runs a single explore command against the repository.
func (h *Handler) Eval(in string, docs []corpus.Doc) error {
	in = strings.TrimSpace(in)

	if in == "ls" {
		for _, doc := range docs {
			fmt.Fprintf(h.Renderer.Out, "📖 %d %s\n", doc.Id, doc.Title)
		}
		return nil
	}

	if strings.HasPrefix(in, searchPrefix) {
		return h.search(strings.Fields(strings.TrimPrefix(in, searchPrefix)))
	}

	fields := strings.Fields(in)

	id, err := h.docId(fields[0], docs)
	if err != nil {
		return err
	}

	doc, err := h.Repo.Read(id)
	if err != nil {
		return fmt.Errorf("read doc %d: %w", id, err)
	}

	cd := doc.Container()

	if len(fields) == 1 {
		h.Renderer.Doc(cd)
		return nil
	}

	sentId, err := strconv.Atoi(fields[1])
	if err != nil {
		return fmt.Errorf("invalid sentence index: %s", fields[1])
	}

	sentences := cd.Sentences()
	if sentId < 0 || sentId >= len(sentences) {
		return fmt.Errorf("sentence index %d out of bounds (doc has %d sentences)", sentId, len(sentences))
	}

	h.Renderer.TokenTable(sentences[sentId].TokenData())
	return nil
}

func (h *Handler) search(lemmas []string) error {
	if len(lemmas) == 0 {
		return errors.New("no lemma given")
	}

	found := 0
	cursor := storage.Cursor(0)
	for {
		next, err := h.Repo.FindLemma(lemmas, cursor, searchBatch, func(hit corpus.Sentence) error {
			found++
			h.Renderer.Hit(hit, lemmas)
			return nil
		})
		if err != nil {
			return fmt.Errorf("find lemma: %w", err)
		}

		if next == cursor {
			break
		}

		if found >= searchLimit {
			break
		}
		cursor = next
	}

	h.Logger.Debug("lemma search", "lemmas", strings.Join(lemmas, " "), "hits", found)

	if found == 0 {
		fmt.Fprintln(h.Renderer.Out, "no sentences found")
	}

	return nil
}

// docId resolves a prompt argument to a document id, by number first,
// then by title match.
func (h *Handler) docId(arg string, docs []corpus.Doc) (int, error) {
	if id, err := strconv.Atoi(arg); err == nil {
		return id, nil
	}

	for _, doc := range docs {
		if strings.Contains(doc.Title, arg) {
			return doc.Id, nil
		}
	}

	return 0, fmt.Errorf("no document matches %q", arg)
}

func (h *Handler) completer(docs []corpus.Doc) func(in prompt.Document) []prompt.Suggest {
	return func(in prompt.Document) []prompt.Suggest {

		s := []prompt.Suggest{}
		befCursor := in.TextBeforeCursor()

		// Only one character in line
		if "" == befCursor {
			return s
		}

		// lemma searches complete nothing
		if strings.HasPrefix(befCursor, searchPrefix) {
			return s
		}

		word := in.GetWordBeforeCursor()
		if word == "" {
			return s
		}

		for _, cmd := range []prompt.Suggest{
			{Text: "ls", Description: "list documents"},
			{Text: "quit", Description: "leave explore"},
		} {
			if strings.HasPrefix(cmd.Text, word) {
				s = append(s, cmd)
			}
		}

		for _, doc := range docs {
			if strings.HasPrefix(doc.Title, word) {
				s = append(s, prompt.Suggest{Text: strconv.Itoa(doc.Id), Description: "📖 " + doc.Title})
			}
		}

		return s
	}
}

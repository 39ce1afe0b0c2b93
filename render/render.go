// Package render writes documents, sentences and search hits to a
// terminal or as JSON.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/languagetoys/spacy4j/container"
	"github.com/languagetoys/spacy4j/corpus"
)

const DefaultFormat = "text"

var (
	Black   = "\033[1;30m"
	Red     = "\033[1;31m"
	Green   = "\033[1;32m"
	Yellow  = "\033[0;33m"
	Purple  = "\033[1;34m"
	Magenta = "\033[1;35m"
	Teal    = "\033[1;36m"
	Gray    = "\033[0;37m"
	White   = "\033[1;37m"
	Off     = "\033[0m"

	Yellow256 = "\033[1;38;5;130m"
	Grey256   = "\033[1;38;5;145m"
	Green256  = "\033[1;38;5;70m"
	ClearLine = "\033[K"
)

// SupportedFormats lists the hit formats.
//
// text: the full sentence, matched words highlighted
// table: one row per token with its annotations
// lemma: only the matched lemmas
func SupportedFormats() []string {
	return []string{"text", "table", "lemma"}
}

func IsSupportedFormat(format string) bool {
	for _, supported := range SupportedFormats() {
		if format == supported {
			return true
		}
	}
	return false
}

type Renderer struct {
	Out io.Writer

	HasColor bool

	// Format determines how search hits are written, one of
	// SupportedFormats().
	Format string
}

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{Out: out, Format: DefaultFormat}
}

// Doc writes every sentence of the document, one line each, prefixed
// with the sentence index.
func (r *Renderer) Doc(doc *container.Doc) {
	for i, span := range doc.Sentences() {
		r.Sentence(span, fmt.Sprintf("%2d ✍  ", i))
	}
}

// Sentence writes one sentence span behind the prefix.
func (r *Renderer) Sentence(span container.Span, prefix string) {
	fmt.Fprintf(r.Out, "%s%s\n", prefix, r.sentence(span.TokenData(), nil))
}

// Hit writes one search hit in the configured format, highlighting the
// queried lemmas.
func (r *Renderer) Hit(hit corpus.Sentence, lemmas []string) {
	matched := make(map[string]bool, len(lemmas))
	for _, lemma := range lemmas {
		matched[lemma] = true
	}

	switch r.Format {
	case "table":
		fmt.Fprintf(r.Out, "%s\n", r.hitPrefix(hit))
		r.TokenTable(hit.Tokens)
	case "lemma":
		fmt.Fprintf(r.Out, "%s%s\n", r.hitPrefix(hit), r.lemma(hit.Tokens, matched))
	default:
		fmt.Fprintf(r.Out, "%s%s\n", r.hitPrefix(hit), r.sentence(hit.Tokens, matched))
	}
}

// TokenTable writes one aligned row per record. Column widths follow
// the rendered cell widths, so CJK and combining characters stay
// aligned.
func (r *Renderer) TokenTable(tokens []container.TokenData) {
	headers := []string{"INDEX", "TEXT", "LEMMA", "POS", "TAG", "DEP", "HEAD"}

	rows := make([][]string, 0, len(tokens))
	for _, token := range tokens {
		rows = append(rows, []string{
			strconv.Itoa(token.Index),
			token.Text,
			token.Lemma,
			token.Pos,
			token.Tag,
			token.Dep,
			strconv.Itoa(token.Head),
		})
	}

	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = runewidth.StringWidth(header)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	r.tableRow(headers, widths, true)
	for _, row := range rows {
		r.tableRow(row, widths, false)
	}
}

func (r *Renderer) tableRow(cells []string, widths []int, header bool) {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		padded[i] = runewidth.FillRight(cell, widths[i])
	}

	line := strings.TrimRight(strings.Join(padded, "  "), " ")
	if header && r.HasColor {
		line = Teal + line + Off
	}
	fmt.Fprintln(r.Out, line)
}

// NextFormat sets the Format option to a different one, following the
// SupportedFormats() order.
func (r *Renderer) NextFormat() {
	supported := SupportedFormats()
	for i, format := range supported {
		if format == r.Format {
			if i == len(supported)-1 {
				r.Format = supported[0]
			} else {
				r.Format = supported[i+1]
			}
			break
		}
	}
}

// sentence reconstructs the sentence text from the records,
// highlighting matched lemmas. Both parts of a multi token word carry
// the same text and the same idx; the second part is skipped so the
// text appears only once.
func (r *Renderer) sentence(tokens []container.TokenData, matched map[string]bool) string {
	var str strings.Builder
	lastIdx := -1
	for i, token := range tokens {
		if i > 0 && token.Idx == lastIdx {
			continue
		}

		text := token.Text
		if r.HasColor && matched[token.Lemma] {
			text = Green256 + text + Off
		}
		str.WriteString(text)
		str.WriteString(token.After)
		lastIdx = token.Idx
	}

	return strings.TrimSpace(strings.ReplaceAll(str.String(), "\n", " "))
}

// lemma returns only the matched lemmas, in sentence order.
func (r *Renderer) lemma(tokens []container.TokenData, matched map[string]bool) string {
	var words []string
	for _, token := range tokens {
		if matched[token.Lemma] {
			words = append(words, token.Lemma)
		}
	}
	return strings.Join(words, " ")
}

func (r *Renderer) hitPrefix(hit corpus.Sentence) string {
	return fmt.Sprintf("[%s %2d %3d] ✍  ", r.title(hit.DocTitle), hit.DocId, hit.Index)
}

func (r *Renderer) title(title string) string {
	part := runewidth.FillRight(runewidth.Truncate(title, 20, ""), 20)
	if !r.HasColor {
		return part
	}
	return Grey256 + part + Off
}

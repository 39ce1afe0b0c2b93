// Package stat accumulates corpus statistics over tokenized documents.
package stat

import (
	"sort"
	"unicode/utf8"

	"github.com/languagetoys/spacy4j/container"
)

// topLemmaCount caps the lemma ranking returned by Get.
const topLemmaCount = 10

type Handler struct {
	stats  Stats
	lemmas map[string]int
}

// Stats holds aggregates over all documents passed to Aggregate.
// NumTokens counts all token records, including tokens before the first
// sentence flag, so it can exceed the sum of the sentence distribution.
type Stats struct {
	NumDocs               int
	NumSentences          int
	NumTokens             int
	NumRunes              int
	TokensPerSentenceMin  int
	TokensPerSentenceMax  int
	TokensPerSentenceMean int
	TokensPerSentenceDis  map[int]int
	TopLemmas             []LemmaCount
}

// LemmaCount is a lemma and its number of occurrences.
type LemmaCount struct {
	Lemma string
	Count int
}

func NewHandler() *Handler {
	stats := Stats{TokensPerSentenceDis: map[int]int{}}
	return &Handler{
		stats:  stats,
		lemmas: map[string]int{},
	}
}

// Aggregate adds the document to the running statistics.
func (h *Handler) Aggregate(doc *container.Doc) {
	h.stats.NumDocs++
	h.stats.NumTokens += doc.Len()
	h.stats.NumRunes += utf8.RuneCountInString(doc.Text())

	for _, sentence := range doc.Sentences() {
		n := sentence.Len()
		h.stats.NumSentences++
		h.stats.TokensPerSentenceDis[n]++

		if h.stats.TokensPerSentenceMin == 0 || n < h.stats.TokensPerSentenceMin {
			h.stats.TokensPerSentenceMin = n
		}
		if n > h.stats.TokensPerSentenceMax {
			h.stats.TokensPerSentenceMax = n
		}
	}

	for _, tok := range doc.TokenData() {
		if tok.Lemma == "" {
			continue
		}
		h.lemmas[tok.Lemma]++
	}
}

// Get returns the current statistics with derived values filled in. Top
// lemmas are ordered by count, ties broken alphabetically.
func (h *Handler) Get() Stats {
	stats := h.stats
	if stats.NumSentences > 0 {
		stats.TokensPerSentenceMean = stats.NumTokens / stats.NumSentences
	}
	stats.TopLemmas = h.topLemmas(topLemmaCount)
	return stats
}

func (h *Handler) topLemmas(n int) []LemmaCount {
	counts := make([]LemmaCount, 0, len(h.lemmas))
	for lemma, count := range h.lemmas {
		counts = append(counts, LemmaCount{Lemma: lemma, Count: count})
	}

	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Lemma < counts[j].Lemma
	})

	if len(counts) > n {
		counts = counts[:n]
	}

	return counts
}

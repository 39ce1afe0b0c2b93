package container

import "strings"

// TextWithWhitespace reconstructs the exact surface text of the given
// records: the whitespace before the first token, then every token's
// text followed by its trailing whitespace.
func TextWithWhitespace(tokens []TokenData) string {
	if len(tokens) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(tokens[0].Before)
	for _, tok := range tokens {
		b.WriteString(tok.Text)
		b.WriteString(tok.After)
	}
	return b.String()
}

// TextTrimmed is TextWithWhitespace without leading and trailing
// whitespace.
func TextTrimmed(tokens []TokenData) string {
	return strings.TrimSpace(TextWithWhitespace(tokens))
}

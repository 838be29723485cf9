package export

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/andesnlp/garbler/span"
)

// Record is one exportable example: text plus its valid,
// non-overlapping spans in rune offsets.
type Record struct {
	Text  string      `json:"text"`
	Spans []span.Span `json:"spans"`
}

// token is a whitespace token with its rune interval.
type token struct {
	text       string
	start, end int
}

// tokenize splits text on Unicode whitespace, keeping rune offsets.
func tokenize(text string) []token {
	var toks []token
	runes := []rune(text)
	i := 0
	for i < len(runes) {
		for i < len(runes) && unicode.IsSpace(runes[i]) {
			i++
		}
		if i >= len(runes) {
			break
		}
		start := i
		for i < len(runes) && !unicode.IsSpace(runes[i]) {
			i++
		}
		toks = append(toks, token{text: string(runes[start:i]), start: start, end: i})
	}
	return toks
}

// bioTag returns the token's BIO tag against the span set. A token
// overlapping a span is tagged B- when it contains the span start,
// I- otherwise.
func bioTag(tok token, spans []span.Span) string {
	for _, s := range spans {
		if tok.start < s.End && s.Start < tok.end {
			if tok.start <= s.Start {
				return "B-" + string(s.Label)
			}
			return "I-" + string(s.Label)
		}
	}
	return "O"
}

// WriteCoNLL writes records as CoNLL sentence blocks: one
// "token<TAB>tag" line per token, a blank line after each sentence.
func WriteCoNLL(w io.Writer, records []Record) error {
	bw := bufio.NewWriter(w)
	for _, rec := range records {
		for _, tok := range tokenize(rec.Text) {
			clean := strings.NewReplacer("\t", " ", "\n", " ", "\r", " ").Replace(tok.text)
			if _, err := fmt.Fprintf(bw, "%s\t%s\n", clean, bioTag(tok, rec.Spans)); err != nil {
				return fmt.Errorf("export: write conll: %w", err)
			}
		}
		if _, err := bw.WriteString("\n"); err != nil {
			return fmt.Errorf("export: write conll: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("export: write conll: %w", err)
	}
	return nil
}

// Package highlight turns document lines into styled fragments.
//
// A Source supplies per-file classifiers and named themes. A theme is turned
// into a bounded StyleTable once per theme change; the renderer then looks up
// a cell style for every token kind it draws. The chroma-backed Source is the
// production implementation.
package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
)

// Kind is the token classification. It uses chroma's hierarchical
// numbering, so Category and SubCategory give a token's parents.
type Kind = chroma.TokenType

// KindText is the kind of unclassified text.
const KindText = chroma.Text

// Token is one fragment of a line with its classification.
type Token struct {
	Text string
	Kind Kind
}

// Classifier splits one line into tokens.
type Classifier interface {
	Tokenize(line string) ([]Token, error)
}

// PlainText returns the single-token classification of line.
func PlainText(line string) []Token {
	return []Token{{Text: line, Kind: KindText}}
}

// Tokens classifies line with c. Any failure, including a classifier that
// drops or adds text, degrades to PlainText.
func Tokens(c Classifier, line string) (tokens []Token) {
	if c == nil {
		return PlainText(line)
	}
	defer func() {
		if r := recover(); r != nil {
			tokens = PlainText(line)
		}
	}()

	toks, err := c.Tokenize(line)
	if err != nil || len(toks) == 0 {
		return PlainText(line)
	}

	var sb strings.Builder
	for _, t := range toks {
		sb.WriteString(t.Text)
	}
	if sb.String() != line {
		return PlainText(line)
	}
	return toks
}

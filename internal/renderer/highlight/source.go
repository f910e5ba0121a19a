package highlight

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/dshills/te/internal/renderer/core"
)

// ErrUnknownTheme is returned for theme names the source does not know.
var ErrUnknownTheme = errors.New("unknown theme")

// Source is the style source collaborator.
type Source interface {
	// Classifier returns a classifier for a file, guessing the language
	// from filename and falling back to the text itself.
	Classifier(filename, text string) Classifier

	// ThemeNames returns the known theme names, sorted.
	ThemeNames() []string

	// Theme returns the style descriptors of a named theme.
	Theme(name string) (Theme, error)
}

// ChromaSource implements Source with chroma lexers and styles.
type ChromaSource struct{}

// NewChromaSource creates a chroma-backed source.
func NewChromaSource() *ChromaSource {
	return &ChromaSource{}
}

// Classifier returns a coalescing chroma lexer for filename.
func (s *ChromaSource) Classifier(filename, text string) Classifier {
	var lexer chroma.Lexer
	if filename != "" {
		lexer = lexers.Match(filepath.Base(filename))
	}
	if lexer == nil && text != "" {
		lexer = lexers.Analyse(text)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return &chromaClassifier{lexer: chroma.Coalesce(lexer)}
}

// Language returns the name of the lexer chosen for filename.
func (s *ChromaSource) Language(filename, text string) string {
	c, ok := s.Classifier(filename, text).(*chromaClassifier)
	if !ok {
		return "plaintext"
	}
	return c.lexer.Config().Name
}

func (s *ChromaSource) ThemeNames() []string {
	names := styles.Names()
	sort.Strings(names)
	return names
}

func (s *ChromaSource) Theme(name string) (Theme, error) {
	style, ok := styles.Registry[name]
	if !ok {
		return Theme{}, fmt.Errorf("%w: %s", ErrUnknownTheme, name)
	}

	types := style.Types()
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	theme := Theme{Name: name}
	for _, tt := range types {
		if tt == chroma.Background {
			continue
		}
		theme.Entries = append(theme.Entries, ThemeEntry{Kind: tt, Descriptor: descriptorFor(style.Get(tt))})
	}
	return theme, nil
}

func descriptorFor(e chroma.StyleEntry) Descriptor {
	d := Descriptor{
		Bold:      e.Bold == chroma.Yes,
		Italic:    e.Italic == chroma.Yes,
		Underline: e.Underline == chroma.Yes,
	}
	if e.Colour.IsSet() {
		d.Color = core.ColorFromRGB(e.Colour.Red(), e.Colour.Green(), e.Colour.Blue())
		d.HasColor = true
	}
	return d
}

type chromaClassifier struct {
	lexer chroma.Lexer
}

func (c *chromaClassifier) Tokenize(line string) ([]Token, error) {
	it, err := c.lexer.Tokenise(nil, line)
	if err != nil {
		return nil, err
	}

	var out []Token
	for _, tok := range it.Tokens() {
		// Lexers append a trailing newline to the input.
		text := strings.ReplaceAll(tok.Value, "\n", "")
		if text == "" {
			continue
		}
		out = append(out, Token{Text: text, Kind: tok.Type})
	}
	return out, nil
}

package highlight

import (
	"errors"
	"strings"
	"testing"

	"github.com/alecthomas/chroma/v2"

	"github.com/dshills/te/internal/renderer/core"
)

type failingClassifier struct{}

func (failingClassifier) Tokenize(string) ([]Token, error) {
	return nil, errors.New("boom")
}

type panickingClassifier struct{}

func (panickingClassifier) Tokenize(string) ([]Token, error) {
	panic("lexer bug")
}

type lossyClassifier struct{}

func (lossyClassifier) Tokenize(line string) ([]Token, error) {
	return []Token{{Text: strings.TrimSpace(line), Kind: chroma.Keyword}}, nil
}

func TestTokensDegradeToPlainText(t *testing.T) {
	for name, c := range map[string]Classifier{
		"nil":   nil,
		"error": failingClassifier{},
		"panic": panickingClassifier{},
		"lossy": lossyClassifier{},
	} {
		got := Tokens(c, "  x := 1")
		if len(got) != 1 || got[0].Text != "  x := 1" || got[0].Kind != KindText {
			t.Errorf("%s: Tokens() = %+v, want plain text", name, got)
		}
	}
}

func TestChromaClassifierPreservesText(t *testing.T) {
	src := NewChromaSource()
	c := src.Classifier("main.go", "")
	line := `func main() { fmt.Println("hi") } // done`

	toks := Tokens(c, line)
	var sb strings.Builder
	sawKeyword := false
	for _, tok := range toks {
		sb.WriteString(tok.Text)
		if tok.Kind.Category() == chroma.Keyword {
			sawKeyword = true
		}
	}
	if sb.String() != line {
		t.Errorf("tokens reassemble to %q, want %q", sb.String(), line)
	}
	if !sawKeyword {
		t.Error("expected a keyword token for Go source")
	}
}

func TestChromaSourceLanguageFallback(t *testing.T) {
	src := NewChromaSource()
	if got := src.Language("notes.go", ""); got != "Go" {
		t.Errorf("Language(notes.go) = %q, want Go", got)
	}
	if got := src.Language("", ""); got != "fallback" {
		t.Errorf("Language(\"\") = %q, want fallback", got)
	}
}

func TestChromaSourceThemes(t *testing.T) {
	src := NewChromaSource()
	names := src.ThemeNames()
	if len(names) == 0 {
		t.Fatal("no themes")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("ThemeNames() not sorted at %d: %q > %q", i, names[i-1], names[i])
		}
	}

	theme, err := src.Theme("monokai")
	if err != nil {
		t.Fatalf("Theme(monokai) error: %v", err)
	}
	if len(theme.Entries) == 0 {
		t.Error("monokai has no entries")
	}

	if _, err := src.Theme("no-such-theme"); !errors.Is(err, ErrUnknownTheme) {
		t.Errorf("Theme(no-such-theme) error = %v, want ErrUnknownTheme", err)
	}
}

func syntheticTheme(n int) Theme {
	theme := Theme{Name: "synthetic"}
	for i := 0; i < n; i++ {
		theme.Entries = append(theme.Entries, ThemeEntry{
			Kind:       Kind(100000 + i*1000),
			Descriptor: Descriptor{Color: core.ColorFromRGB(uint8(i), 0, 0), HasColor: true},
		})
	}
	return theme
}

func TestStyleTableFreezesAtCapacity(t *testing.T) {
	table := NewStyleTable(syntheticTheme(70), DefaultCapacity, nil)

	if table.Len() != DefaultCapacity {
		t.Errorf("Len() = %d, want %d", table.Len(), DefaultCapacity)
	}
	if !table.Exhausted() {
		t.Error("expected table to be exhausted")
	}
	if !errors.Is(table.Err(), ErrStyleLookupExhausted) {
		t.Errorf("Err() = %v, want ErrStyleLookupExhausted", table.Err())
	}

	// Registered styles keep their color; excess ones resolve to default.
	first := table.Lookup(Kind(100000))
	if !first.Foreground.Equals(core.ColorFromRGB(0, 0, 0)) {
		t.Errorf("first style foreground = %v", first.Foreground)
	}
	last := table.Lookup(Kind(100000 + 69*1000))
	if !last.Equals(core.DefaultStyle()) {
		t.Errorf("overflow style = %+v, want default", last)
	}
}

func TestStyleTableSharesIdenticalDescriptors(t *testing.T) {
	d := Descriptor{Bold: true}
	theme := Theme{Name: "shared", Entries: []ThemeEntry{
		{Kind: chroma.Keyword, Descriptor: d},
		{Kind: chroma.NameBuiltin, Descriptor: d},
	}}
	table := NewStyleTable(theme, 1, nil)
	if table.Len() != 1 || table.Exhausted() {
		t.Errorf("Len() = %d Exhausted() = %v, want 1 false", table.Len(), table.Exhausted())
	}
	if table.Err() != nil {
		t.Errorf("Err() = %v, want nil", table.Err())
	}
}

func TestStyleTableLookupInheritsCategory(t *testing.T) {
	theme := Theme{Name: "cat", Entries: []ThemeEntry{
		{Kind: chroma.Keyword, Descriptor: Descriptor{Bold: true}},
		{Kind: chroma.LiteralString, Descriptor: Descriptor{Italic: true, Underline: true}},
	}}
	table := NewStyleTable(theme, DefaultCapacity, nil)

	if s := table.Lookup(chroma.KeywordReserved); !s.Attributes.Has(core.AttrBold) {
		t.Errorf("KeywordReserved should inherit bold, got %+v", s)
	}
	s := table.Lookup(chroma.LiteralStringDouble)
	if !s.Attributes.Has(core.AttrItalic) || !s.Attributes.Has(core.AttrUnderline) {
		t.Errorf("LiteralStringDouble should inherit italic underline, got %+v", s)
	}
	if s := table.Lookup(chroma.Comment); !s.Equals(core.DefaultStyle()) {
		t.Errorf("Comment should be default, got %+v", s)
	}
}

func TestNearest8(t *testing.T) {
	tests := []struct {
		in   core.Color
		want uint8
	}{
		{core.ColorFromRGB(250, 10, 10), 1},
		{core.ColorFromRGB(0, 0, 0), 0},
		{core.ColorFromRGB(230, 230, 230), 7},
		{core.ColorFromRGB(10, 20, 190), 4},
	}
	for _, tt := range tests {
		got := Nearest8(tt.in)
		if !got.Indexed || got.R != tt.want {
			t.Errorf("Nearest8(%v) = %v, want palette(%d)", tt.in, got, tt.want)
		}
	}
	if !Nearest8(core.ColorDefault).IsDefault() {
		t.Error("default color should pass through")
	}
}

func TestReducerFor(t *testing.T) {
	c := core.ColorFromRGB(1, 2, 3)
	if got := ReducerFor(1 << 24)(c); !got.Equals(c) {
		t.Errorf("truecolor reducer changed color to %v", got)
	}
	if got := ReducerFor(8)(c); !got.Indexed {
		t.Errorf("8-color reducer returned %v", got)
	}
}

func TestNextTheme(t *testing.T) {
	names := []string{"monokai", "abap", "vim"}
	if got := NextTheme(names, "abap"); got != "monokai" {
		t.Errorf("NextTheme(abap) = %q, want monokai", got)
	}
	if got := NextTheme(names, "vim"); got != "abap" {
		t.Errorf("NextTheme(vim) = %q, want abap", got)
	}
	if got := NextTheme(names, "missing"); got != "abap" {
		t.Errorf("NextTheme(missing) = %q, want abap", got)
	}
	if got := NextTheme(nil, "x"); got != "x" {
		t.Errorf("NextTheme(nil) = %q, want x", got)
	}
}

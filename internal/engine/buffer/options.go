package buffer

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// WithLines seeds the buffer with the given lines. An empty slice leaves
// the single empty line in place.
func WithLines(lines []string) Option {
	return func(b *Buffer) {
		if len(lines) == 0 {
			return
		}
		b.lines = make([][]rune, len(lines))
		for i, l := range lines {
			b.lines[i] = []rune(l)
		}
	}
}

// WithText seeds the buffer by splitting text into lines.
func WithText(text string) Option {
	return WithLines(SplitLines(text))
}

// SplitLines splits text on "\n", "\r\n" and "\r". A trailing terminator
// does not produce an extra empty line and empty text yields one empty line.
func SplitLines(text string) []string {
	lines := []string{}
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			lines = append(lines, text[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, text[start:i])
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	if len(lines) == 0 {
		lines = append(lines, "")
	}
	return lines
}

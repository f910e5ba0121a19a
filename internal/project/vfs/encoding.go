package vfs

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
)

// Encoding names the character encoding a file was decoded with.
type Encoding string

const (
	// EncodingUTF8 is UTF-8 encoding (default).
	EncodingUTF8 Encoding = "UTF-8"

	// EncodingLatin1 is ISO-8859-1 (Latin-1).
	EncodingLatin1 Encoding = "Latin-1"
)

// ErrUndecodable is returned when neither UTF-8 nor the fallback encoding
// can decode the content.
var ErrUndecodable = errors.New("content cannot be decoded")

// Latin1 is the default legacy fallback. It maps every byte to a code
// point and never fails.
var Latin1 encoding.Encoding = charmap.ISO8859_1

// Decoder decodes file content, falling back to a single-byte legacy
// encoding when the content is not valid UTF-8.
type Decoder struct {
	fallback     encoding.Encoding
	fallbackName Encoding
}

// NewDecoder creates a decoder that falls back to Latin-1.
func NewDecoder() *Decoder {
	return NewDecoderWithFallback(Latin1, EncodingLatin1)
}

// DecoderFor creates a decoder that falls back to the IANA-registered
// encoding name, such as "ISO-8859-1" or "windows-1252".
func DecoderFor(name string) (*Decoder, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("fallback encoding %q: %w", name, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("fallback encoding %q: unsupported", name)
	}
	if enc == charmap.ISO8859_1 {
		return NewDecoder(), nil
	}
	return NewDecoderWithFallback(enc, Encoding(name)), nil
}

// NewDecoderWithFallback creates a decoder with a custom fallback encoding.
func NewDecoderWithFallback(fallback encoding.Encoding, name Encoding) *Decoder {
	return &Decoder{fallback: fallback, fallbackName: name}
}

// Decode returns content as a string along with the encoding that decoded
// it. Valid UTF-8 passes through unchanged.
func (d *Decoder) Decode(content []byte) (string, Encoding, error) {
	if utf8.Valid(content) {
		return string(content), EncodingUTF8, nil
	}
	if d.fallback == nil {
		return "", "", ErrUndecodable
	}
	out, err := d.fallback.NewDecoder().Bytes(content)
	if err != nil {
		return "", "", errors.Join(ErrUndecodable, err)
	}
	return string(out), d.fallbackName, nil
}

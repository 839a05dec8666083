package legalsite

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
)

// DefaultEncodings is the decoder chain used when none is configured.
var DefaultEncodings = []string{"utf-8", "windows-1252", "iso-8859-1", "gbk"}

// utf8BOM is stripped from UTF-8 sources before validation.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// knownEncodings maps the accepted names to their decoders.
// Names outside this table are looked up in the IANA registry.
var knownEncodings = map[string]encoding.Encoding{
	"utf-8":        unicode.UTF8BOM,
	"utf8":         unicode.UTF8BOM,
	"utf-8-sig":    unicode.UTF8BOM,
	"windows-1252": charmap.Windows1252,
	"cp1252":       charmap.Windows1252,
	"iso-8859-1":   charmap.ISO8859_1,
	"latin-1":      charmap.ISO8859_1,
	"latin1":       charmap.ISO8859_1,
	"gbk":          simplifiedchinese.GBK,
}

// KnownEncodings lists the built-in encoding names, sorted.
func KnownEncodings() []string {
	names := make([]string, 0, len(knownEncodings))
	for name := range knownEncodings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type candidate struct {
	name string
	enc  encoding.Encoding
}

// DecoderChain tries each encoding in order and returns the first that
// decodes the whole input cleanly.
type DecoderChain struct {
	candidates []candidate
}

// DefaultDecoderChain returns the chain utf-8, windows-1252, iso-8859-1, gbk.
func DefaultDecoderChain() *DecoderChain {
	c, err := NewDecoderChain(DefaultEncodings...)
	if err != nil {
		panic("legalsite: default decoder chain: " + err.Error())
	}
	return c
}

// NewDecoderChain builds a chain from encoding names, in order.
// Unknown names return ErrUnknownEncoding.
func NewDecoderChain(names ...string) (*DecoderChain, error) {
	if len(names) == 0 {
		return nil, ErrNoEncodings
	}

	c := &DecoderChain{candidates: make([]candidate, 0, len(names))}
	for _, name := range names {
		enc, err := lookupEncoding(name)
		if err != nil {
			return nil, err
		}
		c.candidates = append(c.candidates, candidate{name: strings.ToLower(strings.TrimSpace(name)), enc: enc})
	}
	return c, nil
}

func lookupEncoding(name string) (encoding.Encoding, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if enc, ok := knownEncodings[key]; ok {
		return enc, nil
	}

	enc, err := ianaindex.IANA.Encoding(key)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	return enc, nil
}

// Names returns the encoding names of the chain, in order.
func (c *DecoderChain) Names() []string {
	names := make([]string, len(c.candidates))
	for i, cand := range c.candidates {
		names[i] = cand.name
	}
	return names
}

// Decode returns the text and the name of the encoding that produced it.
// When every candidate fails the error is a *DecodeError.
func (c *DecoderChain) Decode(data []byte) (string, string, error) {
	for _, cand := range c.candidates {
		if text, ok := decodeWith(cand.enc, data); ok {
			return text, cand.name, nil
		}
	}
	return "", "", &DecodeError{Tried: c.Names()}
}

// decodeWith fails on invalid UTF-8 for the UTF-8 family and on any
// replacement character produced by other decoders.
func decodeWith(enc encoding.Encoding, data []byte) (string, bool) {
	if enc == unicode.UTF8BOM || enc == unicode.UTF8 {
		body := bytes.TrimPrefix(data, utf8BOM)
		if !utf8.Valid(body) {
			return "", false
		}
		return string(body), true
	}

	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", false
	}
	if bytes.ContainsRune(out, utf8.RuneError) {
		return "", false
	}
	return string(out), true
}

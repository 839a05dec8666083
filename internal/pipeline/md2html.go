package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrHTMLConversion indicates fragment conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// ErrUnknownEngine indicates an unsupported engine name.
var ErrUnknownEngine = errors.New("unknown markdown engine")

// Engine names accepted by NewFragmentConverter.
const (
	EngineLines    = "lines"
	EngineGoldmark = "goldmark"
)

// crlfOrCR matches Windows and classic Mac line endings.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// FragmentConverter abstracts Markdown to HTML fragment conversion.
// A fragment is the page body only; the page template is applied later.
type FragmentConverter interface {
	ToFragment(ctx context.Context, markdown string) (string, error)
}

// NewFragmentConverter returns the converter for the named engine.
// An empty name selects EngineLines.
func NewFragmentConverter(engine string) (FragmentConverter, error) {
	switch strings.ToLower(engine) {
	case "", EngineLines:
		return NewLineConverter(), nil
	case EngineGoldmark:
		return NewGoldmarkConverter(), nil
	default:
		return nil, fmt.Errorf("%w: %q (use %s or %s)", ErrUnknownEngine, engine, EngineLines, EngineGoldmark)
	}
}

// LineConverter is the line-oriented converter used for legal documents:
// classify each line, rewrite inline spans, then assemble blocks.
type LineConverter struct {
	inline    InlineTransformer
	assembler BlockAssembler
}

// NewLineConverter creates a LineConverter with the standard stages.
func NewLineConverter() *LineConverter {
	return &LineConverter{
		inline:    SpanTransformer{},
		assembler: ListAssembler{},
	}
}

// ToFragment converts markdown into an HTML fragment. It never fails on
// malformed input; odd markdown yields correspondingly odd HTML.
func (c *LineConverter) ToFragment(ctx context.Context, markdown string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	lines := ClassifyAll(NormalizeLineEndings(markdown))
	for i := range lines {
		lines[i].Text = c.inline.TransformInline(lines[i].Text)
	}
	return c.assembler.Assemble(lines), nil
}

// NormalizeLineEndings converts \r\n and \r to \n.
func NormalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// GoldmarkConverter converts Markdown to an HTML fragment using goldmark.
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter creates a GoldmarkConverter with GFM extensions and
// class-based syntax highlighting.
func NewGoldmarkConverter() *GoldmarkConverter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
		),
	)
	return &GoldmarkConverter{md: md}
}

// ToFragment converts markdown into an HTML fragment.
func (c *GoldmarkConverter) ToFragment(ctx context.Context, markdown string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := c.md.Convert([]byte(NormalizeLineEndings(markdown)), &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

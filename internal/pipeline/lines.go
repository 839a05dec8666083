package pipeline

import (
	"strings"
)

// Kind is the structural role of a single markdown line.
type Kind int

const (
	KindBlank Kind = iota
	KindHeader
	KindListItem
	KindPreTagged
	KindParagraph
)

// String returns a readable name for the kind, used in test output.
func (k Kind) String() string {
	switch k {
	case KindBlank:
		return "blank"
	case KindHeader:
		return "header"
	case KindListItem:
		return "list-item"
	case KindPreTagged:
		return "pre-tagged"
	case KindParagraph:
		return "paragraph"
	default:
		return "unknown"
	}
}

// MaxHeaderLevel is the deepest heading the classifier recognizes.
// "#### x" and deeper are plain paragraphs.
const MaxHeaderLevel = 3

// listMarker starts an unordered list item.
const listMarker = "- "

// preTaggedPrefixes are the opening-tag starts treated as already block-level.
// The check is deliberately narrow: "<h", "<u" and "<l" only, so "<label>"
// passes through as well as "<h2>", "<ul>" and "<li>".
var preTaggedPrefixes = []string{"<h", "<u", "<l"}

// Line is one classified physical line. Text holds the content with any
// structural marker removed; for Blank and PreTagged it is the raw line.
type Line struct {
	Kind  Kind
	Level int // 1..MaxHeaderLevel for KindHeader, 0 otherwise
	Text  string
}

// Classify decides which structural rule applies to a single line.
// Order: header, list item, blank, pre-tagged, paragraph.
func Classify(raw string) Line {
	if level, text, ok := headerOf(raw); ok {
		return Line{Kind: KindHeader, Level: level, Text: text}
	}
	if strings.HasPrefix(raw, listMarker) {
		return Line{Kind: KindListItem, Text: raw[len(listMarker):]}
	}
	if strings.TrimSpace(raw) == "" {
		return Line{Kind: KindBlank, Text: raw}
	}
	if isPreTagged(raw) {
		return Line{Kind: KindPreTagged, Text: raw}
	}
	return Line{Kind: KindParagraph, Text: raw}
}

// ClassifyAll splits normalized markdown on "\n" and classifies every line.
func ClassifyAll(markdown string) []Line {
	raw := strings.Split(markdown, "\n")
	lines := make([]Line, len(raw))
	for i, r := range raw {
		lines[i] = Classify(r)
	}
	return lines
}

// Markdown reconstructs the source line, so Classify(l.Markdown()) == l.
func (l Line) Markdown() string {
	switch l.Kind {
	case KindHeader:
		return strings.Repeat("#", l.Level) + " " + l.Text
	case KindListItem:
		return listMarker + l.Text
	default:
		return l.Text
	}
}

// headerOf matches "# ", "## " or "### " followed by at least one character.
func headerOf(raw string) (int, string, bool) {
	level := 0
	for level < len(raw) && raw[level] == '#' {
		level++
	}
	if level == 0 || level > MaxHeaderLevel {
		return 0, "", false
	}
	rest := raw[level:]
	if !strings.HasPrefix(rest, " ") || len(rest) < 2 {
		return 0, "", false
	}
	return level, rest[1:], true
}

func isPreTagged(raw string) bool {
	for _, p := range preTaggedPrefixes {
		if strings.HasPrefix(raw, p) {
			return true
		}
	}
	return false
}

package pipeline

import (
	"regexp"
)

// Precompiled inline patterns.
var (
	// **text**, shortest enclosed span wins
	boldPattern = regexp.MustCompile(`\*\*(.+?)\*\*`)

	// [label](target), label without "]" and target without ")"
	linkPattern = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
)

// InlineTransformer rewrites span-level markup within one line of text.
type InlineTransformer interface {
	TransformInline(text string) string
}

// SpanTransformer applies bold then link substitution. Substitutions are
// textual: emitted tags and their contents are not re-scanned.
type SpanTransformer struct{}

// TransformInline applies every span substitution in order.
func (SpanTransformer) TransformInline(text string) string {
	text, _ = ReplaceBold(text)
	text, _ = ReplaceLinks(text)
	return text
}

// ReplaceBold turns every **text** span into <strong>text</strong>.
// Returns the rewritten text and the number of spans replaced.
func ReplaceBold(text string) (string, int) {
	return replaceCounting(boldPattern, text, "<strong>$1</strong>")
}

// ReplaceLinks turns every [label](target) into <a href="target">label</a>.
// Returns the rewritten text and the number of links replaced.
func ReplaceLinks(text string) (string, int) {
	return replaceCounting(linkPattern, text, `<a href="$2">$1</a>`)
}

func replaceCounting(re *regexp.Regexp, text, template string) (string, int) {
	matches := re.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text, 0
	}
	out := make([]byte, 0, len(text)+len(matches)*len(template))
	last := 0
	for _, m := range matches {
		out = append(out, text[last:m[0]]...)
		out = re.ExpandString(out, template, text, m)
		last = m[1]
	}
	out = append(out, text[last:]...)
	return string(out), len(matches)
}

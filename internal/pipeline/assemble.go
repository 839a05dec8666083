package pipeline

import (
	"strconv"
	"strings"
)

const (
	listOpen  = "<ul>"
	listClose = "</ul>"
)

// BlockAssembler walks classified lines and emits the HTML fragment.
type BlockAssembler interface {
	Assemble(lines []Line) string
}

// ListAssembler groups consecutive list items into one <ul> container.
// Its only state is whether a list is open, and it always closes the list
// before returning.
type ListAssembler struct{}

// Assemble emits one output line per input line, plus the list markers.
func (ListAssembler) Assemble(lines []Line) string {
	out := make([]string, 0, len(lines)+2)
	inList := false

	for _, l := range lines {
		if l.Kind == KindListItem {
			if !inList {
				out = append(out, listOpen)
				inList = true
			}
			out = append(out, "<li>"+l.Text+"</li>")
			continue
		}

		if inList {
			out = append(out, listClose)
			inList = false
		}
		out = append(out, blockFor(l))
	}

	if inList {
		out = append(out, listClose)
	}

	return strings.Join(out, "\n")
}

// blockFor renders a non-list line.
func blockFor(l Line) string {
	switch l.Kind {
	case KindHeader:
		tag := "h" + strconv.Itoa(l.Level)
		return "<" + tag + ">" + l.Text + "</" + tag + ">"
	case KindParagraph:
		return "<p>" + l.Text + "</p>"
	default:
		return l.Text
	}
}

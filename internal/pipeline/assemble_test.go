package pipeline

import (
	"strings"
	"testing"
)

func TestListAssembler_Assemble(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		lines []Line
		want  string
	}{
		{
			name:  "empty input",
			lines: nil,
			want:  "",
		},
		{
			name: "list followed by paragraph",
			lines: []Line{
				{Kind: KindListItem, Text: "Item A"},
				{Kind: KindListItem, Text: "Item B"},
				{Kind: KindParagraph, Text: "Normal text"},
			},
			want: "<ul>\n<li>Item A</li>\n<li>Item B</li>\n</ul>\n<p>Normal text</p>",
		},
		{
			name: "list at end of document is closed",
			lines: []Line{
				{Kind: KindParagraph, Text: "Intro"},
				{Kind: KindListItem, Text: "last"},
			},
			want: "<p>Intro</p>\n<ul>\n<li>last</li>\n</ul>",
		},
		{
			name: "blank line splits lists",
			lines: []Line{
				{Kind: KindListItem, Text: "a"},
				{Kind: KindBlank, Text: ""},
				{Kind: KindListItem, Text: "b"},
			},
			want: "<ul>\n<li>a</li>\n</ul>\n\n<ul>\n<li>b</li>\n</ul>",
		},
		{
			name: "headers and pre-tagged lines are not wrapped",
			lines: []Line{
				{Kind: KindHeader, Level: 1, Text: "Title"},
				{Kind: KindPreTagged, Text: "<hr>"},
				{Kind: KindBlank, Text: "  "},
			},
			want: "<h1>Title</h1>\n<hr>\n  ",
		},
		{
			name: "header closes an open list",
			lines: []Line{
				{Kind: KindListItem, Text: "x"},
				{Kind: KindHeader, Level: 3, Text: "Next"},
			},
			want: "<ul>\n<li>x</li>\n</ul>\n<h3>Next</h3>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ListAssembler{}.Assemble(tt.lines)
			if got != tt.want {
				t.Errorf("Assemble() =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestListAssembler_RunOfK(t *testing.T) {
	t.Parallel()

	for k := 1; k <= 6; k++ {
		lines := make([]Line, 0, k)
		for i := 0; i < k; i++ {
			lines = append(lines, Line{Kind: KindListItem, Text: "item"})
		}

		got := ListAssembler{}.Assemble(lines)

		if n := strings.Count(got, listOpen); n != 1 {
			t.Errorf("k=%d: %d opening markers", k, n)
		}
		if n := strings.Count(got, listClose); n != 1 {
			t.Errorf("k=%d: %d closing markers", k, n)
		}
		if n := strings.Count(got, "<li>"); n != k {
			t.Errorf("k=%d: %d items", k, n)
		}
		if !strings.HasSuffix(got, listClose) {
			t.Errorf("k=%d: output does not end with %s: %q", k, listClose, got)
		}
	}
}

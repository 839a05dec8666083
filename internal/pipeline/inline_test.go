package pipeline

import (
	"strings"
	"testing"
)

func TestReplaceBold(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		want      string
		wantCount int
	}{
		{
			name:      "no markup",
			input:     "plain text",
			want:      "plain text",
			wantCount: 0,
		},
		{
			name:      "single span",
			input:     "a **b** c",
			want:      "a <strong>b</strong> c",
			wantCount: 1,
		},
		{
			name:      "shortest span wins",
			input:     "**a** and **b**",
			want:      "<strong>a</strong> and <strong>b</strong>",
			wantCount: 2,
		},
		{
			name:      "single asterisks untouched",
			input:     "*a* and 2 * 3",
			want:      "*a* and 2 * 3",
			wantCount: 0,
		},
		{
			name:      "unmatched pair untouched",
			input:     "**open only",
			want:      "**open only",
			wantCount: 0,
		},
		{
			name:      "empty span is not bold",
			input:     "****",
			want:      "****",
			wantCount: 0,
		},
		{
			name:      "bold inside header text",
			input:     "Section **1**",
			want:      "Section <strong>1</strong>",
			wantCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, n := ReplaceBold(tt.input)
			if got != tt.want {
				t.Errorf("ReplaceBold(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if n != tt.wantCount {
				t.Errorf("ReplaceBold(%q) count = %d, want %d", tt.input, n, tt.wantCount)
			}
		})
	}
}

func TestReplaceBold_CountMatchesStrongSpans(t *testing.T) {
	t.Parallel()

	for n := 0; n <= 5; n++ {
		input := strings.Repeat("x **y** ", n) + "* tail"
		got, count := ReplaceBold(input)
		if count != n {
			t.Errorf("n=%d: count = %d", n, count)
		}
		if spans := strings.Count(got, "<strong>"); spans != n {
			t.Errorf("n=%d: %d <strong> spans in %q", n, spans, got)
		}
		if !strings.HasSuffix(got, "* tail") {
			t.Errorf("n=%d: single asterisk was rewritten: %q", n, got)
		}
	}
}

func TestReplaceLinks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		want      string
		wantCount int
	}{
		{
			name:      "simple link",
			input:     "see [terms](terms_en.html)",
			want:      `see <a href="terms_en.html">terms</a>`,
			wantCount: 1,
		},
		{
			name:      "mailto link",
			input:     "[Contact](mailto:founder@example.org).",
			want:      `<a href="mailto:founder@example.org">Contact</a>.`,
			wantCount: 1,
		},
		{
			name:      "two links",
			input:     "[a](1) [b](2)",
			want:      `<a href="1">a</a> <a href="2">b</a>`,
			wantCount: 2,
		},
		{
			name:      "empty label is not a link",
			input:     "[](x)",
			want:      "[](x)",
			wantCount: 0,
		},
		{
			name:      "target stops at first paren",
			input:     "[w](https://en.wikipedia.org/wiki/A_(b))",
			want:      `<a href="https://en.wikipedia.org/wiki/A_(b">w</a>)`,
			wantCount: 1,
		},
		{
			name:      "brackets without target",
			input:     "[note] text",
			want:      "[note] text",
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, n := ReplaceLinks(tt.input)
			if got != tt.want {
				t.Errorf("ReplaceLinks(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if n != tt.wantCount {
				t.Errorf("ReplaceLinks(%q) count = %d, want %d", tt.input, n, tt.wantCount)
			}
		})
	}
}

func TestSpanTransformer_BoldBeforeLinks(t *testing.T) {
	t.Parallel()

	got := SpanTransformer{}.TransformInline("**[Policy](p.html)** and [**x**](y)")
	want := `<strong><a href="p.html">Policy</a></strong> and <a href="y"><strong>x</strong></a>`
	if got != want {
		t.Errorf("TransformInline() = %q, want %q", got, want)
	}
}

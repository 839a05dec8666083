package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestLineConverter_ToFragment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		markdown string
		want     string
	}{
		{
			name:     "level 2 heading",
			markdown: "## Data Collection",
			want:     "<h2>Data Collection</h2>",
		},
		{
			name:     "list then paragraph",
			markdown: "- Item A\n- Item B\nNormal text",
			want:     "<ul>\n<li>Item A</li>\n<li>Item B</li>\n</ul>\n<p>Normal text</p>",
		},
		{
			name:     "inline markup in every block kind",
			markdown: "# **Terms**\n- see [privacy](privacy_en.html)\n**Note:** read",
			want: "<h1><strong>Terms</strong></h1>\n" +
				"<ul>\n<li>see <a href=\"privacy_en.html\">privacy</a></li>\n</ul>\n" +
				"<p><strong>Note:</strong> read</p>",
		},
		{
			name:     "bold paragraph is still wrapped",
			markdown: "**Effective:** today",
			want:     "<p><strong>Effective:</strong> today</p>",
		},
		{
			name:     "link paragraph is still wrapped",
			markdown: "[Home](index.html)",
			want:     `<p><a href="index.html">Home</a></p>`,
		},
		{
			name:     "trailing newline keeps an empty last line",
			markdown: "text\n",
			want:     "<p>text</p>\n",
		},
		{
			name:     "CRLF is normalized",
			markdown: "# A\r\n\r\nb\r\n",
			want:     "<h1>A</h1>\n\n<p>b</p>\n",
		},
		{
			name:     "raw HTML passes through unescaped",
			markdown: "<li>manual</li>\n<script>x()</script>",
			want:     "<li>manual</li>\n<p><script>x()</script></p>",
		},
	}

	conv := NewLineConverter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := conv.ToFragment(context.Background(), tt.markdown)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ToFragment() =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestLineConverter_ToFragment_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLineConverter().ToFragment(ctx, "# x")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestGoldmarkConverter_ToFragment(t *testing.T) {
	t.Parallel()

	got, err := NewGoldmarkConverter().ToFragment(context.Background(), "## Data Collection\n\n- a\n- b\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, `<h2 id="data-collection">Data Collection</h2>`) {
		t.Errorf("missing heading with id: %q", got)
	}
	if !strings.Contains(got, "<li>a</li>") {
		t.Errorf("missing list item: %q", got)
	}
	if strings.HasSuffix(got, "\n") {
		t.Errorf("fragment should not end with a newline: %q", got)
	}
}

func TestNewFragmentConverter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		engine  string
		wantErr error
	}{
		{engine: ""},
		{engine: "lines"},
		{engine: "Goldmark"},
		{engine: "pandoc", wantErr: ErrUnknownEngine},
	}

	for _, tt := range tests {
		t.Run(tt.engine, func(t *testing.T) {
			t.Parallel()

			conv, err := NewFragmentConverter(tt.engine)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if conv == nil {
				t.Fatal("converter is nil")
			}
		})
	}
}

func TestNormalizeLineEndings(t *testing.T) {
	t.Parallel()

	if got := NormalizeLineEndings("a\r\nb\rc\n"); got != "a\nb\nc\n" {
		t.Errorf("NormalizeLineEndings() = %q", got)
	}
}

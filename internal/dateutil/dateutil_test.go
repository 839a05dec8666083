package dateutil

import (
	"errors"
	"testing"
	"time"
)

func TestLayout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		format  string
		want    string
		wantErr error
	}{
		{name: "year", format: "YYYY", want: "2006"},
		{name: "short year", format: "YY", want: "06"},
		{name: "long month", format: "MMMM D, YYYY", want: "January 2, 2006"},
		{name: "iso", format: "YYYY-MM-DD", want: "2006-01-02"},
		{name: "short month", format: "MMM", want: "Jan"},
		{name: "bracket literal", format: "[Year] YYYY", want: "Year 2006"},
		{name: "unknown characters kept", format: "YYYY/x", want: "2006/x"},
		{name: "empty", format: "", wantErr: ErrInvalidDateFormat},
		{name: "unclosed bracket", format: "[oops", wantErr: ErrInvalidDateFormat},
		{name: "too long", format: string(make([]byte, MaxFormatLength+1)), wantErr: ErrInvalidDateFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Layout(tt.format)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Layout(%q) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 7, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		value   string
		want    string
		wantErr error
	}{
		{name: "literal passthrough", value: "2025", want: "2025"},
		{name: "empty passthrough", value: "", want: ""},
		{name: "auto is the year", value: "auto", want: "2026"},
		{name: "auto is case-insensitive", value: "AUTO", want: "2026"},
		{name: "custom format", value: "auto:DD/MM/YYYY", want: "07/03/2026"},
		{name: "preset", value: "auto:long", want: "March 7, 2026"},
		{name: "preset case-insensitive", value: "auto:ISO", want: "2026-03-07"},
		{name: "empty format", value: "auto:", wantErr: ErrInvalidDateFormat},
		{name: "bad auto syntax", value: "automatic", wantErr: ErrInvalidDateFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Resolve(tt.value, now)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

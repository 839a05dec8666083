package legalsite

import (
	"fmt"
	"strings"
)

// DocType identifies one of the two legal documents.
type DocType int

// Document types, in processing order.
const (
	Privacy DocType = iota
	Terms
)

// DocTypes returns every document type in processing order.
func DocTypes() []DocType {
	return []DocType{Privacy, Terms}
}

// ParseDocType accepts "privacy" or "terms" (case-insensitive).
func ParseDocType(s string) (DocType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "privacy":
		return Privacy, nil
	case "terms":
		return Terms, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownDocType, s)
	}
}

// Valid reports whether d is a known document type.
func (d DocType) Valid() bool {
	return d == Privacy || d == Terms
}

// String returns the short name used in output file names.
func (d DocType) String() string {
	switch d {
	case Privacy:
		return "privacy"
	case Terms:
		return "terms"
	default:
		return fmt.Sprintf("DocType(%d)", int(d))
	}
}

// SourcePrefix is the file name prefix of the markdown source.
func (d DocType) SourcePrefix() string {
	switch d {
	case Privacy:
		return "privacy_policy"
	case Terms:
		return "terms_of_service"
	default:
		return ""
	}
}

// Title is the page title of the document.
func (d DocType) Title() string {
	switch d {
	case Privacy:
		return "Privacy Policy"
	case Terms:
		return "Terms of Service"
	default:
		return ""
	}
}

// Counterpart is the document the page links across to.
func (d DocType) Counterpart() DocType {
	if d == Privacy {
		return Terms
	}
	return Privacy
}

// CounterpartLabel is the text of the cross-document link.
func (d DocType) CounterpartLabel() string {
	return d.Counterpart().Title() + " →"
}

// SourceName returns "<prefix>_<lang>.md".
func (d DocType) SourceName(lang string) string {
	return d.SourcePrefix() + "_" + lang + ".md"
}

// OutputName returns "<doc>_<lang>.html".
func (d DocType) OutputName(lang string) string {
	return d.String() + "_" + lang + ".html"
}

// Language is one entry of the language table.
type Language struct {
	Code string
	Name string
	Flag string
	RTL  bool
}

// Languages is an ordered, immutable language table.
// Build it once with NewLanguages or DefaultLanguages and pass it around.
type Languages struct {
	entries []Language
	index   map[string]int
}

// NewLanguages builds a table from entries, keeping their order.
// Empty and duplicate codes are rejected.
func NewLanguages(entries ...Language) (*Languages, error) {
	if len(entries) == 0 {
		return nil, ErrNoLanguages
	}

	l := &Languages{
		entries: make([]Language, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		if e.Code == "" {
			return nil, fmt.Errorf("%w: entry %d", ErrEmptyLanguageCode, i)
		}
		if _, dup := l.index[e.Code]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLanguage, e.Code)
		}
		l.index[e.Code] = len(l.entries)
		l.entries = append(l.entries, e)
	}
	return l, nil
}

// DefaultLanguages returns the application's nine languages.
// Arabic and Hebrew are right-to-left.
func DefaultLanguages() *Languages {
	l, err := NewLanguages(
		Language{Code: "en", Name: "English", Flag: "🇬🇧"},
		Language{Code: "ru", Name: "Русский", Flag: "🇷🇺"},
		Language{Code: "de", Name: "Deutsch", Flag: "🇩🇪"},
		Language{Code: "es", Name: "Español", Flag: "🇪🇸"},
		Language{Code: "fr", Name: "Français", Flag: "🇫🇷"},
		Language{Code: "pt", Name: "Português", Flag: "🇵🇹"},
		Language{Code: "zh", Name: "中文", Flag: "🇨🇳"},
		Language{Code: "ar", Name: "العربية", Flag: "🇸🇦", RTL: true},
		Language{Code: "he", Name: "עברית", Flag: "🇮🇱", RTL: true},
	)
	if err != nil {
		panic("legalsite: default language table: " + err.Error())
	}
	return l
}

// All returns a copy of the entries in table order.
func (l *Languages) All() []Language {
	out := make([]Language, len(l.entries))
	copy(out, l.entries)
	return out
}

// Codes returns the language codes in table order.
func (l *Languages) Codes() []string {
	codes := make([]string, len(l.entries))
	for i, e := range l.entries {
		codes[i] = e.Code
	}
	return codes
}

// Len returns the number of languages.
func (l *Languages) Len() int {
	return len(l.entries)
}

// Lookup finds a language by code.
func (l *Languages) Lookup(code string) (Language, bool) {
	i, ok := l.index[code]
	if !ok {
		return Language{}, false
	}
	return l.entries[i], true
}

// Pair is one (language, document) unit of work.
type Pair struct {
	Language Language
	Doc      DocType
}

// SourceName is the markdown file name of the pair.
func (p Pair) SourceName() string {
	return p.Doc.SourceName(p.Language.Code)
}

// OutputName is the HTML file name of the pair.
func (p Pair) OutputName() string {
	return p.Doc.OutputName(p.Language.Code)
}

func (p Pair) String() string {
	return p.Doc.String() + "/" + p.Language.Code
}

// Pairs enumerates every pair: languages in table order, privacy before
// terms within a language.
func (l *Languages) Pairs() []Pair {
	docs := DocTypes()
	pairs := make([]Pair, 0, len(l.entries)*len(docs))
	for _, lang := range l.entries {
		for _, d := range docs {
			pairs = append(pairs, Pair{Language: lang, Doc: d})
		}
	}
	return pairs
}

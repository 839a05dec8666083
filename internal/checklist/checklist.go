// Package checklist reports which legal documents still need a professional
// translation, based on what exists in the source directory.
package checklist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	legalsite "github.com/alnah/go-legalsite"
	"github.com/alnah/go-legalsite/internal/fileutil"
)

// ErrUnknownReference indicates the reference language is not in the table.
var ErrUnknownReference = errors.New("reference language not in language table")

const rule = "============================================================"

// Params are the inputs of Build.
type Params struct {
	SourceDir         string
	ContactEmail      string
	ReferenceLanguage string
	Languages         *legalsite.Languages
	EffectiveDates    map[string]string
}

// Entry is one translated document.
type Entry struct {
	Language legalsite.Language
	Doc      legalsite.DocType
	File     string
}

// DatedLanguage pairs a language with its localized effective date.
type DatedLanguage struct {
	Code string
	Date string
}

// Checklist is the state of every translation.
type Checklist struct {
	SourceDir        string
	ContactEmail     string
	Reference        legalsite.Language
	Targets          []legalsite.Language
	Completed        []Entry
	Missing          []Entry
	ReferenceMissing []string
	EffectiveDates   []DatedLanguage
}

// Build inspects the source directory. Documents are listed terms first,
// then privacy, each in language table order.
func Build(p Params) (*Checklist, error) {
	ref, ok := p.Languages.Lookup(p.ReferenceLanguage)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownReference, p.ReferenceLanguage)
	}

	c := &Checklist{
		SourceDir:    p.SourceDir,
		ContactEmail: p.ContactEmail,
		Reference:    ref,
	}

	for _, lang := range p.Languages.All() {
		if lang.Code != ref.Code {
			c.Targets = append(c.Targets, lang)
		}
		if date, ok := p.EffectiveDates[lang.Code]; ok {
			c.EffectiveDates = append(c.EffectiveDates, DatedLanguage{Code: lang.Code, Date: date})
		}
	}

	for _, doc := range []legalsite.DocType{legalsite.Terms, legalsite.Privacy} {
		refFile := doc.SourceName(ref.Code)
		if !fileutil.FileExists(filepath.Join(p.SourceDir, refFile)) {
			c.ReferenceMissing = append(c.ReferenceMissing, refFile)
		}

		for _, lang := range c.Targets {
			e := Entry{Language: lang, Doc: doc, File: doc.SourceName(lang.Code)}
			if fileutil.FileExists(filepath.Join(p.SourceDir, e.File)) {
				c.Completed = append(c.Completed, e)
			} else {
				c.Missing = append(c.Missing, e)
			}
		}
	}

	return c, nil
}

// PendingCodes lists, in table order, the languages with a missing document.
func (c *Checklist) PendingCodes() []string {
	seen := make(map[string]bool)
	for _, e := range c.Missing {
		seen[e.Language.Code] = true
	}
	var codes []string
	for _, lang := range c.Targets {
		if seen[lang.Code] {
			codes = append(codes, lang.Code)
		}
	}
	return codes
}

// WriteHeader prints the banner and the translation notice.
func WriteHeader(w io.Writer, c *Checklist) {
	codes := make([]string, len(c.Targets))
	for i, l := range c.Targets {
		codes[i] = l.Code
	}

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "Legal Documents Translation Checklist")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "\nBase directory: %s\n", c.SourceDir)
	fmt.Fprintf(w, "Contact email: %s\n", c.ContactEmail)
	fmt.Fprintf(w, "\nLanguages to update: %s\n", strings.Join(codes, ", "))
	fmt.Fprintln(w, "\n"+rule)
	fmt.Fprintln(w, "\nIMPORTANT:")
	fmt.Fprintln(w, "Missing documents must be translated by professionals.")
	fmt.Fprintln(w, "For PRODUCTION use, please:")
	fmt.Fprintln(w, "1. Use professional translation services")
	fmt.Fprintln(w, "2. Have legal team review all translations")
	fmt.Fprintln(w, "3. Ensure GDPR/CCPA compliance in all languages")
	fmt.Fprintln(w, rule)
}

// Confirm asks "Continue? (yes/no): " and reports whether the answer was
// yes. End of input counts as no.
func Confirm(r io.Reader, w io.Writer) (bool, error) {
	fmt.Fprint(w, "\nContinue? (yes/no): ")

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("reading answer: %w", err)
	}
	return strings.EqualFold(strings.TrimSpace(line), "yes"), nil
}

// WriteReport prints the completed and missing documents, the effective
// dates and the recommendation block.
func WriteReport(w io.Writer, c *Checklist) {
	for _, f := range c.ReferenceMissing {
		fmt.Fprintf(w, "\n⚠️ Reference document missing: %s\n", f)
	}

	for _, e := range c.Completed {
		fmt.Fprintf(w, "\n✅ %s (%s) %s - COMPLETED\n", e.Language.Name, e.Language.Code, e.Doc.Title())
		fmt.Fprintf(w, "   %s\n", e.File)
	}

	if len(c.Missing) > 0 {
		fmt.Fprintln(w, "\nℹ️ Remaining files need professional translation:")
		for _, e := range c.Missing {
			fmt.Fprintf(w, "   - %s\n", e.File)
		}
	} else {
		fmt.Fprintln(w, "\n✅ All translations are present.")
	}

	if len(c.EffectiveDates) > 0 {
		fmt.Fprintln(w, "\nEffective dates:")
		for _, d := range c.EffectiveDates {
			fmt.Fprintf(w, "   %s: %s\n", d.Code, d.Date)
		}
	}

	fmt.Fprintln(w, "\n"+rule)
	fmt.Fprintln(w, "RECOMMENDATION:")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "1. Send %s to professional translator\n", legalsite.Terms.SourceName(c.Reference.Code))
	fmt.Fprintf(w, "2. Send %s to professional translator\n", legalsite.Privacy.SourceName(c.Reference.Code))
	if pending := c.PendingCodes(); len(pending) > 0 {
		fmt.Fprintf(w, "3. Request translations for: %s\n", strings.Join(pending, ", "))
	} else {
		fmt.Fprintln(w, "3. Re-check translations whenever the reference documents change")
	}
	fmt.Fprintln(w, "4. Ensure legal compliance in each jurisdiction")
	fmt.Fprintln(w, "5. Use native speakers for final review")
	fmt.Fprintln(w, "\n"+rule)
}

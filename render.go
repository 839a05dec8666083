package legalsite

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/alnah/go-legalsite/internal/dateutil"
)

// Default site settings.
const (
	DefaultSiteName  = "Lifeline"
	DefaultHome      = "index.html"
	DefaultCopyright = "2025"
)

// Site holds the values shared by every page.
type Site struct {
	Name      string
	Home      string // target of the "Back to Home" links
	Copyright string // literal year, or "auto" / "auto:FORMAT"
}

// RendererConfig configures a PageRenderer. Zero fields take defaults.
type RendererConfig struct {
	Languages *Languages
	Site      Site
	Loader    AssetLoader
	Template  string
	Style     string
	Now       func() time.Time
}

// PageRenderer wraps fragments into complete HTML pages.
type PageRenderer struct {
	tmpl      *template.Template
	style     template.CSS
	site      Site
	languages *Languages
}

// pageData is the data passed to the page template.
type pageData struct {
	Lang       string
	RTL        bool
	Title      string
	SiteName   string
	Style      template.CSS
	Home       string
	OtherLink  string
	OtherLabel string
	Content    template.HTML
	Copyright  string
}

// NewPageRenderer loads the template and stylesheet and resolves the
// copyright value once.
func NewPageRenderer(cfg RendererConfig) (*PageRenderer, error) {
	if cfg.Languages == nil {
		cfg.Languages = DefaultLanguages()
	}
	if cfg.Loader == nil {
		loader, err := NewAssetLoader("")
		if err != nil {
			return nil, err
		}
		cfg.Loader = loader
	}
	if cfg.Template == "" {
		cfg.Template = DefaultTemplate
	}
	if cfg.Style == "" {
		cfg.Style = DefaultStyle
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	site := withSiteDefaults(cfg.Site)

	copyright, err := dateutil.Resolve(site.Copyright, cfg.Now())
	if err != nil {
		return nil, fmt.Errorf("resolving copyright: %w", err)
	}
	site.Copyright = copyright

	tmplContent, err := cfg.Loader.LoadTemplate(cfg.Template)
	if err != nil {
		return nil, fmt.Errorf("loading page template: %w", err)
	}
	tmpl, err := template.New(cfg.Template).Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing template %q: %v", ErrRender, cfg.Template, err)
	}

	css, err := cfg.Loader.LoadStyle(cfg.Style)
	if err != nil {
		return nil, fmt.Errorf("loading stylesheet: %w", err)
	}

	return &PageRenderer{
		tmpl:      tmpl,
		style:     template.CSS(css), // #nosec G203 -- stylesheet comes from trusted assets
		site:      site,
		languages: cfg.Languages,
	}, nil
}

func withSiteDefaults(s Site) Site {
	if s.Name == "" {
		s.Name = DefaultSiteName
	}
	if s.Home == "" {
		s.Home = DefaultHome
	}
	if s.Copyright == "" {
		s.Copyright = DefaultCopyright
	}
	return s
}

// Site returns the settings with defaults applied and copyright resolved.
func (r *PageRenderer) Site() Site {
	return r.site
}

// Render produces the page for one language and document.
// The fragment is inserted verbatim.
func (r *PageRenderer) Render(fragment, langCode string, doc DocType) (string, error) {
	lang, ok := r.languages.Lookup(langCode)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, langCode)
	}
	if !doc.Valid() {
		return "", fmt.Errorf("%w: %s", ErrUnknownDocType, doc)
	}

	data := pageData{
		Lang:       lang.Code,
		RTL:        lang.RTL,
		Title:      doc.Title(),
		SiteName:   r.site.Name,
		Style:      r.style,
		Home:       r.site.Home,
		OtherLink:  doc.Counterpart().OutputName(lang.Code),
		OtherLabel: doc.CounterpartLabel(),
		Content:    template.HTML(fragment), // #nosec G203 -- fragments are not sanitized
		Copyright:  r.site.Copyright,
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRender, err)
	}
	return buf.String(), nil
}

package legalsite

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/alnah/go-legalsite/internal/fileutil"
	"github.com/alnah/go-legalsite/internal/pipeline"
)

// Default directories, relative to the app repository root.
const (
	DefaultSourceDir = "assets/legal"
	DefaultOutputDir = "public"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.FragmentConverter = (*pipeline.LineConverter)(nil)
	_ pipeline.FragmentConverter = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.InlineTransformer = pipeline.SpanTransformer{}
	_ pipeline.BlockAssembler    = pipeline.ListAssembler{}
	_ AssetLoader                = (*assetLoaderAdapter)(nil)
)

// Status is the outcome of one pair.
type Status int

// Pair outcomes.
const (
	StatusGenerated Status = iota
	StatusSkipped
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusGenerated:
		return "generated"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// PairResult records what happened to one pair.
type PairResult struct {
	Pair       Pair
	SourcePath string
	OutputPath string
	Status     Status
	Encoding   string // encoding that decoded the source, if any
	Err        error  // set for skipped and failed pairs
	Duration   time.Duration
}

// Summary counts pair outcomes.
type Summary struct {
	Generated int
	Skipped   int
	Failed    int
}

// Total returns the number of pairs processed.
func (s Summary) Total() int {
	return s.Generated + s.Skipped + s.Failed
}

// Report holds one result per pair, in enumeration order.
type Report struct {
	OutputDir string
	Results   []PairResult
}

// Summary tallies the results.
func (r *Report) Summary() Summary {
	var s Summary
	for _, res := range r.Results {
		switch res.Status {
		case StatusGenerated:
			s.Generated++
		case StatusSkipped:
			s.Skipped++
		case StatusFailed:
			s.Failed++
		}
	}
	return s
}

// HasFailures reports whether any pair failed. Skips do not count.
func (r *Report) HasFailures() bool {
	return r.Summary().Failed > 0
}

// EventKind distinguishes progress events.
type EventKind int

// Progress events.
const (
	EventLanguageStart EventKind = iota
	EventPairDone
)

// Event is delivered to the progress callback.
type Event struct {
	Kind     EventKind
	Language Language
	Result   *PairResult // set for EventPairDone
}

// ProgressFunc receives progress events synchronously.
type ProgressFunc func(Event)

// Option configures a Generator.
type Option func(*Generator)

// Generator renders every (language, document) pair of a source directory
// into an output directory.
type Generator struct {
	sourceDir string
	outputDir string
	languages *Languages
	decoder   *DecoderChain
	converter pipeline.FragmentConverter
	renderer  *PageRenderer
	progress  ProgressFunc
	engine    string
	site      Site
	loader    AssetLoader
	template  string
	style     string
	now       func() time.Time
}

// WithLanguages sets the language table.
func WithLanguages(l *Languages) Option {
	return func(g *Generator) {
		g.languages = l
	}
}

// WithDecoderChain sets the encodings tried for each source.
func WithDecoderChain(c *DecoderChain) Option {
	return func(g *Generator) {
		g.decoder = c
	}
}

// WithEngine selects the fragment engine by name ("lines" or "goldmark").
func WithEngine(name string) Option {
	return func(g *Generator) {
		g.engine = name
	}
}

// WithFragmentConverter sets the fragment converter directly.
// It takes precedence over WithEngine.
func WithFragmentConverter(c pipeline.FragmentConverter) Option {
	return func(g *Generator) {
		g.converter = c
	}
}

// WithRenderer sets a prebuilt page renderer. Site, asset and clock options
// are ignored when a renderer is given.
func WithRenderer(r *PageRenderer) Option {
	return func(g *Generator) {
		g.renderer = r
	}
}

// WithSite sets the site settings used by the default renderer.
func WithSite(s Site) Option {
	return func(g *Generator) {
		g.site = s
	}
}

// WithAssetLoader sets the loader used for the template and stylesheet.
func WithAssetLoader(l AssetLoader) Option {
	return func(g *Generator) {
		g.loader = l
	}
}

// WithTemplate selects the page template by name.
func WithTemplate(name string) Option {
	return func(g *Generator) {
		g.template = name
	}
}

// WithStyle selects the stylesheet by name.
func WithStyle(name string) Option {
	return func(g *Generator) {
		g.style = name
	}
}

// WithClock sets the time source used to resolve "auto" copyright values.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// WithProgress registers a callback invoked when a language starts and
// after each pair.
func WithProgress(fn ProgressFunc) Option {
	return func(g *Generator) {
		g.progress = fn
	}
}

// NewGenerator creates a Generator reading from sourceDir and writing to
// outputDir. Empty directories take DefaultSourceDir and DefaultOutputDir.
func NewGenerator(sourceDir, outputDir string, opts ...Option) (*Generator, error) {
	if sourceDir == "" {
		sourceDir = DefaultSourceDir
	}
	if outputDir == "" {
		outputDir = DefaultOutputDir
	}

	g := &Generator{
		sourceDir: sourceDir,
		outputDir: outputDir,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.languages == nil {
		g.languages = DefaultLanguages()
	}
	if g.decoder == nil {
		g.decoder = DefaultDecoderChain()
	}
	if g.converter == nil {
		conv, err := pipeline.NewFragmentConverter(g.engine)
		if err != nil {
			return nil, err
		}
		g.converter = conv
	}
	if g.renderer == nil {
		r, err := NewPageRenderer(RendererConfig{
			Languages: g.languages,
			Site:      g.site,
			Loader:    g.loader,
			Template:  g.template,
			Style:     g.style,
			Now:       g.now,
		})
		if err != nil {
			return nil, err
		}
		g.renderer = r
	}

	return g, nil
}

// Languages returns the language table in use.
func (g *Generator) Languages() *Languages {
	return g.languages
}

// Generate processes every pair. Missing sources are skipped and per-pair
// failures are recorded; neither stops the run. Only an unusable output
// directory or a canceled context ends it early, and the partial report is
// returned alongside the error.
func (g *Generator) Generate(ctx context.Context) (*Report, error) {
	report := &Report{OutputDir: g.outputDir}

	if err := fileutil.EnsureDir(g.outputDir); err != nil {
		return report, fmt.Errorf("%w: %s: %v", ErrOutputDir, g.outputDir, err)
	}

	for _, lang := range g.languages.All() {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		g.emit(Event{Kind: EventLanguageStart, Language: lang})

		for _, doc := range DocTypes() {
			if err := ctx.Err(); err != nil {
				return report, err
			}
			res := g.GeneratePair(ctx, Pair{Language: lang, Doc: doc})
			report.Results = append(report.Results, res)
			g.emit(Event{Kind: EventPairDone, Language: lang, Result: &report.Results[len(report.Results)-1]})
		}
	}

	return report, nil
}

// GeneratePair reads, converts, renders and writes one pair.
// The output directory must already exist.
func (g *Generator) GeneratePair(ctx context.Context, pair Pair) PairResult {
	start := time.Now()
	res := PairResult{
		Pair:       pair,
		SourcePath: filepath.Join(g.sourceDir, pair.SourceName()),
		OutputPath: filepath.Join(g.outputDir, pair.OutputName()),
	}

	err := g.generate(ctx, &res)
	res.Duration = time.Since(start)

	switch {
	case err == nil:
		res.Status = StatusGenerated
	case errors.Is(err, ErrMissingInput):
		res.Status = StatusSkipped
		res.Err = err
	default:
		res.Status = StatusFailed
		res.Err = err
	}
	return res
}

func (g *Generator) generate(ctx context.Context, res *PairResult) error {
	data, err := os.ReadFile(res.SourcePath) // #nosec G304 -- path built from configured dir and language table
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrMissingInput, res.SourcePath)
		}
		return fmt.Errorf("%w: %v", ErrReadInput, err)
	}

	text, enc, err := g.decoder.Decode(data)
	if err != nil {
		var decErr *DecodeError
		if errors.As(err, &decErr) {
			decErr.Path = res.SourcePath
		}
		return err
	}
	res.Encoding = enc

	fragment, err := g.converter.ToFragment(ctx, text)
	if err != nil {
		return err
	}

	page, err := g.renderer.Render(fragment, res.Pair.Language.Code, res.Pair.Doc)
	if err != nil {
		return err
	}

	if err := fileutil.WriteFileAtomic(res.OutputPath, []byte(page), fileutil.FilePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

func (g *Generator) emit(e Event) {
	if g.progress != nil {
		g.progress(e)
	}
}

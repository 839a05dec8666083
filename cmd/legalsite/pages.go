package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	legalsite "github.com/alnah/go-legalsite"
	"github.com/alnah/go-legalsite/internal/config"
	"github.com/alnah/go-legalsite/internal/hints"
	"github.com/alnah/go-legalsite/internal/yamlutil"
)

const banner = "============================================================"

// runPages generates every page and prints the per-language report.
func runPages(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parsePagesFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: unexpected argument %q", ErrInvalidFlags, positional[0])
	}

	cfg, err := loadConfig(flags.common.config, env)
	if err != nil {
		return err
	}
	mergePagesFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	if flags.print {
		out, err := yamlutil.Encode(cfg)
		if err != nil {
			return err
		}
		_, err = env.Stdout.Write(out)
		return err
	}

	gen, err := newGenerator(cfg, env, newPagePrinter(env.Stdout, flags.common))
	if err != nil {
		return err
	}

	if !flags.common.quiet {
		fmt.Fprintln(env.Stdout, banner)
		fmt.Fprintln(env.Stdout, "Generating HTML pages from markdown documents")
		fmt.Fprintln(env.Stdout, banner)
	}

	report, err := gen.Generate(ctx)
	if err != nil {
		return err
	}

	printPagesSummary(env.Stdout, report, cfg.Input.Dir)

	if flags.strict && report.HasFailures() {
		return fmt.Errorf("%w: %d of %d", ErrPagesFailed, report.Summary().Failed, report.Summary().Total())
	}
	return nil
}

// mergePagesFlags applies CLI flags over the config (CLI wins).
func mergePagesFlags(f *pagesFlags, cfg *config.Config) {
	setIfNotEmpty(&cfg.Input.Dir, f.input)
	setIfNotEmpty(&cfg.Output.Dir, f.output)
	setIfNotEmpty(&cfg.Markdown.Engine, f.engine)
	setIfNotEmpty(&cfg.Assets.Template, f.assets.template)
	setIfNotEmpty(&cfg.Assets.Style, f.assets.style)
	setIfNotEmpty(&cfg.Assets.BasePath, f.assets.assetPath)
}

func setIfNotEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// languagesFromConfig builds the immutable language table.
func languagesFromConfig(entries []config.LanguageConfig) (*legalsite.Languages, error) {
	langs := make([]legalsite.Language, len(entries))
	for i, e := range entries {
		langs[i] = legalsite.Language{Code: e.Code, Name: e.Name, Flag: e.Flag, RTL: e.RTL}
	}
	return legalsite.NewLanguages(langs...)
}

// newGenerator wires the config into a Generator.
func newGenerator(cfg *config.Config, env *Environment, progress legalsite.ProgressFunc) (*legalsite.Generator, error) {
	langs, err := languagesFromConfig(cfg.Languages)
	if err != nil {
		return nil, err
	}

	decoder, err := legalsite.NewDecoderChain(cfg.Encodings...)
	if err != nil {
		return nil, err
	}

	loader, err := legalsite.NewAssetLoader(cfg.Assets.BasePath)
	if err != nil {
		return nil, err
	}

	return legalsite.NewGenerator(cfg.Input.Dir, cfg.Output.Dir,
		legalsite.WithLanguages(langs),
		legalsite.WithDecoderChain(decoder),
		legalsite.WithEngine(cfg.Markdown.Engine),
		legalsite.WithAssetLoader(loader),
		legalsite.WithTemplate(cfg.Assets.Template),
		legalsite.WithStyle(cfg.Assets.Style),
		legalsite.WithSite(legalsite.Site{
			Name:      cfg.Site.Name,
			Home:      cfg.Site.Home,
			Copyright: cfg.Site.Copyright,
		}),
		legalsite.WithClock(env.Now),
		legalsite.WithProgress(progress),
	)
}

// newPagePrinter prints one header per language and one line per pair.
// Failures are printed even in quiet mode.
func newPagePrinter(w io.Writer, f commonFlags) legalsite.ProgressFunc {
	return func(e legalsite.Event) {
		switch e.Kind {
		case legalsite.EventLanguageStart:
			if !f.quiet {
				fmt.Fprintf(w, "\n%s %s (%s):\n", e.Language.Flag, e.Language.Name, e.Language.Code)
			}
		case legalsite.EventPairDone:
			printPairResult(w, e.Result, f)
		}
	}
}

func printPairResult(w io.Writer, res *legalsite.PairResult, f commonFlags) {
	switch res.Status {
	case legalsite.StatusGenerated:
		if f.quiet {
			return
		}
		if f.verbose {
			fmt.Fprintf(w, "✅ Generated: %s (%s, %v)\n", res.OutputPath, res.Encoding, res.Duration.Round(time.Microsecond))
			return
		}
		fmt.Fprintf(w, "✅ Generated: %s\n", res.OutputPath)
	case legalsite.StatusSkipped:
		if !f.quiet {
			fmt.Fprintf(w, "   ⚠️ Missing: %s\n", res.SourcePath)
		}
	case legalsite.StatusFailed:
		fmt.Fprintf(w, "   ❌ Failed: %s: %v%s\n", res.SourcePath, res.Err, failureHint(res.Err))
	}
}

func failureHint(err error) string {
	var decErr *legalsite.DecodeError
	if errors.As(err, &decErr) {
		return hints.ForDecode(decErr.Tried)
	}
	return ""
}

// printPagesSummary prints the closing block with the counts.
func printPagesSummary(w io.Writer, report *legalsite.Report, sourceDir string) {
	sum := report.Summary()

	fmt.Fprintln(w, "\n"+banner)
	switch {
	case sum.Generated == 0 && sum.Failed == 0:
		fmt.Fprintf(w, "⚠️ No pages generated%s\n", hints.ForMissingSources(sourceDir))
	case sum.Failed > 0:
		fmt.Fprintln(w, "⚠️ HTML generation finished with failures")
	default:
		fmt.Fprintln(w, "✅ HTML generation complete!")
	}
	fmt.Fprintf(w, "Generated: %d, Missing: %d, Failed: %d\n", sum.Generated, sum.Skipped, sum.Failed)
	fmt.Fprintf(w, "Output directory: %s\n", report.OutputDir)
	if sum.Generated > 0 {
		fmt.Fprintln(w, "\nNext step: Deploy to Firebase Hosting")
		fmt.Fprintln(w, "Run: firebase deploy --only hosting")
	}
	fmt.Fprintln(w, banner)
}

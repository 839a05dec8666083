// Package legalsite renders a mobile app's legal documents (privacy policy
// and terms of service) from per-language markdown sources into static
// HTML pages.
//
// # Quick Start
//
// Create a generator and run it over the source directory:
//
//	gen, err := legalsite.NewGenerator("assets/legal", "public")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	report, err := gen.Generate(ctx)
//	if err != nil {
//	    log.Fatal(err) // output directory unusable or context canceled
//	}
//	fmt.Printf("%+v\n", report.Summary())
//
// Every (language, document) pair yields one PairResult. A missing source is
// skipped, a source that cannot be decoded or written is marked failed, and
// the batch always continues with the next pair.
//
// # Conversion Pipeline
//
// Each pair goes through these stages:
//
//  1. Decoding through an ordered DecoderChain (utf-8, windows-1252,
//     iso-8859-1, gbk by default)
//  2. Line classification, inline span rewriting and block assembly into an
//     HTML fragment (or Goldmark, with WithEngine("goldmark"))
//  3. Page rendering with the embedded page template and stylesheet
//  4. Atomic write to <outputDir>/<doc>_<lang>.html
//
// # Configuration
//
// Use functional options to customize the generator:
//
//	gen, err := legalsite.NewGenerator("legal", "web",
//	    legalsite.WithSite(legalsite.Site{Name: "Acme", Copyright: "auto"}),
//	    legalsite.WithLanguages(langs),
//	    legalsite.WithProgress(func(e legalsite.Event) { ... }),
//	)
//
// Templates and stylesheets are loaded through an AssetLoader. NewAssetLoader
// returns one that reads templates/<name>.html and styles/<name>.css from a
// directory and falls back to the embedded defaults.
package legalsite

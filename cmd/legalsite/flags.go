package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// assetFlags holds template and stylesheet flags.
type assetFlags struct {
	template  string
	style     string
	assetPath string
}

// pagesFlags holds all flags for the pages command.
type pagesFlags struct {
	common commonFlags
	input  string
	output string
	engine string
	strict bool
	print  bool
	assets assetFlags
}

// checklistFlags holds all flags for the checklist command.
type checklistFlags struct {
	common commonFlags
	input  string
	yes    bool
}

// migrateFlags holds all flags for the migrate-logger command.
type migrateFlags struct {
	common commonFlags
	tag    string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors and the summary")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show encodings and timing")
}

// addAssetFlags adds asset-related flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.template, "template", "", "page template name")
	fs.StringVar(&f.style, "style", "", "stylesheet name")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
}

// newFlagSet creates a silent FlagSet; errors are reported by runMain.
func newFlagSet(name string, usage func(io.Writer), w io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() { usage(w) }
	return fs
}

// parseFlagSet parses args and wraps errors as usage errors.
// It returns errHelpShown when -h/--help was given (pflag prints the usage).
func parseFlagSet(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return errHelpShown
		}
		return fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}
	return nil
}

// parsePagesFlags parses pages command flags.
func parsePagesFlags(args []string, w io.Writer) (*pagesFlags, []string, error) {
	f := &pagesFlags{}
	fs := newFlagSet("pages", printPagesUsage, w)

	fs.StringVarP(&f.input, "input", "i", "", "markdown source directory")
	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.StringVarP(&f.engine, "engine", "e", "", "markdown engine: lines, goldmark")
	fs.BoolVar(&f.strict, "strict", false, "exit 1 when any page failed")
	fs.BoolVar(&f.print, "print-config", false, "print the effective config as YAML and exit")
	addCommonFlags(fs, &f.common)
	addAssetFlags(fs, &f.assets)

	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseChecklistFlags parses checklist command flags.
func parseChecklistFlags(args []string, w io.Writer) (*checklistFlags, []string, error) {
	f := &checklistFlags{}
	fs := newFlagSet("checklist", printChecklistUsage, w)

	fs.StringVarP(&f.input, "input", "i", "", "markdown source directory")
	fs.BoolVarP(&f.yes, "yes", "y", false, "skip the confirmation prompt")
	addCommonFlags(fs, &f.common)

	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseMigrateFlags parses migrate-logger command flags.
func parseMigrateFlags(args []string, w io.Writer) (*migrateFlags, []string, error) {
	f := &migrateFlags{}
	fs := newFlagSet("migrate-logger", printMigrateUsage, w)

	fs.StringVarP(&f.tag, "tag", "t", "", "SafeLogger tag (default SERVICE_NAME)")
	addCommonFlags(fs, &f.common)

	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// hasVerboseFlag reports whether -v or --verbose appears in args.
// Used before the command is parsed.
func hasVerboseFlag(args []string) bool {
	for _, a := range args[1:] {
		if a == "--" {
			return false
		}
		if a == "--verbose" || a == "-v" {
			return true
		}
	}
	return false
}

package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	legalsite "github.com/alnah/go-legalsite"
	"github.com/alnah/go-legalsite/internal/hints"
	"github.com/alnah/go-legalsite/internal/logmigrate"
)

// Sentinel errors for CLI operations.
var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrInvalidFlags   = errors.New("invalid flags")
	ErrPagesFailed    = errors.New("some pages failed")
)

// errHelpShown signals that usage was printed for -h/--help.
var errHelpShown = errors.New("help shown")

// Command names.
const (
	cmdPages     = "pages"
	cmdChecklist = "checklist"
	cmdMigrate   = "migrate-logger"
	cmdVersion   = "version"
	cmdHelp      = "help"
)

// isCommand reports whether arg names a subcommand.
func isCommand(arg string) bool {
	switch arg {
	case cmdPages, cmdChecklist, cmdMigrate, cmdVersion, cmdHelp:
		return true
	default:
		return false
	}
}

// runMain dispatches args (os.Args layout) and returns the exit code.
// Without a command, or with only flags, it runs the pages command.
func runMain(args []string, env *Environment) int {
	ctx, stop := notifyContext(context.Background())
	defer stop()

	cmd, rest := cmdPages, []string(nil)
	if len(args) > 1 {
		switch {
		case isCommand(args[1]):
			cmd, rest = args[1], args[2:]
		case args[1] == "-h" || args[1] == "--help":
			cmd = cmdHelp
		case strings.HasPrefix(args[1], "-"):
			rest = args[1:]
		default:
			printUsage(env.Stderr)
			return report(env, fmt.Errorf("%w: %s", ErrUnknownCommand, args[1]))
		}
	}

	var err error
	switch cmd {
	case cmdPages:
		err = runPages(ctx, rest, env)
	case cmdChecklist:
		err = runChecklist(rest, env)
	case cmdMigrate:
		err = runMigrate(rest, env)
	case cmdVersion:
		fmt.Fprintf(env.Stdout, "legalsite %s\n", Version)
	case cmdHelp:
		err = runHelp(rest, env)
	}

	if errors.Is(err, errHelpShown) {
		return ExitSuccess
	}
	return report(env, err)
}

// report prints err with its hint and maps it to an exit code.
func report(env *Environment, err error) int {
	if err == nil {
		return ExitSuccess
	}
	fmt.Fprintf(env.Stderr, "Error: %v%s\n", err, hintFor(err))
	return exitCodeFor(err)
}

// hintFor returns an actionable hint for well-known errors.
func hintFor(err error) string {
	switch {
	case errors.Is(err, legalsite.ErrOutputDir):
		return hints.ForOutputDirectory()
	case errors.Is(err, legalsite.ErrUnknownEncoding):
		return hints.ForUnknownEncoding(legalsite.KnownEncodings())
	case errors.Is(err, legalsite.ErrTemplateNotFound),
		errors.Is(err, legalsite.ErrStyleNotFound),
		errors.Is(err, legalsite.ErrInvalidAssetPath),
		errors.Is(err, legalsite.ErrRender):
		return hints.ForTemplate()
	case errors.Is(err, logmigrate.ErrNoSource),
		errors.Is(err, logmigrate.ErrSourceNotFound),
		errors.Is(err, logmigrate.ErrNotDartFile):
		return hints.ForMigrateInput()
	default:
		return ""
	}
}

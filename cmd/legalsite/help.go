package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: legalsite [command] [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  pages            Generate HTML pages from the legal markdown (default)")
	fmt.Fprintln(w, "  checklist        Show which translations are still missing")
	fmt.Fprintln(w, "  migrate-logger   Rewrite debugPrint/print calls in a Dart file to SafeLogger")
	fmt.Fprintln(w, "  version          Show version information")
	fmt.Fprintln(w, "  help             Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'legalsite help <command>' for details on a specific command.")
}

// printPagesUsage prints usage for the pages command.
func printPagesUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: legalsite pages [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render privacy_policy_<lang>.md and terms_of_service_<lang>.md into")
	fmt.Fprintln(w, "privacy_<lang>.html and terms_<lang>.html for every configured language.")
	fmt.Fprintln(w, "Missing sources are skipped; the command exits 0 unless --strict is set")
	fmt.Fprintln(w, "and a page failed.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -i, --input <dir>         Markdown source directory (default assets/legal)")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default public)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -e, --engine <s>          Markdown engine: lines (default), goldmark")
	fmt.Fprintln(w, "      --strict              Exit 1 when any page failed")
	fmt.Fprintln(w, "      --print-config        Print the effective config as YAML and exit")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Assets:")
	fmt.Fprintln(w, "      --template <name>     Page template name (default page)")
	fmt.Fprintln(w, "      --style <name>        Stylesheet name (default legal)")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory with templates/ and styles/ overrides")
	fmt.Fprintln(w)
	printOutputControl(w)
}

// printChecklistUsage prints usage for the checklist command.
func printChecklistUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: legalsite checklist [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List the legal documents that still need a professional translation.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -i, --input <dir>         Markdown source directory (default assets/legal)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -y, --yes                 Skip the confirmation prompt")
	fmt.Fprintln(w)
	printOutputControl(w)
}

// printMigrateUsage prints usage for the migrate-logger command.
func printMigrateUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: legalsite migrate-logger [flags] <file.dart>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rewrite debugPrint and print calls to SafeLogger.debug, add the")
	fmt.Fprintln(w, "safe_logger import and drop kDebugMode imports that became unused.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -t, --tag <s>             Logger tag (default SERVICE_NAME)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	printOutputControl(w)
}

func printOutputControl(w io.Writer) {
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors and the summary")
	fmt.Fprintln(w, "  -v, --verbose             Show encodings and timing")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return nil
	}

	switch args[0] {
	case cmdPages:
		printPagesUsage(env.Stdout)
	case cmdChecklist:
		printChecklistUsage(env.Stdout)
	case cmdMigrate:
		printMigrateUsage(env.Stdout)
	case cmdVersion:
		fmt.Fprintln(env.Stdout, "Usage: legalsite version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case cmdHelp:
		fmt.Fprintln(env.Stdout, "Usage: legalsite help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
	return nil
}

// Package logmigrate rewrites debugPrint and print calls in Dart sources to
// SafeLogger.debug. Each rewrite is a pure text function; Migrate runs them
// in a fixed order.
package logmigrate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/alnah/go-legalsite/internal/fileutil"
)

// Sentinel errors for migration input.
var (
	ErrNoSource       = errors.New("no source file given")
	ErrSourceNotFound = errors.New("source file does not exist")
	ErrNotDartFile    = errors.New("not a Dart file")
	ErrReadSource     = errors.New("failed to read source file")
	ErrWriteSource    = errors.New("failed to write source file")
)

// DefaultTag is the placeholder tag developers replace by hand.
const DefaultTag = "SERVICE_NAME"

var (
	wrappedBlockRe  = regexp2.MustCompile(`if\s*\(kDebugMode\)\s*\{\s*debugPrint\(([^)]+)\);\s*\}`, regexp2.None)
	wrappedInlineRe = regexp2.MustCompile(`if\s*\(kDebugMode\)\s+debugPrint\(([^)]+)\);`, regexp2.None)
	debugPrintRe    = regexp2.MustCompile(`(?<!SafeLogger\.)debugPrint\(([^)]+)\);`, regexp2.None)
	printRe         = regexp2.MustCompile(`(?<!Safe)(?<!debug)print\(([^)]+)\);`, regexp2.None)
)

// Rule is one rewrite step.
type Rule struct {
	Apply   func(text, tag string) (string, int)
	Message string // formatted with the substitution count
}

// Rules returns the call rewrites in application order.
func Rules() []Rule {
	return []Rule{
		{ReplaceWrappedBlock, "Replaced %d kDebugMode wrapped debugPrint statements"},
		{ReplaceWrappedInline, "Replaced %d inline kDebugMode debugPrint statements"},
		{ReplaceDebugPrint, "Replaced %d standalone debugPrint statements"},
		{ReplacePrint, "Replaced %d print statements"},
	}
}

// ReplaceWrappedBlock rewrites `if (kDebugMode) { debugPrint(x); }`.
func ReplaceWrappedBlock(text, tag string) (string, int) {
	return replaceAll(wrappedBlockRe, text, tag)
}

// ReplaceWrappedInline rewrites `if (kDebugMode) debugPrint(x);`.
func ReplaceWrappedInline(text, tag string) (string, int) {
	return replaceAll(wrappedInlineRe, text, tag)
}

// ReplaceDebugPrint rewrites a bare `debugPrint(x);`.
func ReplaceDebugPrint(text, tag string) (string, int) {
	return replaceAll(debugPrintRe, text, tag)
}

// ReplacePrint rewrites `print(x);` unless it is part of debugPrint or a
// SafeLogger call.
func ReplacePrint(text, tag string) (string, int) {
	return replaceAll(printRe, text, tag)
}

// replaceAll substitutes every match with SafeLogger.debug(<arg>, tag: '<tag>');
func replaceAll(re *regexp2.Regexp, text, tag string) (string, int) {
	n := countMatches(re, text)
	if n == 0 {
		return text, 0
	}

	repl := "SafeLogger.debug($1, tag: '" + strings.ReplaceAll(tag, "$", "$$") + "');"
	out, err := re.Replace(text, repl, -1, -1)
	if err != nil {
		return text, 0
	}
	return out, n
}

func countMatches(re *regexp2.Regexp, text string) int {
	n := 0
	m, err := re.FindStringMatch(text)
	for err == nil && m != nil {
		n++
		m, err = re.FindNextMatch(m)
	}
	return n
}

var (
	importRe         = regexp2.MustCompile(`import\s+['"].*?['"];`, regexp2.None)
	safeLoggerImpRe  = regexp2.MustCompile(`import\s+['"][^'"]*utils/safe_logger\.dart['"]`, regexp2.None)
	kDebugModeRe     = regexp2.MustCompile(`\bkDebugMode\b`, regexp2.None)
	kDebugImportRe   = regexp2.MustCompile(`import.*kDebugMode`, regexp2.None)
	kDebugShowItemRe = regexp2.MustCompile(`,?\s*kDebugMode`, regexp2.None)
	showCommaRe      = regexp2.MustCompile(`show\s*,\s*`, regexp2.None)
	emptyShowRe      = regexp2.MustCompile(`\s+show\s*;`, regexp2.None)
)

// ImportPrefix returns the relative prefix from path to lib/, one "../" per
// directory between lib/ and the file. Paths without a lib directory count
// the directories below the first path element, less one.
func ImportPrefix(path string) string {
	parts := strings.Split(filepath.ToSlash(filepath.Clean(path)), "/")

	depth := -1
	for i := len(parts) - 2; i >= 0; i-- {
		if parts[i] == "lib" {
			depth = len(parts) - i - 2
			break
		}
	}
	if depth < 0 {
		depth = len(parts) - 3
	}
	if depth < 0 {
		depth = 0
	}
	return strings.Repeat("../", depth)
}

// AddImport inserts the SafeLogger import after the last import statement.
// Nothing happens when the import already exists or the file has no imports.
func AddImport(path, text string) (string, bool) {
	if ok, _ := safeLoggerImpRe.MatchString(text); ok {
		return text, false
	}

	var last *regexp2.Match
	m, err := importRe.FindStringMatch(text)
	for err == nil && m != nil {
		last = m
		m, err = importRe.FindNextMatch(m)
	}
	if last == nil {
		return text, false
	}

	// regexp2 reports positions in runes.
	runes := []rune(text)
	end := last.Index + last.Length
	line := "\nimport '" + ImportPrefix(path) + "utils/safe_logger.dart';"
	return string(runes[:end]) + line + string(runes[end:]), true
}

// RemoveUnusedKDebugMode drops kDebugMode from import show clauses when the
// imports are its only remaining uses.
func RemoveUnusedKDebugMode(text string) (string, bool) {
	uses := countMatches(kDebugModeRe, text)
	if uses == 0 || uses != countMatches(kDebugImportRe, text) {
		return text, false
	}

	lines := strings.Split(text, "\n")
	for i, l := range lines {
		if !strings.HasPrefix(strings.TrimSpace(l), "import") {
			continue
		}
		lines[i] = replaceString(kDebugShowItemRe, l, "")
		lines[i] = replaceString(showCommaRe, lines[i], "show ")
		lines[i] = replaceString(emptyShowRe, lines[i], ";")
	}
	return strings.Join(lines, "\n"), true
}

func replaceString(re *regexp2.Regexp, text, repl string) string {
	out, err := re.Replace(text, repl, -1, -1)
	if err != nil {
		return text
	}
	return out
}

// Migrate applies every rule to text and returns the new text with one
// human-readable line per change.
func Migrate(path, text, tag string) (string, []string) {
	if tag == "" {
		tag = DefaultTag
	}

	var changes []string
	for _, r := range Rules() {
		var n int
		text, n = r.Apply(text, tag)
		if n > 0 {
			changes = append(changes, fmt.Sprintf(r.Message, n))
		}
	}

	if len(changes) > 0 {
		var added bool
		if text, added = AddImport(path, text); added {
			changes = append(changes, "Added SafeLogger import")
		}
	}

	var removed bool
	if text, removed = RemoveUnusedKDebugMode(text); removed {
		changes = append(changes, "Removed unused kDebugMode import")
	}

	return text, changes
}

// Result describes a migrated file.
type Result struct {
	Path    string
	Changed bool
	Changes []string
}

// MigrateFile migrates a .dart file in place. The file is rewritten
// atomically, and only when its content changed.
func MigrateFile(path, tag string) (*Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrReadSource, err)
	}
	if info.IsDir() || filepath.Ext(path) != ".dart" {
		return nil, fmt.Errorf("%w: %s", ErrNotDartFile, path)
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path is the user's argument
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadSource, err)
	}

	original := string(data)
	migrated, changes := Migrate(path, original, tag)

	res := &Result{Path: path}
	if migrated == original {
		return res, nil
	}

	if err := fileutil.WriteFileAtomic(path, []byte(migrated), info.Mode().Perm()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteSource, err)
	}
	res.Changed = true
	res.Changes = changes
	return res, nil
}

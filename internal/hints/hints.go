// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config with a path, or creating one of the searched files.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "legalsite") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable, or use --output")
}

// ForMissingSources returns a hint when every pair was skipped, which usually
// means the source directory is wrong.
func ForMissingSources(sourceDir string) string {
	return format("no markdown sources found in " + sourceDir +
		"; expected privacy_policy_<lang>.md and terms_of_service_<lang>.md, use --input")
}

// ForDecode returns hints for undecodable source files.
func ForDecode(tried []string) string {
	if len(tried) == 0 {
		return ""
	}
	return format("tried " + strings.Join(tried, ", ") + "; re-save the file as UTF-8 or add an encoding to the config")
}

// ForUnknownEncoding lists the encoding names accepted in the config.
func ForUnknownEncoding(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForTemplate returns hints for custom page template failures.
func ForTemplate() string {
	return format("check assets.basePath contains templates/<name>.html and styles/<name>.css")
}

// ForMigrateInput returns hints for the logger migration input errors.
func ForMigrateInput() string {
	return format("pass a single .dart source file, e.g. lib/services/auth_service.dart")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

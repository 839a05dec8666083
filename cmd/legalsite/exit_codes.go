package main

import (
	"errors"
	"os"

	legalsite "github.com/alnah/go-legalsite"
	"github.com/alnah/go-legalsite/internal/checklist"
	"github.com/alnah/go-legalsite/internal/config"
	"github.com/alnah/go-legalsite/internal/logmigrate"
	"github.com/alnah/go-legalsite/internal/pipeline"
)

// Exit codes for the legalsite CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Run completed (skipped or failed pairs included unless --strict)
	ExitGeneral = 1 // General error, failed pairs under --strict, missing or bad migrate input
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // Output directory unusable, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Migration input errors keep exit 1.
	if errors.Is(err, logmigrate.ErrNoSource) ||
		errors.Is(err, logmigrate.ErrSourceNotFound) ||
		errors.Is(err, logmigrate.ErrNotDartFile) {
		return ExitGeneral
	}

	// I/O errors (exit 3)
	if errors.Is(err, legalsite.ErrOutputDir) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, logmigrate.ErrWriteSource) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrInvalidFlags) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidConfig) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, checklist.ErrUnknownReference) ||
		errors.Is(err, pipeline.ErrUnknownEngine) ||
		errors.Is(err, legalsite.ErrUnknownEncoding) ||
		errors.Is(err, legalsite.ErrNoEncodings) ||
		errors.Is(err, legalsite.ErrDuplicateLanguage) ||
		errors.Is(err, legalsite.ErrEmptyLanguageCode) ||
		errors.Is(err, legalsite.ErrNoLanguages) ||
		errors.Is(err, legalsite.ErrStyleNotFound) ||
		errors.Is(err, legalsite.ErrTemplateNotFound) ||
		errors.Is(err, legalsite.ErrInvalidAssetPath) ||
		errors.Is(err, legalsite.ErrRender) {
		return ExitUsage
	}

	return ExitGeneral
}

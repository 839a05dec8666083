package legalsite

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for library operations.
var (
	// Per-pair errors. A pair that fails with one of these is recorded in
	// the Report and the batch continues.
	ErrDecode       = errors.New("source could not be decoded")
	ErrMissingInput = errors.New("source document not found")
	ErrReadInput    = errors.New("failed to read source document")
	ErrWriteOutput  = errors.New("failed to write page")
	ErrRender       = errors.New("page rendering failed")

	// Fatal for the whole run.
	ErrOutputDir = errors.New("cannot create output directory")

	// Construction errors.
	ErrUnknownLanguage   = errors.New("unknown language")
	ErrUnknownDocType    = errors.New("unknown document type")
	ErrDuplicateLanguage = errors.New("duplicate language code")
	ErrEmptyLanguageCode = errors.New("language code cannot be empty")
	ErrNoLanguages       = errors.New("language table is empty")
	ErrUnknownEncoding   = errors.New("unknown encoding")
	ErrNoEncodings       = errors.New("decoder chain is empty")

	// Asset loading errors.
	ErrStyleNotFound    = errors.New("style not found")
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)

// DecodeError reports that no encoding of the chain could decode a source.
type DecodeError struct {
	Path  string
	Tried []string
}

func (e *DecodeError) Error() string {
	msg := "no encoding could decode the source (tried " + strings.Join(e.Tried, ", ") + ")"
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, msg)
	}
	return msg
}

// Unwrap lets errors.Is match ErrDecode.
func (e *DecodeError) Unwrap() error {
	return ErrDecode
}

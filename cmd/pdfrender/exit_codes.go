package main

import (
	"errors"
	"os"

	pdfrender "github.com/alnah/go-pdfrender"
	"github.com/alnah/go-pdfrender/internal/config"
)

// Exit codes for the pdfrender CLI.
// Pre-flight failures keep exit 1; remote and transport failures get
// their own codes so scripts can tell them apart.
const (
	ExitSuccess   = 0 // PDF written
	ExitGeneral   = 1 // Pre-flight validation or unexpected error
	ExitUsage     = 2 // Invalid flags or configuration
	ExitIO        = 3 // Local read/write failure after pre-flight
	ExitRejected  = 4 // Render service answered with a non-200 status
	ExitTransport = 5 // Render service unreachable or request interrupted
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Pre-flight errors (exit 1)
	if errors.Is(err, pdfrender.ErrFolderRequired) ||
		errors.Is(err, pdfrender.ErrInvalidFolderName) ||
		errors.Is(err, pdfrender.ErrFolderNotFound) ||
		errors.Is(err, pdfrender.ErrTemplateMissing) ||
		errors.Is(err, pdfrender.ErrDataMissing) ||
		errors.Is(err, pdfrender.ErrInvalidData) {
		return ExitGeneral
	}

	// Remote errors (exit 4, 5)
	if errors.Is(err, pdfrender.ErrRemoteRejected) {
		return ExitRejected
	}
	if errors.Is(err, pdfrender.ErrTransport) {
		return ExitTransport
	}

	// Usage/config errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidEndpoint) ||
		errors.Is(err, config.ErrInvalidLog) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, pdfrender.ErrReadInput) ||
		errors.Is(err, pdfrender.ErrWritePDF) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	return ExitGeneral
}

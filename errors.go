package pdfrender

import (
	"errors"
	"fmt"
)

// Sentinel errors for library operations.
var (
	// Pre-flight errors: the run stops before any network activity.
	ErrFolderRequired    = errors.New("folder name is required")
	ErrInvalidFolderName = errors.New("folder name must be a plain directory name")
	ErrFolderNotFound    = errors.New("folder not found")
	ErrTemplateMissing   = errors.New("template file not found")
	ErrDataMissing       = errors.New("data file not found")
	ErrInvalidData       = errors.New("invalid JSON in data file")

	// Non-fatal: reported through Inputs.OptionsErr.
	ErrInvalidOptions = errors.New("invalid PDF options")

	// Local I/O errors.
	ErrReadInput = errors.New("failed to read input file")
	ErrWritePDF  = errors.New("failed to write PDF file")

	// Remote errors.
	ErrRemoteRejected = errors.New("render service rejected the request")
	ErrTransport      = errors.New("render request failed")
)

// RemoteError describes a non-200 answer from the render service.
// Body holds the full response body as the service sent it.
type RemoteError struct {
	StatusCode int
	Body       string
}

func (e *RemoteError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%v: status %d", ErrRemoteRejected, e.StatusCode)
	}
	return fmt.Sprintf("%v: status %d: %s", ErrRemoteRejected, e.StatusCode, e.Body)
}

// Unwrap lets errors.Is match ErrRemoteRejected.
func (e *RemoteError) Unwrap() error {
	return ErrRemoteRejected
}

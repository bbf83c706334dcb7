package pdfrender

import (
	"fmt"
	"os"
)

// WriteOutput writes pdf verbatim to the bundle's output path, replacing any
// existing file, and returns that path.
func WriteOutput(b *Bundle, pdf []byte) (string, error) {
	if err := os.WriteFile(b.OutputPath, pdf, filePermissions); err != nil {
		return "", fmt.Errorf("%w: %v", ErrWritePDF, err)
	}
	return b.OutputPath, nil
}

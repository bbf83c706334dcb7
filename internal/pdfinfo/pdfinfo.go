// Package pdfinfo inspects PDF bytes returned by the render service.
// It never alters them; callers use it for reporting only.
package pdfinfo

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// ErrUnreadable reports bytes that do not parse as a PDF.
var ErrUnreadable = errors.New("not a readable PDF")

// Magic is the header every PDF file starts with.
var Magic = []byte("%PDF-")

// LooksLikePDF reports whether data starts with the PDF header.
func LooksLikePDF(data []byte) bool {
	return bytes.HasPrefix(data, Magic)
}

// PageCount parses data and returns its number of pages.
// The parser panics on some malformed inputs; those become ErrUnreadable.
func PageCount(data []byte) (n int, err error) {
	if !LooksLikePDF(data) {
		return 0, fmt.Errorf("%w: missing %s header", ErrUnreadable, Magic)
	}

	defer func() {
		if r := recover(); r != nil {
			n, err = 0, fmt.Errorf("%w: %v", ErrUnreadable, r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	return r.NumPage(), nil
}

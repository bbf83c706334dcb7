package pdfrender

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/alnah/go-pdfrender/internal/fileutil"
)

// Inputs holds everything read from a folder bundle.
type Inputs struct {
	Template string
	Data     json.RawMessage // parsed data tree, passed through unmodified
	Header   *string         // nil when header.hbr is absent
	Footer   *string         // nil when footer.hbr is absent

	// Overrides from pdfoptions.json, empty when the file is absent or invalid.
	Overrides *Options
	// OptionsLoaded reports that pdfoptions.json existed and parsed.
	OptionsLoaded bool
	// OptionsErr is set when pdfoptions.json exists but does not parse.
	// It wraps ErrInvalidOptions and does not abort the run.
	OptionsErr error
}

// LoadInputs reads the bundle's files. The template and data file are
// required and checked before anything is read; header, footer and options
// are optional.
func LoadInputs(b *Bundle) (*Inputs, error) {
	if !fileutil.FileExists(b.TemplatePath) {
		return nil, fmt.Errorf("%w: %s", ErrTemplateMissing, b.TemplatePath)
	}
	if !fileutil.FileExists(b.DataPath) {
		return nil, fmt.Errorf("%w: %s", ErrDataMissing, b.DataPath)
	}

	template, err := os.ReadFile(b.TemplatePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadInput, err)
	}

	data, err := loadData(b.DataPath)
	if err != nil {
		return nil, err
	}

	header, err := fileutil.ReadOptionalString(b.HeaderPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadInput, err)
	}
	footer, err := fileutil.ReadOptionalString(b.FooterPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadInput, err)
	}

	in := &Inputs{
		Template:  string(template),
		Data:      data,
		Header:    header,
		Footer:    footer,
		Overrides: NewOptions(),
	}

	raw, ok, err := fileutil.ReadOptional(b.OptionsPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadInput, err)
	}
	if ok {
		overrides, perr := ParseOptions(raw)
		if perr != nil {
			in.OptionsErr = fmt.Errorf("%s: %w", OptionsFile, perr)
		} else {
			in.Overrides = overrides
			in.OptionsLoaded = true
		}
	}

	return in, nil
}

func loadData(path string) (json.RawMessage, error) {
	content, err := os.ReadFile(path) // #nosec G304 -- path is built from the bundle directory
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadInput, err)
	}

	// Unmarshal into RawMessage validates the whole document and reports
	// the parser's message without reshaping the tree.
	var data json.RawMessage
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("%w '%s': %v", ErrInvalidData, DataFile, err)
	}
	return bytes.TrimSpace(data), nil
}

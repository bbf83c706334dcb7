package pdfrender

import (
	"encoding/json"
	"fmt"
)

// SourceTypeTemplate tells the render service that Content is a template.
const SourceTypeTemplate = "Template"

// Document is the request body sent to the render service.
type Document struct {
	SourceType string          `json:"sourceType"`
	Content    string          `json:"content"`
	Data       json.RawMessage `json:"data"`
	Options    *Options        `json:"options"`
}

// NewDocument assembles the request from loaded inputs: the default options
// for the inputs' header and footer, merged once with the overrides.
func NewDocument(in *Inputs) *Document {
	opts := DefaultOptions(in.Header, in.Footer)
	opts.Merge(in.Overrides)

	return &Document{
		SourceType: SourceTypeTemplate,
		Content:    in.Template,
		Data:       in.Data,
		Options:    opts,
	}
}

// Encode serializes the document to compact JSON.
func (d *Document) Encode() ([]byte, error) {
	b, err := encodeJSON(d)
	if err != nil {
		return nil, fmt.Errorf("encoding request document: %w", err)
	}
	return b, nil
}

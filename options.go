package pdfrender

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Default option keys sent to the render service.
const (
	OptDisplayHeaderFooter = "displayHeaderFooter"
	OptHeaderTemplate      = "headerTemplate"
	OptFooterTemplate      = "footerTemplate"
	OptPrintBackground     = "printBackground"
	OptMargin              = "margin"
)

// DefaultMargin is applied to the top and bottom of every page.
const DefaultMargin = "150px"

var errNotObject = errors.New("top-level value must be a JSON object")

// Options is an ordered JSON object of rendering options.
// Values are kept as raw JSON so overrides pass through untouched.
// The zero value is an empty, usable Options.
type Options struct {
	keys   []string
	values map[string]json.RawMessage
}

// NewOptions returns an empty Options.
func NewOptions() *Options {
	return &Options{values: make(map[string]json.RawMessage)}
}

// DefaultOptions returns the default option set for the given header and
// footer fragments. A nil fragment means the file was absent.
func DefaultOptions(header, footer *string) *Options {
	o := NewOptions()
	o.setRaw(OptDisplayHeaderFooter, mustEncode(header != nil || footer != nil))
	o.setRaw(OptHeaderTemplate, mustEncode(header))
	o.setRaw(OptFooterTemplate, mustEncode(footer))
	o.setRaw(OptPrintBackground, json.RawMessage("true"))
	o.setRaw(OptMargin, mustEncode(struct {
		Top    string `json:"top"`
		Bottom string `json:"bottom"`
	}{DefaultMargin, DefaultMargin}))
	return o
}

// ParseOptions decodes an options file. The document must be a JSON object
// or null; anything else wraps ErrInvalidOptions.
func ParseOptions(data []byte) (*Options, error) {
	o := NewOptions()
	if err := o.UnmarshalJSON(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}
	return o, nil
}

// Keys returns the option names in order.
func (o *Options) Keys() []string {
	return append([]string(nil), o.keys...)
}

// Len returns the number of options.
func (o *Options) Len() int {
	return len(o.keys)
}

// Get returns the raw JSON value stored under key.
func (o *Options) Get(key string) (json.RawMessage, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Set stores value under key, keeping the key's position if it exists.
func (o *Options) Set(key string, value any) error {
	raw, err := encodeJSON(value)
	if err != nil {
		return fmt.Errorf("encoding option %q: %w", key, err)
	}
	o.setRaw(key, raw)
	return nil
}

// Merge applies overrides on top of o. Each top-level key present in
// overrides replaces o's value for that key as a whole; nested objects are
// not merged. Keys new to o are appended in overrides order.
func (o *Options) Merge(overrides *Options) {
	if overrides == nil {
		return
	}
	for _, k := range overrides.keys {
		o.setRaw(k, overrides.values[k])
	}
}

// MarshalJSON writes the options in key order.
func (o *Options) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := encodeJSON(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(o.values[k])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object, preserving key order. A repeated key
// keeps its first position and its last value. null leaves o unchanged.
func (o *Options) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return syntaxOrEOF(err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errNotObject
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return syntaxOrEOF(err)
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected token %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return syntaxOrEOF(err)
		}
		o.setRaw(key, raw)
	}

	if _, err := dec.Token(); err != nil {
		return syntaxOrEOF(err)
	}
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			return errors.New("invalid data after top-level object")
		}
		return err
	}
	return nil
}

func (o *Options) setRaw(key string, raw json.RawMessage) {
	if o.values == nil {
		o.values = make(map[string]json.RawMessage)
	}
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = raw
}

func syntaxOrEOF(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}

// encodeJSON marshals v without HTML escaping, so template markup such as
// "<p>" is sent literally.
func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// mustEncode is encodeJSON for values that always marshal.
func mustEncode(v any) json.RawMessage {
	b, err := encodeJSON(v)
	if err != nil {
		panic("pdfrender: " + err.Error())
	}
	return b
}

// SPDX-License-Identifier: MIT
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseYAML decodes the YAML form. Unknown keys are rejected.
// The result is not validated; call Validate or Build.
func ParseYAML(r io.Reader) (Description, error) {
	var d Description
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		if errors.Is(err, io.EOF) {
			return Description{}, fmt.Errorf("%w: empty document", ErrTruncated)
		}
		return Description{}, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	return d, nil
}

// WriteYAML encodes d in the YAML form.
func (d Description) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("loader: encode yaml: %w", err)
	}

	return enc.Close()
}

// Format names a description encoding.
type Format string

const (
	// FormatInts is the whitespace-separated integer layout: header, links,
	// gateways, then the agent.
	FormatInts Format = "ints"
	// FormatYAML is a mapping with links, gateways and agent keys.
	FormatYAML Format = "yaml"
)

// FormatOf picks the encoding from a file extension.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}

	return FormatInts
}

// Parse decodes r in the given format.
func Parse(r io.Reader, f Format) (Description, error) {
	switch f {
	case FormatInts:
		return ParseInts(r)
	case FormatYAML:
		return ParseYAML(r)
	}

	return Description{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
}

// Write encodes d to w in the given format.
func (d Description) Write(w io.Writer, f Format) error {
	switch f {
	case FormatInts:
		return d.WriteInts(w)
	case FormatYAML:
		return d.WriteYAML(w)
	}

	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
}

// LoadFile reads and validates a description, choosing the encoding by extension.
func LoadFile(path string) (Description, error) {
	f, err := os.Open(path)
	if err != nil {
		return Description{}, fmt.Errorf("loader: %w", err)
	}
	defer f.Close()

	d, err := Parse(f, FormatOf(path))
	if err != nil {
		return Description{}, fmt.Errorf("%s: %w", path, err)
	}
	if err := d.Validate(); err != nil {
		return Description{}, fmt.Errorf("%s: %w", path, err)
	}

	return d, nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/bookshelf/pkg/types"
)

// Format selects the export encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Export writes books to w in the given format.
func Export(w io.Writer, books []types.Book, format Format) error {
	switch format {
	case FormatYAML, "":
		return ExportYAML(w, books)
	case FormatJSON:
		return ExportJSON(w, books)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
}

// ExportYAML writes books as a YAML sequence.
func ExportYAML(w io.Writer, books []types.Book) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(nonNil(books)); err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return enc.Close()
}

// ExportJSON writes books as an indented JSON array.
func ExportJSON(w io.Writer, books []types.Book) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(nonNil(books)); err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return nil
}

func nonNil(books []types.Book) []types.Book {
	if books == nil {
		return []types.Book{}
	}
	return books
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/bookshelf/internal/catalog"
	"github.com/pdiddy/bookshelf/pkg/types"
)

func TestExportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.json")
	books := []types.Book{
		{Title: "Dune", Author: "Frank Herbert", URL: "https://example.com/dune", Tags: []string{"scifi"}},
	}

	require.NoError(t, exportFile(path, books, catalog.FormatJSON))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got []types.Book
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, books, got)
}

func TestExportFileErrors(t *testing.T) {
	dir := t.TempDir()

	err := exportFile(filepath.Join(dir, "missing", "books.yaml"), nil, catalog.FormatYAML)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating")

	err = exportFile(filepath.Join(dir, "books.txt"), nil, catalog.Format("toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/bookshelf/pkg/types"
)

func TestLoadBuildConfigDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	assert.Equal(t, types.DefaultBuildConfig(), loadBuildConfig(v))
}

func TestLoadBuildConfigEmptyViper(t *testing.T) {
	assert.Equal(t, types.DefaultBuildConfig(), loadBuildConfig(viper.New()))
}

func TestLoadBuildConfigFromYAML(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(`
input: docs/books.md
output: public/index.html
extract:
  tags: false
site:
  title: Reading List
  default_view: LIST
  debounce: 300ms
  inline_assets: false
`)))

	cfg := loadBuildConfig(v)
	assert.Equal(t, "docs/books.md", cfg.Input)
	assert.Equal(t, "public/index.html", cfg.Output)
	assert.False(t, cfg.Extract.Tags)
	assert.Equal(t, "Reading List", cfg.Site.Title)
	assert.Equal(t, types.ViewList, cfg.Site.DefaultView)
	assert.Equal(t, 300*time.Millisecond, cfg.Site.Debounce)
	assert.False(t, cfg.Site.InlineAssets)
	assert.Equal(t, types.DefaultStorageKey, cfg.Site.StorageKey)
}

func TestLoadBuildConfigUnknownView(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("site.default_view", "gallery")

	assert.Equal(t, types.ViewCard, loadBuildConfig(v).Site.DefaultView)
}

func TestFormatSearchOutput(t *testing.T) {
	books := []types.Book{
		{Title: "Dune", Author: "Herbert", URL: "u", Tags: []string{"scifi"}},
	}

	var buf bytes.Buffer
	require.NoError(t, formatSearchOutput(&buf, books, false))
	out := buf.String()
	assert.Contains(t, out, "Dune")
	assert.Contains(t, out, "#scifi")
	assert.Contains(t, out, "1 books")

	buf.Reset()
	require.NoError(t, formatSearchOutput(&buf, nil, false))
	assert.Equal(t, "No books found matching your search.\n", buf.String())

	buf.Reset()
	require.NoError(t, formatSearchOutput(&buf, books, true))
	assert.Contains(t, buf.String(), `"title": "Dune"`)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "éééé", truncate("éééé", 4))
}

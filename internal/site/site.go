// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package site turns the book list of a markdown document into a static,
// client-side searchable page.
//
// A build reads the whole source, extracts the books, renders one page and
// writes it out. Nothing is written when the source cannot be read.
package site

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/bookshelf/internal/extract"
	"github.com/pdiddy/bookshelf/pkg/types"
)

// BuildResult summarizes one build.
type BuildResult struct {
	// Books is the extracted record sequence in source order.
	Books []types.Book

	// Output is the path of the written page.
	Output string

	// Size is the page size in bytes.
	Size int
}

// Load reads the source document named by cfg, strips its front matter and
// extracts the books. Only an unreadable source is an error; front matter
// that cannot be used produces a warning on stderr and the document is
// read as plain markdown.
func Load(cfg types.BuildConfig) (PageMeta, []types.Book, error) {
	source, err := os.ReadFile(cfg.Input)
	if err != nil {
		return PageMeta{}, nil, fmt.Errorf("reading %s: %w", cfg.Input, err)
	}

	meta, body, err := ParseMeta(source, cfg.Site.Title)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %s: %v\n", cfg.Input, err)
	}

	books := extract.Books(string(body), extract.Options{Tags: cfg.Extract.Tags})
	return meta, books, nil
}

// Build runs the whole pipeline for cfg, printing progress to w.
func Build(cfg types.BuildConfig, w io.Writer) (BuildResult, error) {
	fmt.Fprintf(w, "Parsing %s...\n", cfg.Input)
	meta, books, err := Load(cfg)
	if err != nil {
		return BuildResult{}, err
	}
	fmt.Fprintf(w, "Found %d books\n", len(books))

	siteCfg := cfg.Site
	siteCfg.Tags = cfg.Site.Tags && cfg.Extract.Tags

	page, err := Render(books, meta, siteCfg)
	if err != nil {
		return BuildResult{}, err
	}
	if err := Write(cfg.Output, page, siteCfg); err != nil {
		return BuildResult{}, err
	}
	fmt.Fprintf(w, "Generated %s\n", cfg.Output)

	return BuildResult{Books: books, Output: cfg.Output, Size: len(page)}, nil
}

// Write stores page at path, overwriting any previous file. When assets are
// not inlined the script and stylesheet are written under static/ next to
// the page.
func Write(path string, page []byte, cfg types.SiteConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	if !cfg.InlineAssets {
		assetDir := filepath.Join(dir, staticDir)
		if err := os.MkdirAll(assetDir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", assetDir, err)
		}
		assets := map[string]string{
			scriptFile: appScript,
			stylesFile: appStyles,
		}
		for name, content := range assets {
			p := filepath.Join(assetDir, name)
			if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", p, err)
			}
		}
	}

	if err := os.WriteFile(path, page, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

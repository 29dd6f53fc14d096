// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package site

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"go.yaml.in/yaml/v3"
)

// PageMeta holds the page-level text shown above the search controls.
type PageMeta struct {
	// Title is the heading and <title> of the page.
	Title string

	// Description is the markdown source of the optional introduction.
	Description string

	// DescriptionHTML is Description rendered to HTML. Raw HTML in the source
	// is omitted.
	DescriptionHTML template.HTML
}

type frontMatter struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// yamlFrontMatter is the only accepted front matter format, so a document
// opening with any other delimiter is left untouched.
var yamlFrontMatter = frontmatter.NewFormat("---", "---", yaml.Unmarshal)

// markdown renders descriptions. Raw HTML is not passed through.
var markdown = goldmark.New(goldmark.WithExtensions(extension.Linkify, extension.Strikethrough))

// ParseMeta reads an optional front matter block from the top of source. It
// returns the page metadata and the remaining body. Without front matter the
// body is source unchanged and the title is fallbackTitle.
//
// A leading block that does not decode as front matter (a "---" horizontal
// rule, for instance) is treated as ordinary markdown: ParseMeta returns the
// fallback metadata, the unchanged source and a non-nil error saying why the
// block was ignored. The returned metadata and body are always usable.
func ParseMeta(source []byte, fallbackTitle string) (PageMeta, []byte, error) {
	var fm frontMatter
	body, err := frontmatter.Parse(bytes.NewReader(source), &fm, yamlFrontMatter)
	if err != nil {
		return PageMeta{Title: fallbackTitle}, source, fmt.Errorf("ignoring front matter: %w", err)
	}

	meta := PageMeta{
		Title:       strings.TrimSpace(fm.Title),
		Description: strings.TrimSpace(fm.Description),
	}
	if meta.Title == "" {
		meta.Title = fallbackTitle
	}
	if meta.Description != "" {
		html, err := renderMarkdown(meta.Description)
		if err != nil {
			meta.Description = ""
			return meta, body, err
		}
		meta.DescriptionHTML = html
	}
	return meta, body, nil
}

func renderMarkdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("rendering description: %w", err)
	}
	return template.HTML(buf.String()), nil
}

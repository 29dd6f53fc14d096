// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract pulls book entries out of a markdown document.
//
// Only list items shaped as an HTML anchor or a markdown link are
// significant; headings, prose and any other line are skipped. Each line is
// tried against the anchor form first and the bracket-link form second.
package extract

import (
	"regexp"
	"strings"

	"github.com/pdiddy/bookshelf/pkg/types"
)

// bySeparator splits display text into title and author.
const bySeparator = " by "

// tagGroup matches the optional run of hashtags after the link. Each tag is
// a whitespace-delimited token, so "#a#b" and "##x" reject the line. A bare
// '#' is accepted here and dropped by parseTags.
const tagGroup = `((?:#[\p{L}\p{N}_]*(?:\s+|$))*)`

// anchorPattern matches `- <a href="URL">TEXT</a> #tag ...`.
var anchorPattern = regexp.MustCompile(`^\s*-\s*<a href="(.+?)">(.+?)</a>\s*` + tagGroup + `\s*$`)

// linkPattern matches `- [TEXT](URL) #tag ...`.
var linkPattern = regexp.MustCompile(`^\s*-\s*\[(.+?)\]\((.+?)\)\s*` + tagGroup + `\s*$`)

// Options controls extraction.
type Options struct {
	// Tags keeps hashtags as book tags. When false tags are discarded.
	Tags bool
}

// Books scans source line by line and returns one book per matching list
// item, in source order. Non-matching lines are ignored.
func Books(source string, opts Options) []types.Book {
	books := []types.Book{}
	for _, line := range strings.Split(source, "\n") {
		if b, ok := Line(line, opts); ok {
			books = append(books, b)
		}
	}
	return books
}

// Line parses a single physical line. It reports false when the line is not
// a recognized book entry.
func Line(line string, opts Options) (types.Book, bool) {
	var url, text, rawTags string
	if m := anchorPattern.FindStringSubmatch(line); m != nil {
		url, text, rawTags = m[1], m[2], m[3]
	} else if m := linkPattern.FindStringSubmatch(line); m != nil {
		text, url, rawTags = m[1], m[2], m[3]
	} else {
		return types.Book{}, false
	}

	title, author := SplitDisplay(text)
	b := types.Book{
		Title:  title,
		Author: author,
		URL:    url,
		Tags:   []string{},
	}
	if opts.Tags {
		b.Tags = parseTags(rawTags)
	}
	return b, true
}

// SplitDisplay splits link text on the last " by ". Text without the
// separator becomes the title and the author is types.UnknownAuthor.
func SplitDisplay(text string) (title, author string) {
	i := strings.LastIndex(text, bySeparator)
	if i < 0 {
		return text, types.UnknownAuthor
	}
	return text[:i], text[i+len(bySeparator):]
}

// parseTags returns the '#'-prefixed tokens of s without the prefix.
func parseTags(s string) []string {
	tags := []string{}
	for _, tok := range strings.Fields(s) {
		if !strings.HasPrefix(tok, "#") {
			continue
		}
		if tag := strings.TrimPrefix(tok, "#"); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

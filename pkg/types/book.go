// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the records and configuration shared by the
// bookshelf build stages.
package types

// UnknownAuthor is the author recorded for entries whose display text has
// no " by " separator.
const UnknownAuthor = "Unknown"

// Book is one entry parsed from the source document. Books are produced once
// per build and never modified afterwards.
type Book struct {
	// Title is the display text before the last " by ".
	Title string `json:"title" yaml:"title"`

	// Author is the display text after the last " by ", or UnknownAuthor.
	Author string `json:"author" yaml:"author"`

	// URL is the link target, kept as an opaque string.
	URL string `json:"url" yaml:"url"`

	// Tags lists the hashtags following the link in source order, without
	// the leading '#'. Never nil for extracted books.
	Tags []string `json:"tags" yaml:"tags"`
}

// HasTags reports whether the book carries at least one tag.
func (b Book) HasTags() bool {
	return len(b.Tags) > 0
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog queries and exports an extracted book list from the
// command line. Filtering follows the same rules as the search box on the
// generated page.
package catalog

import (
	"strings"

	"github.com/pdiddy/bookshelf/pkg/types"
)

// FilterOptions controls Filter.
type FilterOptions struct {
	// Tags includes tags in the match.
	Tags bool

	// Reverse returns the matches in reverse source order.
	Reverse bool
}

// Filter returns the books whose title, author or (with opts.Tags) any tag
// contains query, ignoring case. An empty query matches every book. The
// input slice is never modified.
func Filter(books []types.Book, query string, opts FilterOptions) []types.Book {
	lower := strings.ToLower(query)

	result := make([]types.Book, 0, len(books))
	for _, b := range books {
		if lower == "" || matches(b, lower, opts.Tags) {
			result = append(result, b)
		}
	}

	if opts.Reverse {
		for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
			result[i], result[j] = result[j], result[i]
		}
	}
	return result
}

func matches(b types.Book, lower string, withTags bool) bool {
	if strings.Contains(strings.ToLower(b.Title), lower) {
		return true
	}
	if strings.Contains(strings.ToLower(b.Author), lower) {
		return true
	}
	if !withTags {
		return false
	}
	for _, tag := range b.Tags {
		if strings.Contains(strings.ToLower(tag), lower) {
			return true
		}
	}
	return false
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"strings"
	"time"
)

// ViewMode selects one of the mutually exclusive page layouts.
type ViewMode string

const (
	ViewCard    ViewMode = "card"
	ViewList    ViewMode = "list"
	ViewCompact ViewMode = "compact"
)

// ViewModes lists the layouts in the order their buttons appear.
var ViewModes = []ViewMode{ViewCard, ViewList, ViewCompact}

// ParseViewMode maps s to a ViewMode, falling back to ViewCard for empty or
// unrecognized values.
func ParseViewMode(s string) ViewMode {
	switch m := ViewMode(strings.ToLower(strings.TrimSpace(s))); m {
	case ViewCard, ViewList, ViewCompact:
		return m
	default:
		return ViewCard
	}
}

// Label returns the button caption for the mode.
func (m ViewMode) Label() string {
	switch m {
	case ViewList:
		return "List"
	case ViewCompact:
		return "Compact"
	default:
		return "Card"
	}
}

// ContainerClass returns the CSS class applied to the results container
// while the mode is active.
func (m ViewMode) ContainerClass() string {
	switch m {
	case ViewList:
		return "books-list"
	case ViewCompact:
		return "books-compact"
	default:
		return "books-grid"
	}
}

const (
	DefaultInput      = "README.md"
	DefaultOutput     = "index.html"
	DefaultTitle      = "Bookshelf"
	DefaultStorageKey = "bookshelf-view"
	DefaultReverseKey = "bookshelf-reversed"
	DefaultDebounce   = 150 * time.Millisecond
)

// ExtractConfig holds settings for the extraction stage.
type ExtractConfig struct {
	// Tags controls whether hashtags after a link are kept as a first-class
	// field. When false every book has an empty tag list.
	Tags bool `json:"tags" yaml:"tags"`
}

// SiteConfig holds settings for the rendered page.
type SiteConfig struct {
	// Title is the page title used when the source has no front matter title.
	Title string `json:"title" yaml:"title"`

	// DefaultView is the layout used when the browser has no stored choice.
	DefaultView ViewMode `json:"default_view" yaml:"default_view"`

	// StorageKey is the localStorage key holding the selected view mode.
	StorageKey string `json:"storage_key" yaml:"storage_key"`

	// ReverseKey is the localStorage key holding the reverse-order toggle.
	ReverseKey string `json:"reverse_key" yaml:"reverse_key"`

	// Debounce is the delay between the last keystroke and the filter pass.
	Debounce time.Duration `json:"debounce" yaml:"debounce"`

	// InlineAssets embeds styles and script in the page. When false they are
	// written under static/ next to the page and linked.
	InlineAssets bool `json:"inline_assets" yaml:"inline_assets"`

	// Tags exposes tags in the rendered cards and the search filter.
	Tags bool `json:"tags" yaml:"tags"`
}

// BuildConfig groups the settings for one build invocation.
type BuildConfig struct {
	// Input is the markdown source path.
	Input string `json:"input" yaml:"input"`

	// Output is the path the page is written to.
	Output string `json:"output" yaml:"output"`

	Extract ExtractConfig `json:"extract" yaml:"extract"`
	Site    SiteConfig    `json:"site" yaml:"site"`
}

// DefaultBuildConfig returns the configuration used by a bare invocation.
func DefaultBuildConfig() BuildConfig {
	return BuildConfig{
		Input:   DefaultInput,
		Output:  DefaultOutput,
		Extract: ExtractConfig{Tags: true},
		Site: SiteConfig{
			Title:        DefaultTitle,
			DefaultView:  ViewCard,
			StorageKey:   DefaultStorageKey,
			ReverseKey:   DefaultReverseKey,
			Debounce:     DefaultDebounce,
			InlineAssets: true,
			Tags:         true,
		},
	}
}

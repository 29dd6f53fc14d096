// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package site

import (
	"bytes"
	"fmt"
	"html/template"
	"path"

	"github.com/pdiddy/bookshelf/pkg/types"
)

const (
	placeholderWithTags = "Search by title, author, or tags..."
	placeholderNoTags   = "Search by title or author..."
	noResultsText       = "No books found matching your search."
)

// clientConfig is handed to the page script next to the book data.
type clientConfig struct {
	StorageKey  string `json:"storageKey"`
	ReverseKey  string `json:"reverseKey"`
	DefaultView string `json:"defaultView"`
	DebounceMs  int64  `json:"debounceMs"`
	Tags        bool   `json:"tags"`
}

type viewButton struct {
	Mode   types.ViewMode
	Label  string
	Active bool
}

type pageData struct {
	Title          string
	Description    template.HTML
	Placeholder    string
	Views          []viewButton
	ContainerClass string
	Count          int
	Books          []types.Book
	Client         clientConfig
	InlineAssets   bool
	Styles         template.CSS
	Script         template.JS
	StylesPath     string
	ScriptPath     string
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}}</title>
{{if .InlineAssets}}<style>{{.Styles}}</style>{{else}}<link rel="stylesheet" href="{{.StylesPath}}">{{end}}
</head>
<body>
<div class="container">
<header><h1>{{.Title}}</h1></header>
{{with .Description}}<div class="description">{{.}}</div>
{{end}}<div class="controls">
<div class="search-box"><input type="text" id="search" placeholder="{{.Placeholder}}" autocomplete="off"></div>
<div class="view-toggles">{{range .Views}}<button type="button" class="view-btn{{if .Active}} active{{end}}" data-view="{{.Mode}}">{{.Label}}</button>{{end}}</div>
<button type="button" class="reverse-btn" id="reverse-btn">Reverse</button>
</div>
<p class="book-count"><span id="count">{{.Count}}</span> books</p>
<div id="books" class="{{.ContainerClass}}"></div>
<div id="no-results" class="no-results hidden">` + noResultsText + `</div>
</div>
<script>
const books = {{.Books}};
const config = {{.Client}};
</script>
{{if .InlineAssets}}<script>{{.Script}}</script>{{else}}<script src="{{.ScriptPath}}"></script>{{end}}
</body>
</html>
`))

// Render produces the complete page for books. The books are embedded as a
// JSON constant read by the page script; nothing is fetched after load.
// Identical input always yields identical output.
func Render(books []types.Book, meta PageMeta, cfg types.SiteConfig) ([]byte, error) {
	view := types.ParseViewMode(string(cfg.DefaultView))

	data := pageData{
		Title:          meta.Title,
		Description:    meta.DescriptionHTML,
		Placeholder:    placeholderNoTags,
		ContainerClass: view.ContainerClass(),
		Count:          len(books),
		Books:          normalizeBooks(books),
		Client: clientConfig{
			StorageKey:  cfg.StorageKey,
			ReverseKey:  cfg.ReverseKey,
			DefaultView: string(view),
			DebounceMs:  cfg.Debounce.Milliseconds(),
			Tags:        cfg.Tags,
		},
		InlineAssets: cfg.InlineAssets,
		StylesPath:   path.Join(staticDir, stylesFile),
		ScriptPath:   path.Join(staticDir, scriptFile),
	}
	if data.Title == "" {
		data.Title = types.DefaultTitle
	}
	if cfg.Tags {
		data.Placeholder = placeholderWithTags
	}
	if data.Client.StorageKey == "" {
		data.Client.StorageKey = types.DefaultStorageKey
	}
	if data.Client.ReverseKey == "" {
		data.Client.ReverseKey = types.DefaultReverseKey
	}
	if data.Client.DebounceMs <= 0 {
		data.Client.DebounceMs = types.DefaultDebounce.Milliseconds()
	}
	if cfg.InlineAssets {
		data.Styles = Styles()
		data.Script = Script()
	}
	for _, m := range types.ViewModes {
		data.Views = append(data.Views, viewButton{Mode: m, Label: m.Label(), Active: m == view})
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering page: %w", err)
	}
	return buf.Bytes(), nil
}

// normalizeBooks returns a non-nil copy whose tag lists are non-nil, so the
// embedded data always serializes as arrays.
func normalizeBooks(books []types.Book) []types.Book {
	out := make([]types.Book, len(books))
	for i, b := range books {
		if b.Tags == nil {
			b.Tags = []string{}
		}
		out[i] = b
	}
	return out
}

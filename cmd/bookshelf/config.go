// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/viper"

	"github.com/pdiddy/bookshelf/pkg/types"
)

// setDefaults registers the values used when neither a config file, the
// environment nor a flag sets a key.
func setDefaults(v *viper.Viper) {
	d := types.DefaultBuildConfig()
	v.SetDefault("input", d.Input)
	v.SetDefault("output", d.Output)
	v.SetDefault("extract.tags", d.Extract.Tags)
	v.SetDefault("site.title", d.Site.Title)
	v.SetDefault("site.default_view", string(d.Site.DefaultView))
	v.SetDefault("site.storage_key", d.Site.StorageKey)
	v.SetDefault("site.reverse_key", d.Site.ReverseKey)
	v.SetDefault("site.debounce", d.Site.Debounce)
	v.SetDefault("site.inline_assets", d.Site.InlineAssets)
	v.SetDefault("site.tags", d.Site.Tags)
}

// loadBuildConfig assembles a BuildConfig from v. Empty strings fall back to
// the defaults so a blank flag never produces an empty path.
func loadBuildConfig(v *viper.Viper) types.BuildConfig {
	cfg := types.DefaultBuildConfig()

	if s := v.GetString("input"); s != "" {
		cfg.Input = s
	}
	if s := v.GetString("output"); s != "" {
		cfg.Output = s
	}
	if s := v.GetString("site.title"); s != "" {
		cfg.Site.Title = s
	}
	if s := v.GetString("site.storage_key"); s != "" {
		cfg.Site.StorageKey = s
	}
	if s := v.GetString("site.reverse_key"); s != "" {
		cfg.Site.ReverseKey = s
	}
	if d := v.GetDuration("site.debounce"); d > 0 {
		cfg.Site.Debounce = d
	}
	if v.IsSet("site.default_view") {
		cfg.Site.DefaultView = types.ParseViewMode(v.GetString("site.default_view"))
	}
	if v.IsSet("site.inline_assets") {
		cfg.Site.InlineAssets = v.GetBool("site.inline_assets")
	}
	if v.IsSet("site.tags") {
		cfg.Site.Tags = v.GetBool("site.tags")
	}
	if v.IsSet("extract.tags") {
		cfg.Extract.Tags = v.GetBool("extract.tags")
	}
	return cfg
}

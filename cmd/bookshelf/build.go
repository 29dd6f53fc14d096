// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/bookshelf/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate the bookshelf page from the markdown source",
	Long: `Build reads the markdown source, extracts every book entry and writes a
single HTML page with the books embedded as data. The page is overwritten on
every run; when the source cannot be read nothing is written.`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg := loadBuildConfig(viper.GetViper())
	_, err := site.Build(cfg, os.Stdout)
	return err
}

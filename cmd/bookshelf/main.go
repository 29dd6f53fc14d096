// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the bookshelf CLI.
//
// Running bookshelf without arguments builds the page: it reads README.md,
// extracts the book list and writes index.html.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the bookshelf CLI. Without a subcommand it
// performs a build.
var rootCmd = &cobra.Command{
	Use:   "bookshelf",
	Short: "Turn a markdown reading list into a searchable web page",
	Long: `bookshelf reads the book entries listed in a markdown document and
generates a static page with client-side search, three layouts (card, list,
compact) and order reversal. The page needs no server after it is written.

Book entries are list items written either as an HTML anchor or as a
markdown link, optionally followed by hashtags:

  - <a href="https://example.com/dune">Dune by Frank Herbert</a> #scifi
  - [Foundation by Isaac Asimov](https://example.com/foundation)

Everything else in the document is ignored.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runBuild,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./bookshelf.yaml or ~/.config/bookshelf/bookshelf.yaml)")
	rootCmd.PersistentFlags().String("input", "", "markdown source (default README.md)")
	rootCmd.PersistentFlags().String("output", "", "generated page (default index.html)")

	viper.BindPFlag("input", rootCmd.PersistentFlags().Lookup("input"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
}

func initConfig() {
	setDefaults(viper.GetViper())

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("bookshelf")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "bookshelf"))
		}
	}

	viper.SetEnvPrefix("BOOKSHELF")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		fmt.Fprintf(os.Stderr, "warning: could not read config %s: %v\n", cfgFile, err)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/bookshelf/internal/catalog"
	"github.com/pdiddy/bookshelf/internal/site"
	"github.com/pdiddy/bookshelf/pkg/types"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the extracted books as YAML or JSON",
	Long: `Export extracts the books from the markdown source and writes them in
source order as YAML or JSON, to stdout or to the file given by --out.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	exportCmd.Flags().String("out", "", "write to this file instead of stdout")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	outPath, _ := cmd.Flags().GetString("out")

	cfg := loadBuildConfig(viper.GetViper())
	_, books, err := site.Load(cfg)
	if err != nil {
		return err
	}

	if outPath == "" {
		return catalog.Export(os.Stdout, books, catalog.Format(format))
	}
	if err := exportFile(outPath, books, catalog.Format(format)); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Exported %d books to %s\n", len(books), outPath)
	return nil
}

// exportFile writes books to path. Close errors are returned.
func exportFile(path string, books []types.Book, format catalog.Format) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := catalog.Export(f, books, format); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/bookshelf/internal/catalog"
	"github.com/pdiddy/bookshelf/internal/site"
	"github.com/pdiddy/bookshelf/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "List the books matching a query, as the page search box would",
	Long: `Search extracts the books from the markdown source and prints those whose
title, author or tags contain the query, ignoring case. Without a query every
book is listed.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().Bool("reverse", false, "list matches in reverse source order")
	searchCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg := loadBuildConfig(viper.GetViper())
	_, books, err := site.Load(cfg)
	if err != nil {
		return err
	}

	reverse, _ := cmd.Flags().GetBool("reverse")
	results := catalog.Filter(books, strings.Join(args, " "), catalog.FilterOptions{
		Tags:    cfg.Extract.Tags && cfg.Site.Tags,
		Reverse: reverse,
	})

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatSearchOutput(os.Stdout, results, jsonOutput)
}

func formatSearchOutput(w io.Writer, results []types.Book, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Fprintln(w, "No books found matching your search.")
		return nil
	}

	fmt.Fprintf(w, "%-4s  %-40s  %-24s  %s\n", "#", "Title", "Author", "Tags")
	fmt.Fprintln(w, strings.Repeat("-", 90))

	for i, b := range results {
		var tags []string
		if b.HasTags() {
			for _, t := range b.Tags {
				tags = append(tags, "#"+t)
			}
		}
		fmt.Fprintf(w, "%-4d  %-40s  %-24s  %s\n",
			i+1, truncate(b.Title, 40), truncate(b.Author, 24), strings.Join(tags, " "))
	}
	fmt.Fprintf(w, "\n%d books\n", len(results))
	return nil
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pdf2llm/internal/index"
	"github.com/pdiddy/pdf2llm/pkg/types"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Index converted text files for full-text search",
	Long: `Index ingests converted .txt files into a local SQLite database with
FTS5 full-text indexing, one row per page. Files with unchanged
modification times are skipped on subsequent runs.`,
	RunE: runIndex,
}

func runIndex(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	outputDir, _ := cmd.Flags().GetString("output-dir")

	summary, err := store.Ingest(context.Background(), outputDir, os.Stdout)
	if err != nil {
		return err
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d file(s) failed indexing", summary.Failed)
	}
	return nil
}

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search indexed text with full-text queries",
	Long: `Search runs an FTS5 full-text query over indexed pages and prints
ranked hits with their source file and page label. Use --source to
restrict hits to one converted document.`,
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	source, _ := cmd.Flags().GetString("source")
	limit, _ := cmd.Flags().GetInt("limit")

	opts := index.QueryOptions{
		Query:      strings.Join(args, " "),
		Source:     source,
		MaxResults: limit,
	}
	if opts.IsEmpty() {
		return fmt.Errorf("query or filter required: provide search terms or --source")
	}

	results, err := store.Retrieve(context.Background(), opts)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatSearchOutput(results, jsonOutput)
}

func formatSearchOutput(results []index.QueryResult, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-30s  %-8s  %s\n", "Rank", "File", "Page", "Content")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 100))

	for i, r := range results {
		content := strings.Join(strings.Fields(r.Content), " ")
		if len(content) > 54 {
			content = content[:51] + "..."
		}
		file := r.File
		if len(file) > 30 {
			file = file[:27] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-4d  %-30s  %-8s  %s\n", i+1, file, r.PageLabel, content)
	}

	fmt.Fprintf(os.Stdout, "\n%d results\n", len(results))
	return nil
}

func openStore(cmd *cobra.Command) (*index.Store, error) {
	indexDir, _ := cmd.Flags().GetString("index-dir")
	maxResults, _ := cmd.Flags().GetInt("max-results")

	return index.NewStore(types.IndexConfig{
		IndexDir:   indexDir,
		MaxResults: maxResults,
	})
}

func init() {
	for _, c := range []*cobra.Command{indexCmd, searchCmd} {
		c.Flags().String("index-dir", "index", "directory holding the SQLite index")
		c.Flags().Int("max-results", 20, "default maximum number of search results")
	}

	indexCmd.Flags().String("output-dir", "txt_output", "directory of converted text files to ingest")

	searchCmd.Flags().String("source", "", "restrict hits to files whose name contains this string")
	searchCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	searchCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(indexCmd)
	rootCmd.AddCommand(searchCmd)
}

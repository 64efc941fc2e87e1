// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/iconpack/internal/convert"
	"github.com/pdiddy/iconpack/internal/index"
	"github.com/pdiddy/iconpack/pkg/types"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Rebuild the local icon index from the source tree",
	Long: `Index runs the extraction pass over the source tree and replaces the
contents of a local SQLite database with the results. The rebuild is
transactional: on failure the previous index contents remain intact.
The index is always built from the source files, never from the emitted
document.`,
	RunE: runIndex,
}

func runIndex(cmd *cobra.Command, args []string) error {
	store, err := index.NewStore(indexConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	records, summary, err := convert.Records(convertConfig(cmd), os.Stdout)
	if err != nil {
		return err
	}

	ctx := context.Background()
	if err := store.Ingest(ctx, records); err != nil {
		return err
	}

	fmt.Printf("indexed %d icon(s) (%d skipped, %d failed)\n",
		summary.Converted, summary.Skipped, summary.Failed)

	if summary.HasFailures() {
		return fmt.Errorf("%d file(s) failed extraction", summary.Failed)
	}
	return nil
}

// --- search subcommand ---

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Query the icon index with full-text search and filters",
	Long: `Search queries the icon index using FTS5 full-text search over
aliases and art text, structured filters (name, maximum width), or a
combination of both.`,
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	store, err := index.NewStore(indexConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	opts := queryOptsFromFlags(cmd, args)
	if opts.IsEmpty() {
		return fmt.Errorf("query or filter required: provide a search query, --name, or --max-width")
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

	fmt.Fprintf(os.Stdout, "%-4s  %-20s  %-40s  %-6s  %s\n",
		"Rank", "Name", "Aliases", "Width", "Colors")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 90))

	for i, r := range results {
		aliases := strings.Join(r.Aliases, ", ")
		if len(aliases) > 40 {
			aliases = aliases[:37] + "..."
		}
		name := r.Name
		if len(name) > 20 {
			name = name[:17] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-4d  %-20s  %-40s  %-6d  %d\n",
			i+1, name, aliases, r.Width, len(r.Colors))
	}

	fmt.Fprintf(os.Stdout, "\n%d results\n", len(results))
	return nil
}

// --- export subcommand ---

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the icon index to YAML or JSON",
	Long: `Export writes the full icon index (or a filtered subset) to
export.yaml or export.json in the index directory. Supports the same
filter flags as search for partial exports.`,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	store, err := index.NewStore(indexConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	opts := queryOptsFromFlags(cmd, args)

	switch format {
	case "yaml", "":
		if err := store.ExportYAML(context.Background(), opts); err != nil {
			return err
		}
		fmt.Println("Exported to export.yaml in the index directory")
	case "json":
		if err := store.ExportJSON(context.Background(), opts); err != nil {
			return err
		}
		fmt.Println("Exported to export.json in the index directory")
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}

	return nil
}

// --- shared helpers ---

func indexConfig(cmd *cobra.Command) types.IndexConfig {
	cfg := types.IndexConfig{
		IndexDir:   viper.GetString("index.index_dir"),
		MaxResults: viper.GetInt("index.max_results"),
	}
	if cmd.Flags().Changed("index-dir") {
		cfg.IndexDir, _ = cmd.Flags().GetString("index-dir")
	}
	if cmd.Flags().Changed("max-results") {
		cfg.MaxResults, _ = cmd.Flags().GetInt("max-results")
	}
	return cfg
}

func queryOptsFromFlags(cmd *cobra.Command, args []string) index.QueryOptions {
	queryText, _ := cmd.Flags().GetString("query")
	if queryText == "" && len(args) > 0 {
		queryText = strings.Join(args, " ")
	}

	name, _ := cmd.Flags().GetString("name")
	maxWidth, _ := cmd.Flags().GetInt("max-width")
	limit, _ := cmd.Flags().GetInt("limit")

	return index.QueryOptions{
		Query:      queryText,
		Name:       name,
		MaxWidth:   maxWidth,
		MaxResults: limit,
	}
}

func init() {
	// Index shares the convert source flags since it scans the same tree.
	indexCmd.Flags().String("source-dir", "distros", "root directory scanned for icon definitions")
	indexCmd.Flags().String("ext", ".py", "file suffix of candidate definition files")
	indexCmd.Flags().String("index-dir", "index", "directory holding the SQLite index")
	indexCmd.Flags().Int("max-results", 20, "maximum number of query results")

	searchCmd.Flags().String("query", "", "full-text search query")
	searchCmd.Flags().String("name", "", "filter by primary icon name")
	searchCmd.Flags().Int("max-width", 0, "filter out icons wider than N columns")
	searchCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	searchCmd.Flags().String("index-dir", "index", "directory holding the SQLite index")
	searchCmd.Flags().Int("max-results", 20, "maximum number of query results")
	searchCmd.Flags().Bool("json", false, "output results as JSON")

	exportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	exportCmd.Flags().String("query", "", "full-text search filter for partial export")
	exportCmd.Flags().String("name", "", "filter by primary icon name")
	exportCmd.Flags().Int("max-width", 0, "filter out icons wider than N columns")
	exportCmd.Flags().Int("limit", 0, "maximum icons to export (0 = all)")
	exportCmd.Flags().String("index-dir", "index", "directory holding the SQLite index")
	exportCmd.Flags().Int("max-results", 20, "maximum number of query results")

	rootCmd.AddCommand(indexCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(exportCmd)
}

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/booksearch/internal/openlibrary"
	"github.com/pdiddy/booksearch/internal/search"
)

var searchCmd = &cobra.Command{
	Use:   "search <title...>",
	Short: "Run one title search and print a page of results",
	Long: `Search queries the Open Library catalog for books whose title matches the
arguments and prints one page of twenty results with cover and detail links.
Use --page to move through the result pages.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().Int("page", 1, "result page to fetch (20 results per page)")
	searchCmd.Flags().String("format", "table", "output format: table, json, or yaml")
	searchCmd.Flags().Bool("json", false, "output results as JSON (same as --format json)")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	title := strings.Join(args, " ")
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("provide a book title to search for")
	}

	page, _ := cmd.Flags().GetInt("page")
	if page < 1 {
		return fmt.Errorf("--page must be at least 1, got %d", page)
	}
	format, _ := cmd.Flags().GetString("format")
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		format = "json"
	}

	logger, err := newLogger("")
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	client := openlibrary.NewClient(loadConfig(), logger)
	res, err := client.Search(ctx, title, page)
	if err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			return nil
		}
		logger.Error("search failed", zap.String("title", title), zap.Int("page", page), zap.Error(err))
		return err
	}

	out := search.NewPageOutput(title, page, res)
	w := cmd.OutOrStdout()
	switch format {
	case "json":
		return search.FormatJSON(out, w)
	case "yaml":
		return search.FormatYAML(out, w)
	case "table", "":
		search.FormatTable(out, w)
		return nil
	default:
		return fmt.Errorf("unknown format %q: use table, json, or yaml", format)
	}
}

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"tokendash/internal/domain"
	"tokendash/internal/format"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
)

func init() {
	searchCmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Full-text search over tracked tokens",
		Long:  `Search tokens by name or symbol. Without a query the configured default is used.`,
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSearch,
	}

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	b, err := bootstrap(os.Stderr)
	if err != nil {
		return err
	}
	defer b.Shutdown()

	query := b.Config.API.DefaultQuery
	if len(args) == 1 && strings.TrimSpace(args[0]) != "" {
		query = strings.TrimSpace(args[0])
	}

	res, err := b.Client.Search(cmd.Context(), query)
	if err != nil {
		return err
	}
	printSearch(cmd.OutOrStdout(), res)
	return nil
}

func printSearch(w io.Writer, res *domain.SearchResult) {
	fmt.Fprintf(w, "%d result(s) for %q\n", res.Count, res.Query)
	for _, t := range res.Results {
		fmt.Fprintf(w, "%s %s %s %s\n",
			runewidth.FillRight(strings.ToUpper(t.Symbol), 8),
			runewidth.FillRight(runewidth.Truncate(t.Name, 20, "…"), 20),
			runewidth.FillRight(format.Currency(t.CurrentPrice), 16),
			format.Compact(t.MarketCap))
	}
}

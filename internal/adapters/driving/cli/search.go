package cli

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/postliste/internal/core/domain"
)

// titleWidth is the title column width of the result table.
const titleWidth = 60

var searchFlags queryFlags

var searchCmd = &cobra.Command{
	Use:   "search [text]",
	Short: "Search the records log",
	Long: `Searches record titles and counterparties, case-insensitively, and
prints one page of results.

Filters combine: every given filter must match. Without --sort the
newest records come first.

Examples:
  postliste search budsjett
  postliste search --type "Inngående brev" --from 2024-01-01 --to 2024-03-31
  postliste search --link "https://example.org/postliste/?q=avtale&page=2"`,
	RunE: runSearch,
}

func init() {
	searchFlags.bind(searchCmd, true)
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if queryService == nil {
		return errors.New("query service not configured")
	}

	ctx := cmd.Context()
	state, err := searchFlags.state(ctx, cmd, args)
	if err != nil {
		return err
	}

	ds, err := loadDataset(ctx)
	if err != nil {
		return err
	}

	page := queryService.Query(ds, state)
	if page.TotalMatched == 0 {
		suggestFilters(cmd.ErrOrStderr(), ds, state)
	}

	return newOutputFormatter(cmd.OutOrStdout()).write(page, func(w io.Writer) error {
		return writeResultPage(w, page)
	})
}

func writeResultPage(w io.Writer, page domain.ResultPage) error {
	if page.TotalMatched == 0 {
		_, err := fmt.Fprintln(w, "No records found.")
		return err
	}
	if len(page.Items) == 0 {
		_, err := fmt.Fprintf(w, "Page %d is past the last page (%d).\n", page.Page, page.TotalPages)
		return err
	}

	first := page.Offset() + 1
	last := page.Offset() + len(page.Items)
	fmt.Fprintf(w, "Showing %s-%s of %s records (page %d of %d)\n\n",
		humanize.Comma(int64(first)), humanize.Comma(int64(last)),
		humanize.Comma(int64(page.TotalMatched)), page.Page, page.TotalPages)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tID\tTITLE\tTYPE\tSTATUS")
	for _, r := range page.Items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			orDash(r.Date), r.DocumentID, truncateText(orDash(r.Title), titleWidth), r.TypeLabel(), orDash(r.Status))
	}
	return tw.Flush()
}

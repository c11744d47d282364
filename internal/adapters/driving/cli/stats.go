package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/postliste/internal/core/domain"
)

var statsFlags queryFlags

var statsCmd = &cobra.Command{
	Use:   "stats [text]",
	Short: "Count records per month, type, status and year",
	Long: `Aggregates the records matching the filters into counts per month,
document type, status and year. Without filters every record counts.`,
	RunE: runStats,
}

func init() {
	statsFlags.bind(statsCmd, false)
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	if queryService == nil || statsService == nil {
		return errors.New("stats service not configured")
	}

	ctx := cmd.Context()
	state, err := statsFlags.state(ctx, cmd, args)
	if err != nil {
		return err
	}

	ds, err := loadDataset(ctx)
	if err != nil {
		return err
	}

	stats := statsService.Aggregate(queryService.Filter(ds, state))

	return newOutputFormatter(cmd.OutOrStdout()).write(stats, func(w io.Writer) error {
		return writeStats(w, stats)
	})
}

func writeStats(w io.Writer, stats domain.Statistics) error {
	fmt.Fprintf(w, "Records: %s\n", humanize.Comma(int64(stats.Total)))

	sections := []struct {
		title  string
		counts []domain.Count
	}{
		{"By status", stats.ByStatus},
		{"By type", stats.ByType},
		{"By year", stats.ByYear},
		{"By month", stats.ByMonth},
	}
	for _, s := range sections {
		if len(s.counts) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n%s\n", s.title)
		width := 0
		for _, c := range s.counts {
			width = max(width, len([]rune(c.Label)))
		}
		for _, c := range s.counts {
			fmt.Fprintf(w, "  %-*s  %s\n", width, c.Label, humanize.Comma(int64(c.N)))
		}
	}
	return nil
}

package cli

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/postliste/internal/core/domain"
)

var (
	changesLimit int
	changesID    string
)

var changesCmd = &cobra.Command{
	Use:   "changes",
	Short: "Show recent changes to the records log",
	Long:  `Lists change log entries, newest first, with the fields each change touched.`,
	Args:  cobra.NoArgs,
	RunE:  runChanges,
}

func init() {
	changesCmd.Flags().IntVarP(&changesLimit, "limit", "n", 20, "maximum number of entries, 0 for all")
	changesCmd.Flags().StringVar(&changesID, "id", "", "only changes to this document id")
	rootCmd.AddCommand(changesCmd)
}

func runChanges(cmd *cobra.Command, _ []string) error {
	if datasetService == nil {
		return errors.New("dataset service not configured")
	}

	events, err := datasetService.LoadChangeEvents(cmd.Context())
	if err != nil {
		return fmt.Errorf("could not load changes: %w", err)
	}

	events = filterChanges(events, changesID, changesLimit)

	return newOutputFormatter(cmd.OutOrStdout()).write(events, func(w io.Writer) error {
		return writeChanges(w, events)
	})
}

func filterChanges(events []domain.ChangeEvent, id string, limit int) []domain.ChangeEvent {
	out := make([]domain.ChangeEvent, 0, len(events))
	for _, e := range events {
		if id != "" && e.DocumentID.String() != id {
			continue
		}
		out = append(out, e)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

func writeChanges(w io.Writer, events []domain.ChangeEvent) error {
	if len(events) == 0 {
		_, err := fmt.Fprintln(w, "No changes found.")
		return err
	}

	for _, e := range events {
		when := e.Timestamp
		if !e.At.IsZero() {
			when = fmt.Sprintf("%s (%s)", e.Timestamp, humanize.Time(e.At))
		}
		fmt.Fprintf(w, "%s  %s  %s  %s\n", orDash(when), orDash(e.Type), orDash(e.DocumentID.String()),
			truncateText(e.Title, titleWidth))

		fields := make([]string, 0, len(e.Changes))
		for name := range e.Changes {
			fields = append(fields, name)
		}
		sort.Strings(fields)
		for _, name := range fields {
			c := e.Changes[name]
			fmt.Fprintf(w, "    %s: %s -> %s\n", name, changeValue(c.Old), changeValue(c.New))
		}
	}
	return nil
}

func changeValue(v any) string {
	if v == nil {
		return "(none)"
	}
	s := strings.TrimSpace(fmt.Sprint(v))
	if s == "" {
		return `""`
	}
	return truncateText(s, titleWidth)
}

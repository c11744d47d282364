package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/postliste/internal/core/domain"
)

var showCmd = &cobra.Command{
	Use:   "show [document-id]",
	Short: "Show one record",
	Long:  `Shows every field of a record, its links and its published files.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	id := domain.DocumentID(strings.TrimSpace(args[0]))
	if id == "" {
		return fmt.Errorf("%w: document id is required", domain.ErrInvalidInput)
	}

	ds, err := loadDataset(cmd.Context())
	if err != nil {
		return err
	}

	record, ok := ds.Get(id)
	if !ok {
		return fmt.Errorf("record %s: %w", id, domain.ErrNotFound)
	}

	return newOutputFormatter(cmd.OutOrStdout()).write(record, func(w io.Writer) error {
		return writeRecord(w, record)
	})
}

func writeRecord(w io.Writer, r domain.Record) error {
	title := r.Title
	if title == "" {
		title = "(untitled)"
	}
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("=", len([]rune(title))))
	fmt.Fprintln(w)

	fields := []struct {
		label string
		value string
	}{
		{"Document ID", r.DocumentID.String()},
		{"Date", r.Date},
		{"Type", r.TypeLabel()},
		{"Counterparty", r.Counterparty},
		{"Status", r.Status},
		{"Journal", r.JournalLink},
		{"Detail", r.DetailLink},
	}
	for _, f := range fields {
		fmt.Fprintf(w, "%-13s %s\n", f.label+":", orDash(f.value))
	}

	if len(r.Files) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Files:")
		for _, f := range r.Files {
			fmt.Fprintf(w, "  - %s\n    %s\n", orDash(f.Text), orDash(f.URL))
		}
	}
	if !r.IsPublished() && r.Status != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Files are not published. Request access from the journal entry.")
	}
	return nil
}

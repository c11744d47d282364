package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/postliste/internal/core/services"
)

var (
	exportFlags  queryFlags
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export [text]",
	Short: "Export matching records as CSV",
	Long: `Writes every record matching the filters, in result order, as CSV.
Use --output - to write to standard output.`,
	RunE: runExport,
}

func init() {
	exportFlags.bind(exportCmd, false)
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", services.DefaultExportFileName, "output file, - for stdout")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	if queryService == nil || exportService == nil {
		return errors.New("export service not configured")
	}

	ctx := cmd.Context()
	state, err := exportFlags.state(ctx, cmd, args)
	if err != nil {
		return err
	}

	ds, err := loadDataset(ctx)
	if err != nil {
		return err
	}

	records := queryService.Filter(ds, state)

	if exportOutput == "-" {
		return exportService.WriteCSV(cmd.OutOrStdout(), records)
	}

	f, err := os.Create(exportOutput)
	if err != nil {
		return fmt.Errorf("creating %s: %w", exportOutput, err)
	}
	if err := exportService.WriteCSV(f, records); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", exportOutput, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", exportOutput, err)
	}

	cmd.Printf("Exported %d records to %s\n", len(records), exportOutput)
	return nil
}

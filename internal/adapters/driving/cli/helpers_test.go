package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/postliste/internal/adapters/driven/datasource/memory"
	storage "github.com/custodia-labs/postliste/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/postliste/internal/core/services"
)

const sampleRecords = `[
  {"dokumentID": "2025001", "dato": "10.01.2025", "tittel": "Søknad om tilskudd til kulturarrangement",
   "dokumenttype": "Inngående brev", "avsender_mottaker": "Kulturlaget", "status": "Må bes om innsyn",
   "journal_link": "https://example.org/journal/2025001"},
  {"dokumentID": "2025002", "dato": "15.01.2025", "tittel": "Budsjett 2025",
   "dokumenttype": "Notat", "status": "Publisert"},
  {"dokumentID": "2025003", "dato": "24.01.2025", "tittel": "Svar på søknad om tilskudd",
   "dokumenttype": "Utgående brev", "avsender_mottaker": "Kulturrådet", "status": "Publisert",
   "journal_link": "https://example.org/journal/2025003",
   "filer": [{"tekst": "Svar på søknad", "url": "https://example.org/files/2025003.pdf"}]},
  {"dokumentID": "2024100", "dato": "12.12.2024", "tittel": "Avtale om drift",
   "dokumenttype": "Utgående brev", "avsender_mottaker": "Driftsselskapet AS", "status": "Publisert"}
]`

const sampleChanges = `[
  {"tidspunkt": "2025-01-24 06:00:12", "type": "ny", "dokumentID": "2025003", "tittel": "Svar på søknad om tilskudd"},
  {"tidspunkt": "2025-01-25 06:00:00", "type": "endret", "dokumentID": "2025001",
   "tittel": "Søknad om tilskudd til kulturarrangement",
   "endringer": {"status": {"gammel": "Må bes om innsyn", "ny": "Publisert"}, "tittel": {"gammel": null, "ny": "Søknad"}}}
]`

// setupTestServices injects services backed by in-memory fixtures and
// returns a cleanup that restores lazy wiring and flag defaults.
func setupTestServices() func() {
	source := memory.NewSource(map[string][]byte{
		"postliste.json": []byte(sampleRecords),
		"changes.json":   []byte(sampleChanges),
	})

	SetServices(&Services{
		Settings: services.NewSettingsService(storage.NewConfigStore()),
		Dataset:  services.NewDatasetLoader(source, services.LoaderConfig{}),
		Query:    services.NewQueryEngine(),
		Stats:    services.NewStatsService(),
		Export:   services.NewExportService(),
		View:     services.NewViewService(storage.NewViewStore()),
	})

	return func() {
		SetServices(nil)
		resetFlags(rootCmd)
	}
}

// resetFlags restores every flag of cmd and its children to its default,
// since cobra keeps parsed values between executions.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	}()

	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

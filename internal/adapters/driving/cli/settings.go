package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/postliste/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change where data is loaded from, HTTP limits, query
defaults and the share link base URL.

Settings are stored in config.toml inside the config directory.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change one setting",
	Long: `Change one setting by its dotted key, for example:

  postliste settings set data.source https://example.org/postliste/data
  postliste settings set query.page_size 100
  postliste settings set query.sort title-asc`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

// settingEntry is one key and its current value.
type settingEntry struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	entries := settingEntries(settings)
	return newOutputFormatter(cmd.OutOrStdout()).write(entries, func(w io.Writer) error {
		for _, e := range entries {
			fmt.Fprintf(w, "%-26s %s\n", e.Key, orDash(e.Value))
		}
		fmt.Fprintln(w)
		if err := settingsService.Validate(); err != nil {
			fmt.Fprintf(w, "Warning: %v\n", err)
			fmt.Fprintln(w, "Run 'postliste settings set <key> <value>' to fix it.")
		} else {
			fmt.Fprintln(w, "Configuration is valid.")
		}
		return nil
	})
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to set %s: %w", args[0], err)
	}

	cmd.Printf("Set %s = %s\n", args[0], args[1])
	return nil
}

// settingEntries lists settings in the same order as the service's keys.
func settingEntries(s *domain.AppSettings) []settingEntry {
	values := map[string]string{
		"data.source":              s.Data.Source,
		"data.index_file":          s.Data.IndexFile,
		"data.records_file":        s.Data.RecordsFile,
		"data.changes_file":        s.Data.ChangesFile,
		"http.timeout_seconds":     strconv.Itoa(s.HTTP.TimeoutSeconds),
		"http.requests_per_second": strconv.FormatFloat(s.HTTP.RequestsPerSecond, 'f', -1, 64),
		"query.page_size":          strconv.Itoa(s.Query.PageSize),
		"query.sort":               s.Query.Sort.String(),
		"share.base_url":           s.Share.BaseURL,
	}

	keys := settingsService.Keys()
	entries := make([]settingEntry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, settingEntry{Key: k, Value: values[k]})
	}
	return entries
}

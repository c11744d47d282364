package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/postliste/internal/adapters/driven/config/file"
	"github.com/custodia-labs/postliste/internal/adapters/driven/datasource"
	"github.com/custodia-labs/postliste/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/postliste/internal/core/domain"
	"github.com/custodia-labs/postliste/internal/core/ports/driving"
	"github.com/custodia-labs/postliste/internal/core/services"
	"github.com/custodia-labs/postliste/internal/logger"
)

// version is set at build time with -ldflags "-X ...cli.version=1.2.3".
var version = "dev"

// skipServices marks commands that run without wiring services.
const skipServices = "skip-services"

// Root flags.
var (
	configDir    string
	dataOverride string
	verbose      bool
	outputFormat string
)

// Services used by the commands. They are wired in PersistentPreRunE
// unless injected with SetServices.
var (
	settingsService driving.SettingsService
	datasetService  driving.DatasetService
	queryService    driving.QueryService
	statsService    driving.StatsService
	exportService   driving.ExportService
	viewService     driving.ViewService

	servicesInjected bool
	closers          []func() error
)

// Services groups the services the CLI depends on.
type Services struct {
	Settings driving.SettingsService
	Dataset  driving.DatasetService
	Query    driving.QueryService
	Stats    driving.StatsService
	Export   driving.ExportService
	View     driving.ViewService
}

var rootCmd = &cobra.Command{
	Use:   "postliste",
	Short: "Browse a public records log",
	Long: `postliste browses the published records log (postliste) of a public body.

It loads the published data files from a local directory or a web
location, then searches, filters, sorts and pages through the records,
aggregates statistics, exports CSV and builds share links.`,
	SilenceUsage:       true,
	PersistentPreRunE:  setupServices,
	PersistentPostRunE: closeServices,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.postliste)")
	flags.StringVar(&dataOverride, "data", "", "data directory or base URL, overrides data.source")
	flags.BoolVarP(&verbose, "verbose", "v", false, "print debug output to stderr")
	flags.StringVarP(&outputFormat, "format", "f", formatText, "output format: text, json or yaml")
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// SetServices injects services, bypassing the lazy wiring.
// Passing nil restores lazy wiring.
func SetServices(s *Services) {
	if s == nil {
		servicesInjected = false
		settingsService, datasetService, queryService = nil, nil, nil
		statsService, exportService, viewService = nil, nil, nil
		return
	}
	servicesInjected = true
	settingsService = s.Settings
	datasetService = s.Dataset
	queryService = s.Query
	statsService = s.Stats
	exportService = s.Export
	viewService = s.View
}

func setupServices(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	logger.SetOutput(cmd.ErrOrStderr())

	if !isValidFormat(outputFormat) {
		return fmt.Errorf("%w: unknown format %q", domain.ErrInvalidInput, outputFormat)
	}
	if servicesInjected || cmd.Annotations[skipServices] == "true" {
		return nil
	}

	dir := configDir
	if dir == "" {
		d, err := file.DefaultDir()
		if err != nil {
			return err
		}
		dir = d
	}

	configStore, err := file.NewConfigStore(dir)
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}
	settings := services.NewSettingsService(configStore)

	appSettings, err := settings.Get()
	if err != nil {
		return fmt.Errorf("reading settings: %w", err)
	}
	if dataOverride != "" {
		appSettings.Data.Source = dataOverride
	}
	logger.Debug("config %s, data %s", configStore.Path(), appSettings.Data.Source)

	source, err := datasource.New(appSettings.Data, appSettings.HTTP)
	if err != nil {
		return fmt.Errorf("opening data source: %w", err)
	}

	store, err := sqlite.NewStore(filepath.Join(dir, "data"))
	if err != nil {
		return fmt.Errorf("opening view store: %w", err)
	}
	closers = append(closers, store.Close)

	settingsService = settings
	datasetService = services.NewDatasetLoader(source, services.LoaderConfigFrom(appSettings.Data))
	queryService = services.NewQueryEngine()
	statsService = services.NewStatsService()
	exportService = services.NewExportService()
	viewService = services.NewViewService(store.ViewStore())
	return nil
}

func closeServices(_ *cobra.Command, _ []string) error {
	var errs []error
	for _, c := range closers {
		errs = append(errs, c())
	}
	closers = nil
	return errors.Join(errs...)
}

// loadDataset loads the records, reporting a friendly error on failure.
func loadDataset(ctx context.Context) (*domain.Dataset, error) {
	if datasetService == nil {
		return nil, errors.New("dataset service not configured")
	}
	ds, err := datasetService.LoadRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load records: %w", err)
	}
	return ds, nil
}

// currentSettings returns the settings or the defaults when no settings
// service is configured.
func currentSettings() domain.AppSettings {
	if settingsService == nil {
		return domain.DefaultAppSettings()
	}
	s, err := settingsService.Get()
	if err != nil || s == nil {
		return domain.DefaultAppSettings()
	}
	return *s
}

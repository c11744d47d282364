package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator"

	"github.com/custodia-labs/postliste/internal/core/domain"
	"github.com/custodia-labs/postliste/internal/core/ports/driven"
	"github.com/custodia-labs/postliste/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyDataSource   = "data.source"
	keyIndexFile    = "data.index_file"
	keyRecordsFile  = "data.records_file"
	keyChangesFile  = "data.changes_file"
	keyHTTPTimeout  = "http.timeout_seconds"
	keyHTTPRate     = "http.requests_per_second"
	keyPageSize     = "query.page_size"
	keySort         = "query.sort"
	keyShareBaseURL = "share.base_url"
)

var settingKeys = []string{
	keyDataSource,
	keyIndexFile,
	keyRecordsFile,
	keyChangesFile,
	keyHTTPTimeout,
	keyHTTPRate,
	keyPageSize,
	keySort,
	keyShareBaseURL,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
	validate    *validator.Validate
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		validate:    validator.New(),
	}
}

// Get retrieves current application settings.
// Missing or unusable values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Data: domain.DataSettings{
			Source:      s.getString(keyDataSource, defaults.Data.Source),
			IndexFile:   s.getString(keyIndexFile, defaults.Data.IndexFile),
			RecordsFile: s.getString(keyRecordsFile, defaults.Data.RecordsFile),
			ChangesFile: s.getString(keyChangesFile, defaults.Data.ChangesFile),
		},
		HTTP: domain.HTTPSettings{
			TimeoutSeconds:    s.getInt(keyHTTPTimeout, defaults.HTTP.TimeoutSeconds),
			RequestsPerSecond: s.getFloat(keyHTTPRate, defaults.HTTP.RequestsPerSecond),
		},
		Query: domain.QuerySettings{
			PageSize: s.getInt(keyPageSize, defaults.Query.PageSize),
			Sort:     s.getSort(defaults.Query.Sort),
		},
		Share: domain.ShareSettings{
			BaseURL: s.configStore.GetString(keyShareBaseURL), // empty disables share links
		},
	}

	return settings, nil
}

// Save validates and persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if settings == nil {
		return fmt.Errorf("%w: settings are nil", domain.ErrInvalidInput)
	}
	if err := s.check(settings); err != nil {
		return err
	}

	values := []struct {
		key   string
		value any
	}{
		{keyDataSource, settings.Data.Source},
		{keyIndexFile, settings.Data.IndexFile},
		{keyRecordsFile, settings.Data.RecordsFile},
		{keyChangesFile, settings.Data.ChangesFile},
		{keyHTTPTimeout, settings.HTTP.TimeoutSeconds},
		{keyHTTPRate, settings.HTTP.RequestsPerSecond},
		{keyPageSize, settings.Query.PageSize},
		{keySort, settings.Query.Sort.String()},
		{keyShareBaseURL, settings.Share.BaseURL},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}

	if err := s.configStore.Save(); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	return nil
}

// Set parses value for key, validates the resulting settings and saves them.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	value = strings.TrimSpace(value)
	switch key {
	case keyDataSource:
		settings.Data.Source = value
	case keyIndexFile:
		settings.Data.IndexFile = value
	case keyRecordsFile:
		settings.Data.RecordsFile = value
	case keyChangesFile:
		settings.Data.ChangesFile = value
	case keyHTTPTimeout:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be a whole number of seconds", domain.ErrInvalidInput, key)
		}
		settings.HTTP.TimeoutSeconds = n
	case keyHTTPRate:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%w: %s must be a number", domain.ErrInvalidInput, key)
		}
		settings.HTTP.RequestsPerSecond = f
	case keyPageSize:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be a whole number", domain.ErrInvalidInput, key)
		}
		settings.Query.PageSize = n
	case keySort:
		sort := domain.SortKey(value)
		if !sort.IsValid() {
			return fmt.Errorf("%w: unknown sort %q", domain.ErrInvalidInput, value)
		}
		settings.Query.Sort = sort
	case keyShareBaseURL:
		settings.Share.BaseURL = value
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	return s.Save(settings)
}

// Keys returns the recognised setting keys in display order.
func (s *SettingsService) Keys() []string {
	keys := make([]string, len(settingKeys))
	copy(keys, settingKeys)
	return keys
}

// Validate checks the current settings.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return s.check(settings)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (s *SettingsService) check(settings *domain.AppSettings) error {
	if err := s.validate.Struct(settings); err != nil {
		return fmt.Errorf("%w: settings validation error: %v", domain.ErrInvalidInput, err)
	}
	if !settings.Query.Sort.IsValid() {
		return fmt.Errorf("%w: unknown sort %q", domain.ErrInvalidInput, settings.Query.Sort)
	}
	return nil
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	val := s.configStore.GetFloat(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getSort(defaultVal domain.SortKey) domain.SortKey {
	val := s.configStore.GetString(keySort)
	if val == "" {
		return defaultVal
	}
	sort := domain.SortKey(val)
	if !sort.IsValid() {
		return defaultVal
	}
	return sort
}

package driving

import "github.com/custodia-labs/postliste/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save validates and persists application settings.
	Save(settings *domain.AppSettings) error

	// Set parses value for a single dotted key (e.g. "query.page_size")
	// and persists it after validating the resulting settings.
	Set(key, value string) error

	// Keys returns the recognised setting keys.
	Keys() []string

	// Validate checks the current settings.
	Validate() error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}

// Package services implements the driving port interfaces.
//
// DatasetLoader turns the published data files into a Dataset.
// QueryEngine, StatsService and ExportService are pure functions over
// a loaded Dataset and never fail. SettingsService and ViewService
// persist user state through driven ports.
package services

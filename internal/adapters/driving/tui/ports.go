// Package tui provides an interactive terminal user interface for postliste.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/postliste/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Dataset loads the records once at start-up.
	Dataset driving.DatasetService

	// Query answers every search, filter and paging change.
	Query driving.QueryService

	// Settings supplies the starting page size and sort. Optional.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(dataset driving.DatasetService, query driving.QueryService) *Ports {
	return &Ports{
		Dataset: dataset,
		Query:   query,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Dataset == nil {
		return ErrMissingDatasetService
	}
	if p.Query == nil {
		return ErrMissingQueryService
	}
	return nil
}

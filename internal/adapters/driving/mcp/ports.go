package mcp

import (
	"github.com/custodia-labs/postliste/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Dataset loads the records and the change log.
	Dataset driving.DatasetService

	// Query filters, sorts and pages records.
	Query driving.QueryService

	// Stats aggregates records. Optional: record_stats fails without it.
	Stats driving.StatsService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Dataset == nil {
		return ErrMissingDatasetService
	}
	if p.Query == nil {
		return ErrMissingQueryService
	}
	return nil
}

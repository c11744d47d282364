// Package mcp provides an MCP (Model Context Protocol) server adapter for postliste.
// It lets AI assistants query the records log, its statistics and change history.
package mcp

import "errors"

var (
	// ErrMissingDatasetService is returned when the dataset service is not provided.
	ErrMissingDatasetService = errors.New("mcp: dataset service is required")

	// ErrMissingQueryService is returned when the query service is not provided.
	ErrMissingQueryService = errors.New("mcp: query service is required")
)

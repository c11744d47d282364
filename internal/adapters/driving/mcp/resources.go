package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/postliste/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for postliste resources.
	uriScheme = "postliste://"

	summaryURI = uriScheme + "summary"
)

// Summary describes the loaded dataset.
type Summary struct {
	Records  int      `json:"records"`
	Types    []string `json:"types"`
	Statuses []string `json:"statuses"`
	Sorts    []string `json:"sorts"`
}

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         summaryURI,
		Name:        "summary",
		Description: "Record count and the document types and statuses usable as filters",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)
}

// handleSummaryResource returns the dataset summary.
func (s *Server) handleSummaryResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	ds, err := s.dataset(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading records: %w", err)
	}

	data, err := json.MarshalIndent(summarize(ds), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling summary: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func summarize(ds *domain.Dataset) Summary {
	keys := domain.SortKeys()
	sorts := make([]string, len(keys))
	for i, k := range keys {
		sorts[i] = k.String()
	}

	types := ds.Types()
	if types == nil {
		types = []string{}
	}
	statuses := ds.Statuses()
	if statuses == nil {
		statuses = []string{}
	}

	return Summary{
		Records:  ds.Len(),
		Types:    types,
		Statuses: statuses,
		Sorts:    sorts,
	}
}

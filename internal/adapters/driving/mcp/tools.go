package mcp

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/postliste/internal/core/domain"
)

// defaultChangeLimit caps list_changes when no limit is given.
const defaultChangeLimit = 20

// FilterInput holds the filters shared by query_records and record_stats.
type FilterInput struct {
	Search string `json:"search,omitempty" jsonschema:"text matched case-insensitively against title and counterparty"`
	Type   string `json:"type,omitempty" jsonschema:"exact document type, e.g. Inngående brev"`
	Status string `json:"status,omitempty" jsonschema:"exact status, e.g. Publisert"`
	From   string `json:"from,omitempty" jsonschema:"earliest record date, YYYY-MM-DD"`
	To     string `json:"to,omitempty" jsonschema:"latest record date, YYYY-MM-DD"`
	Link   string `json:"link,omitempty" jsonschema:"share link or query string to start from; other fields override it"`
}

// QueryInput is the input schema for the query_records tool.
type QueryInput struct {
	Search  string `json:"search,omitempty" jsonschema:"text matched case-insensitively against title and counterparty"`
	Type    string `json:"type,omitempty" jsonschema:"exact document type, e.g. Inngående brev"`
	Status  string `json:"status,omitempty" jsonschema:"exact status, e.g. Publisert"`
	From    string `json:"from,omitempty" jsonschema:"earliest record date, YYYY-MM-DD"`
	To      string `json:"to,omitempty" jsonschema:"latest record date, YYYY-MM-DD"`
	Link    string `json:"link,omitempty" jsonschema:"share link or query string to start from; other fields override it"`
	Sort    string `json:"sort,omitempty" jsonschema:"date-desc (default), date-asc, title-asc, title-desc, type-asc or type-desc"`
	Page    int    `json:"page,omitempty" jsonschema:"1-based page number (default 1)"`
	PerPage int    `json:"per_page,omitempty" jsonschema:"records per page (default 50)"`
}

// QueryOutput is the output schema for the query_records tool.
type QueryOutput struct {
	Records      []RecordOutput `json:"records"`
	TotalMatched int            `json:"total_matched"`
	Page         int            `json:"page"`
	PageSize     int            `json:"page_size"`
	TotalPages   int            `json:"total_pages"`
	Query        string         `json:"query"`
}

// RecordOutput represents a single record.
type RecordOutput struct {
	DocumentID   string       `json:"document_id"`
	Date         string       `json:"date"`
	Title        string       `json:"title"`
	DocumentType string       `json:"document_type"`
	Counterparty string       `json:"counterparty"`
	Status       string       `json:"status"`
	Link         string       `json:"link,omitempty"`
	Files        []FileOutput `json:"files,omitempty"`
}

// FileOutput is a published attachment.
type FileOutput struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// StatsInput is the input schema for the record_stats tool.
type StatsInput = FilterInput

// GetRecordInput is the input schema for the get_record tool.
type GetRecordInput struct {
	DocumentID string `json:"document_id" jsonschema:"the document id of the record"`
}

// ChangesInput is the input schema for the list_changes tool.
type ChangesInput struct {
	Limit      int    `json:"limit,omitempty" jsonschema:"maximum number of entries (default 20)"`
	DocumentID string `json:"document_id,omitempty" jsonschema:"only changes to this document id"`
}

// ChangesOutput is the output schema for the list_changes tool.
type ChangesOutput struct {
	Changes []ChangeOutput `json:"changes"`
	Count   int            `json:"count"`
}

// ChangeOutput is one change log entry.
type ChangeOutput struct {
	Timestamp  string        `json:"timestamp"`
	Type       string        `json:"type"`
	DocumentID string        `json:"document_id"`
	Title      string        `json:"title"`
	Fields     []FieldOutput `json:"fields,omitempty"`
}

// FieldOutput is the before and after value of a changed field.
type FieldOutput struct {
	Field string `json:"field"`
	Old   string `json:"old"`
	New   string `json:"new"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "query_records",
		Description: "Search, filter, sort and page through the public records log",
	}, s.handleQuery)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "record_stats",
		Description: "Count matching records per month, document type, status and year",
	}, s.handleStats)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_record",
		Description: "Get one record with its links and published files",
	}, s.handleGetRecord)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_changes",
		Description: "List recent changes to the records log, newest first",
	}, s.handleListChanges)
}

// handleQuery handles the query_records tool invocation.
func (s *Server) handleQuery(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input QueryInput,
) (*mcp.CallToolResult, QueryOutput, error) {
	state, err := input.state()
	if err != nil {
		return nil, QueryOutput{}, err
	}

	ds, err := s.dataset(ctx)
	if err != nil {
		return nil, QueryOutput{}, err
	}

	page := s.ports.Query.Query(ds, state)

	output := QueryOutput{
		Records:      make([]RecordOutput, len(page.Items)),
		TotalMatched: page.TotalMatched,
		Page:         page.Page,
		PageSize:     page.PageSize,
		TotalPages:   page.TotalPages,
		Query:        state.Encode(),
	}
	for i := range page.Items {
		output.Records[i] = toRecordOutput(page.Items[i])
	}

	return nil, output, nil
}

// handleStats handles the record_stats tool invocation.
func (s *Server) handleStats(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input StatsInput,
) (*mcp.CallToolResult, domain.Statistics, error) {
	if s.ports.Stats == nil {
		return nil, domain.Statistics{}, errors.New("stats service not configured")
	}

	state, err := input.state(domain.DefaultQueryState())
	if err != nil {
		return nil, domain.Statistics{}, err
	}

	ds, err := s.dataset(ctx)
	if err != nil {
		return nil, domain.Statistics{}, err
	}

	return nil, s.ports.Stats.Aggregate(s.ports.Query.Filter(ds, state)), nil
}

// handleGetRecord handles the get_record tool invocation.
func (s *Server) handleGetRecord(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetRecordInput,
) (*mcp.CallToolResult, RecordOutput, error) {
	id := domain.DocumentID(strings.TrimSpace(input.DocumentID))
	if id == "" {
		return nil, RecordOutput{}, fmt.Errorf("%w: document_id is required", domain.ErrInvalidInput)
	}

	ds, err := s.dataset(ctx)
	if err != nil {
		return nil, RecordOutput{}, err
	}

	record, ok := ds.Get(id)
	if !ok {
		return nil, RecordOutput{}, fmt.Errorf("record %s: %w", id, domain.ErrNotFound)
	}

	return nil, toRecordOutput(record), nil
}

// handleListChanges handles the list_changes tool invocation.
func (s *Server) handleListChanges(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ChangesInput,
) (*mcp.CallToolResult, ChangesOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultChangeLimit
	}

	events, err := s.ports.Dataset.LoadChangeEvents(ctx)
	if err != nil {
		return nil, ChangesOutput{}, err
	}

	output := ChangesOutput{Changes: []ChangeOutput{}}
	for i := range events {
		if input.DocumentID != "" && events[i].DocumentID.String() != input.DocumentID {
			continue
		}
		output.Changes = append(output.Changes, toChangeOutput(events[i]))
		if len(output.Changes) == limit {
			break
		}
	}
	output.Count = len(output.Changes)

	return nil, output, nil
}

func (in QueryInput) state() (domain.QueryState, error) {
	filters := FilterInput{
		Search: in.Search,
		Type:   in.Type,
		Status: in.Status,
		From:   in.From,
		To:     in.To,
		Link:   in.Link,
	}
	state, err := filters.state(domain.DefaultQueryState())
	if err != nil {
		return state, err
	}
	if in.Sort != "" {
		key := domain.SortKey(in.Sort)
		if !key.IsValid() {
			return state, fmt.Errorf("%w: unknown sort %q", domain.ErrInvalidInput, in.Sort)
		}
		state = state.WithSort(key)
	}
	if in.PerPage > domain.MaxPageSize {
		return state, fmt.Errorf("%w: per_page may be at most %d", domain.ErrInvalidInput, domain.MaxPageSize)
	}
	if in.PerPage > 0 {
		state = state.WithPageSize(in.PerPage)
	}
	if in.Page > 0 {
		state = state.WithPage(in.Page)
	}
	return state, nil
}

// state applies the filters on top of base, after the share link.
func (in FilterInput) state(base domain.QueryState) (domain.QueryState, error) {
	state := base
	if in.Link != "" {
		linked, err := domain.ParseShareLink(in.Link)
		if err != nil {
			return state, fmt.Errorf("%w: link %q", domain.ErrInvalidInput, in.Link)
		}
		state = linked
	}
	if in.Search != "" {
		state = state.WithSearch(in.Search)
	}
	if in.Type != "" {
		state = state.WithType(in.Type)
	}
	if in.Status != "" {
		state = state.WithStatus(in.Status)
	}
	if in.From != "" || in.To != "" {
		from, to := state.From, state.To
		var err error
		if in.From != "" {
			if from, err = parseDate("from", in.From); err != nil {
				return state, err
			}
		}
		if in.To != "" {
			if to, err = parseDate("to", in.To); err != nil {
				return state, err
			}
		}
		state = state.WithDateRange(from, to)
	}
	return state, nil
}

func parseDate(field, value string) (time.Time, error) {
	if t, ok := domain.ParseISODate(value); ok {
		return t, nil
	}
	if t, ok := domain.ParseDate(value); ok {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: %s %q is not a date", domain.ErrInvalidInput, field, value)
}

func toRecordOutput(r domain.Record) RecordOutput {
	out := RecordOutput{
		DocumentID:   r.DocumentID.String(),
		Date:         r.Date,
		Title:        r.Title,
		DocumentType: r.TypeLabel(),
		Counterparty: r.Counterparty,
		Status:       r.Status,
		Link:         r.Link(),
	}
	for _, f := range r.Files {
		out.Files = append(out.Files, FileOutput{Text: f.Text, URL: f.URL})
	}
	return out
}

func toChangeOutput(e domain.ChangeEvent) ChangeOutput {
	out := ChangeOutput{
		Timestamp:  e.Timestamp,
		Type:       e.Type,
		DocumentID: e.DocumentID.String(),
		Title:      e.Title,
	}
	fields := make([]string, 0, len(e.Changes))
	for name := range e.Changes {
		fields = append(fields, name)
	}
	sort.Strings(fields)
	for _, name := range fields {
		c := e.Changes[name]
		out.Fields = append(out.Fields, FieldOutput{
			Field: name,
			Old:   fieldValue(c.Old),
			New:   fieldValue(c.New),
		})
	}
	return out
}

func fieldValue(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

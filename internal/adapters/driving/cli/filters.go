package cli

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/postliste/internal/core/domain"
)

// queryFlags holds the filter flags shared by search, stats, export,
// link and view save.
type queryFlags struct {
	docType string
	status  string
	from    string
	to      string
	sort    string
	perPage int
	page    int
	link    string
	view    string
}

func (f *queryFlags) bind(cmd *cobra.Command, paging bool) {
	flags := cmd.Flags()
	flags.StringVar(&f.docType, "type", "", "only records of this document type")
	flags.StringVar(&f.status, "status", "", "only records with this status")
	flags.StringVar(&f.from, "from", "", "earliest date, YYYY-MM-DD or DD.MM.YYYY")
	flags.StringVar(&f.to, "to", "", "latest date, YYYY-MM-DD or DD.MM.YYYY")
	flags.StringVar(&f.sort, "sort", "", "sort order: "+sortKeyList())
	flags.StringVar(&f.link, "link", "", "start from the query of a share link")
	flags.StringVar(&f.view, "view", "", "start from a saved view")
	if paging {
		flags.IntVar(&f.perPage, "per-page", 0, "records per page")
		flags.IntVar(&f.page, "page", 1, "page number")
	}
}

// state builds the query state. Precedence, lowest first: settings
// defaults, saved view, share link, explicit flags and search text.
func (f *queryFlags) state(ctx context.Context, cmd *cobra.Command, args []string) (domain.QueryState, error) {
	state := currentSettings().BaseQuery()

	if f.view != "" {
		if viewService == nil {
			return state, fmt.Errorf("view service not configured")
		}
		v, err := viewService.Get(ctx, f.view)
		if err != nil {
			return state, fmt.Errorf("view %q: %w", f.view, err)
		}
		state = v.Query
	}

	if f.link != "" {
		linked, err := domain.ParseShareLink(f.link)
		if err != nil {
			return state, fmt.Errorf("%w: share link %q", domain.ErrInvalidInput, f.link)
		}
		state = linked
	}

	flags := cmd.Flags()
	if len(args) > 0 {
		state = state.WithSearch(strings.Join(args, " "))
	}
	if flags.Changed("type") {
		state = state.WithType(f.docType)
	}
	if flags.Changed("status") {
		state = state.WithStatus(f.status)
	}
	if flags.Changed("from") || flags.Changed("to") {
		from, to := state.From, state.To
		var err error
		if flags.Changed("from") {
			if from, err = parseDateFlag("from", f.from); err != nil {
				return state, err
			}
		}
		if flags.Changed("to") {
			if to, err = parseDateFlag("to", f.to); err != nil {
				return state, err
			}
		}
		state = state.WithDateRange(from, to)
	}
	if flags.Changed("sort") {
		key := domain.SortKey(f.sort)
		if !key.IsValid() {
			return state, fmt.Errorf("%w: unknown sort %q (use %s)", domain.ErrInvalidInput, f.sort, sortKeyList())
		}
		state = state.WithSort(key)
	}
	if flags.Lookup("per-page") != nil && flags.Changed("per-page") {
		if f.perPage < 1 || f.perPage > domain.MaxPageSize {
			return state, fmt.Errorf("%w: --per-page must be between 1 and %d", domain.ErrInvalidInput, domain.MaxPageSize)
		}
		state = state.WithPageSize(f.perPage)
	}
	if flags.Lookup("page") != nil && flags.Changed("page") {
		state = state.WithPage(f.page)
	}
	return state, nil
}

// parseDateFlag accepts ISO dates and day-month-year dates.
// An empty value clears the bound.
func parseDateFlag(name, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	if t, ok := domain.ParseISODate(value); ok {
		return t, nil
	}
	if t, ok := domain.ParseDate(value); ok {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: --%s %q is not a date", domain.ErrInvalidInput, name, value)
}

func sortKeyList() string {
	keys := domain.SortKeys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return strings.Join(names, ", ")
}

// suggestFilters prints "did you mean" hints for type and status filters
// that name a value the dataset does not contain.
func suggestFilters(w io.Writer, ds *domain.Dataset, state domain.QueryState) {
	if queryService == nil {
		return
	}
	hint := func(label, value string, known []string) {
		if value == "" || slices.Contains(known, value) {
			return
		}
		fmt.Fprintf(w, "No records have %s %q.", label, value)
		if s := queryService.Suggest(known, value); len(s) > 0 {
			fmt.Fprintf(w, " Did you mean: %s?", strings.Join(s, ", "))
		}
		fmt.Fprintln(w)
	}
	hint("document type", state.Type, ds.Types())
	hint("status", state.Status, ds.Statuses())
}

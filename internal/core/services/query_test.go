package services

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/postliste/internal/core/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestQueryEngine_Query_DefaultState(t *testing.T) {
	engine := NewQueryEngine()

	page := engine.Query(sampleDataset(t), domain.DefaultQueryState())

	assert.Equal(t, []string{"6", "5", "3", "2", "1", "4"}, ids(page.Items))
	assert.Equal(t, 6, page.TotalMatched)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, domain.DefaultPageSize, page.PageSize)
	assert.Equal(t, 1, page.TotalPages)
}

func TestQueryEngine_Filter(t *testing.T) {
	ds := sampleDataset(t)
	base := domain.DefaultQueryState()

	tests := []struct {
		name  string
		state domain.QueryState
		want  []string
	}{
		{"search folds case and matches counterparty", base.WithSearch("budsjett"), []string{"5", "3", "1"}},
		{"search trims", base.WithSearch("  AVTALE "), []string{"6"}},
		{"search matches nothing", base.WithSearch("xyz"), []string{}},
		{"type", base.WithType("Inngående brev"), []string{"1", "4"}},
		{"status", base.WithStatus("Publisert"), []string{"6", "3", "1", "4"}},
		{"unknown status", base.WithStatus("Arkivert"), []string{}},
		{"date range inclusive", base.WithDateRange(day(2024, 1, 15), day(2024, 2, 20)), []string{"5", "3", "2"}},
		{"from only", base.WithDateRange(day(2024, 2, 1), time.Time{}), []string{"6", "5", "3"}},
		{"to only", base.WithDateRange(time.Time{}, day(2024, 1, 5)), []string{"1"}},
		{"from after to", base.WithDateRange(day(2024, 3, 1), day(2024, 1, 1)), []string{}},
		{"combined", base.WithStatus("Publisert").WithType("Inngående brev").WithSearch("budsjett"), []string{"1"}},
	}

	engine := NewQueryEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.Filter(ds, tt.state)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestQueryEngine_Sort(t *testing.T) {
	ds := sampleDataset(t)

	tests := []struct {
		sort domain.SortKey
		want []string
	}{
		{domain.SortDateDesc, []string{"6", "5", "3", "2", "1", "4"}},
		{domain.SortDateAsc, []string{"1", "2", "3", "5", "6", "4"}},
		{domain.SortTitleAsc, []string{"6", "1", "5", "3", "2", "4"}},
		{domain.SortTitleDesc, []string{"4", "2", "3", "5", "1", "6"}},
		{domain.SortTypeAsc, []string{"1", "4", "3", "2", "6", "5"}},
		{domain.SortTypeDesc, []string{"2", "6", "3", "1", "4", "5"}},
	}

	engine := NewQueryEngine()
	for _, tt := range tests {
		t.Run(tt.sort.String(), func(t *testing.T) {
			got := engine.Filter(ds, domain.DefaultQueryState().WithSort(tt.sort))
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestQueryEngine_Sort_IsStable(t *testing.T) {
	ds := newDataset(t,
		rec("a", "01.01.2024", "Same", "Notat", ""),
		rec("b", "01.01.2024", "Same", "Notat", ""),
		rec("c", "01.01.2024", "Same", "Notat", ""),
	)
	engine := NewQueryEngine()

	for _, key := range domain.SortKeys() {
		got := engine.Filter(ds, domain.DefaultQueryState().WithSort(key))
		assert.Equal(t, []string{"a", "b", "c"}, ids(got), key.String())
	}
}

func TestQueryEngine_Sort_MissingKeysLast(t *testing.T) {
	ds := newDataset(t,
		rec("blank", "", "", "", ""),
		rec("x", "02.01.2024", "Beta", "Notat", ""),
		rec("y", "01.01.2024", "Alfa", "Brev", ""),
	)
	engine := NewQueryEngine()

	for _, key := range domain.SortKeys() {
		got := engine.Filter(ds, domain.DefaultQueryState().WithSort(key))
		require.Len(t, got, 3)
		assert.Equal(t, "blank", got[2].DocumentID.String(), key.String())
	}
}

func TestQueryEngine_Query_Pagination(t *testing.T) {
	ds := sampleDataset(t)
	engine := NewQueryEngine()
	state := domain.DefaultQueryState().WithPageSize(4)

	first := engine.Query(ds, state)
	assert.Equal(t, []string{"6", "5", "3", "2"}, ids(first.Items))
	assert.Equal(t, 2, first.TotalPages)
	assert.True(t, first.HasNext())
	assert.False(t, first.HasPrev())

	second := engine.Query(ds, state.WithPage(2))
	assert.Equal(t, []string{"1", "4"}, ids(second.Items))
	assert.Equal(t, 6, second.TotalMatched)
	assert.False(t, second.HasNext())

	beyond := engine.Query(ds, state.WithPage(9))
	assert.Empty(t, beyond.Items)
	assert.NotNil(t, beyond.Items)
	assert.Equal(t, 9, beyond.Page)
	assert.Equal(t, 6, beyond.TotalMatched)
	assert.Equal(t, 2, beyond.TotalPages)
}

func TestQueryEngine_Query_ExtremePaging(t *testing.T) {
	ds := sampleDataset(t)
	engine := NewQueryEngine()

	tests := []struct {
		name      string
		state     domain.QueryState
		wantItems int
		wantPages int
	}{
		{"largest page from a link", domain.DecodeQueryState("page=9223372036854775807&perPage=10"), 0, 1},
		{"largest page and page size", domain.QueryState{Page: math.MaxInt, PageSize: math.MaxInt}, 0, 1},
		{"page size above the typed limit", domain.DefaultQueryState().WithPageSize(2000), 6, 1},
		{"largest page size", domain.DefaultQueryState().WithPageSize(math.MaxInt), 6, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var page domain.ResultPage
			require.NotPanics(t, func() { page = engine.Query(ds, tt.state) })

			assert.Len(t, page.Items, tt.wantItems)
			assert.Equal(t, 6, page.TotalMatched)
			assert.Equal(t, tt.wantPages, page.TotalPages)
			assert.Equal(t, tt.state.Normalized().PageSize, page.PageSize)
		})
	}
}

func TestQueryEngine_Query_PagesCoverFilterExactlyOnce(t *testing.T) {
	ds := sampleDataset(t)
	engine := NewQueryEngine()

	for size := 1; size <= 7; size++ {
		state := domain.DefaultQueryState().WithSort(domain.SortTitleAsc).WithPageSize(size)
		want := engine.Filter(ds, state)

		var got []domain.Record
		first := engine.Query(ds, state)
		for p := 1; p <= first.TotalPages; p++ {
			got = append(got, engine.Query(ds, state.WithPage(p)).Items...)
		}

		assert.Equal(t, ids(want), ids(got), "page size %d", size)
	}
}

func TestQueryEngine_Filter_AddingAFilterNeverGrowsTheResult(t *testing.T) {
	ds := sampleDataset(t)
	engine := NewQueryEngine()
	base := domain.DefaultQueryState().WithSearch("e")

	all := engine.Filter(ds, base)
	narrowed := []domain.QueryState{
		base.WithType("Utgående brev"),
		base.WithStatus("Publisert"),
		base.WithDateRange(day(2024, 1, 1), day(2024, 1, 31)),
	}

	allIDs := ids(all)
	for _, state := range narrowed {
		subset := engine.Filter(ds, state)
		assert.LessOrEqual(t, len(subset), len(all))
		for _, id := range ids(subset) {
			assert.Contains(t, allIDs, id)
		}
	}
}

func TestQueryEngine_Query_BudgetExample(t *testing.T) {
	ds := newDataset(t,
		rec("1", "01.01.2024", "Budget 2024", "Notat", "Publisert"),
		rec("2", "02.01.2024", "Revised BUDGET", "Notat", "Publisert"),
		rec("3", "03.01.2024", "Annual report", "Notat", "Publisert"),
	)
	state := domain.DefaultQueryState().WithSearch("budget").WithPageSize(10)

	page := NewQueryEngine().Query(ds, state)

	assert.Equal(t, 2, page.TotalMatched)
	assert.Equal(t, 1, page.TotalPages)
}

func TestQueryEngine_Query_NormalisesMisuse(t *testing.T) {
	ds := sampleDataset(t)
	state := domain.QueryState{Page: -3, PageSize: 0, Sort: "sideways"}

	page := NewQueryEngine().Query(ds, state)

	assert.Equal(t, 1, page.Page)
	assert.Equal(t, domain.DefaultPageSize, page.PageSize)
	assert.Equal(t, []string{"6", "5", "3", "2", "1", "4"}, ids(page.Items))
}

func TestQueryEngine_Query_NilDataset(t *testing.T) {
	page := NewQueryEngine().Query(nil, domain.DefaultQueryState())

	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.TotalMatched)
	assert.Equal(t, 1, page.TotalPages)
}

func TestQueryEngine_Query_DoesNotShareBacking(t *testing.T) {
	ds := sampleDataset(t)
	engine := NewQueryEngine()

	page := engine.Query(ds, domain.DefaultQueryState())
	page.Items[0].Title = "changed"

	again := engine.Query(ds, domain.DefaultQueryState())
	assert.Equal(t, "Avtale", again.Items[0].Title)
}

func TestQueryEngine_Filter_UsesISODateFallback(t *testing.T) {
	r := rec("iso", "", "Vedtak", "Notat", "")
	r.DateISO = "2024-01-10"
	ds := newDataset(t, r, rec("raw", "01.02.2024", "Brev", "Notat", ""))

	got := NewQueryEngine().Filter(ds, domain.DefaultQueryState().WithDateRange(day(2024, 1, 1), day(2024, 1, 31)))

	assert.Equal(t, []string{"iso"}, ids(got))
}

func TestQueryEngine_Suggest(t *testing.T) {
	candidates := []string{"Inngående brev", "Utgående brev", "Notat", "Internt notat"}
	engine := NewQueryEngine()

	assert.Equal(t, []string{"Notat", "Internt notat"}, engine.Suggest(candidates, "notat"))
	assert.Equal(t, []string{"Utgående brev"}, engine.Suggest(candidates, "UTG"))
	assert.Contains(t, engine.Suggest(candidates, "ingbrev"), "Inngående brev")
	assert.Nil(t, engine.Suggest(candidates, "  "))
	assert.Nil(t, engine.Suggest(nil, "notat"))
}

func TestQueryEngine_Suggest_Limit(t *testing.T) {
	candidates := []string{"brev 1", "brev 2", "brev 3", "brev 4", "brev 5", "brev 6", "brev 7"}

	got := NewQueryEngine().Suggest(candidates, "brev")

	assert.Len(t, got, maxSuggestions)
}

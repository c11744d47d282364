package services

import (
	"sort"

	"github.com/custodia-labs/postliste/internal/core/domain"
	"github.com/custodia-labs/postliste/internal/core/ports/driving"
)

// Ensure StatsService implements the interface.
var _ driving.StatsService = (*StatsService)(nil)

// StatsService groups records into counts.
type StatsService struct{}

// NewStatsService creates a new statistics service.
func NewStatsService() *StatsService {
	return &StatsService{}
}

// Aggregate counts records by month, year, type and status.
// Records whose date does not parse are left out of the month and year
// counts but still counted by type and status.
func (s *StatsService) Aggregate(records []domain.Record) domain.Statistics {
	byMonth := make(map[string]int)
	byYear := make(map[string]int)
	byType := make(map[string]int)
	published := 0

	for i := range records {
		r := &records[i]
		if date, ok := r.ParsedDate(); ok {
			byMonth[date.Format("2006-01")]++
			byYear[date.Format("2006")]++
		}
		byType[r.TypeLabel()]++
		if r.IsPublished() {
			published++
		}
	}

	return domain.Statistics{
		Total:   len(records),
		ByMonth: sortedCounts(byMonth),
		ByType:  sortedCounts(byType),
		ByStatus: []domain.Count{
			{Label: domain.StatusBucketPublished, N: published},
			{Label: domain.StatusBucketAccessRequired, N: len(records) - published},
		},
		ByYear: sortedCounts(byYear),
	}
}

func sortedCounts(m map[string]int) []domain.Count {
	counts := make([]domain.Count, 0, len(m))
	for label, n := range m {
		counts = append(counts, domain.Count{Label: label, N: n})
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].Label < counts[j].Label })
	return counts
}

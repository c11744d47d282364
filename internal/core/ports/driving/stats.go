package driving

import "github.com/custodia-labs/postliste/internal/core/domain"

// StatsService aggregates records into grouped counts.
type StatsService interface {
	// Aggregate counts records per month, type, status and year.
	Aggregate(records []domain.Record) domain.Statistics
}

package driving

import "github.com/custodia-labs/postliste/internal/core/domain"

// QueryService answers queries against a loaded dataset.
// Methods never fail: misuse yields a well-formed, possibly empty result.
type QueryService interface {
	// Query returns the requested page of the filtered, sorted records.
	Query(ds *domain.Dataset, state domain.QueryState) domain.ResultPage

	// Filter returns every record matching state, sorted, unpaginated.
	Filter(ds *domain.Dataset, state domain.QueryState) []domain.Record

	// Suggest returns candidates close to input, best first.
	Suggest(candidates []string, input string) []string
}

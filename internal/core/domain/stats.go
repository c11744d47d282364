package domain

// Status bucket labels of Statistics.ByStatus, in their fixed order.
const (
	StatusBucketPublished      = "Published"
	StatusBucketAccessRequired = "Access request required"
)

// Count is one labelled group count.
type Count struct {
	Label string `json:"label" yaml:"label"`
	N     int    `json:"count" yaml:"count"`
}

// Statistics holds grouped record counts.
// ByMonth, ByType and ByYear are sorted by label; ByStatus always holds
// the published bucket followed by the access request bucket.
type Statistics struct {
	Total    int     `json:"total" yaml:"total"`
	ByMonth  []Count `json:"by_month" yaml:"by_month"`
	ByType   []Count `json:"by_type" yaml:"by_type"`
	ByStatus []Count `json:"by_status" yaml:"by_status"`
	ByYear   []Count `json:"by_year" yaml:"by_year"`
}

// CountMap converts an ordered count list to a map.
func CountMap(counts []Count) map[string]int {
	m := make(map[string]int, len(counts))
	for _, c := range counts {
		m[c.Label] = c.N
	}
	return m
}

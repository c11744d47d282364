package domain

// ResultPage is one page of a query result.
type ResultPage struct {
	// Items are the records on this page, in result order.
	Items []Record `json:"items" yaml:"items"`

	// TotalMatched is the number of records passing all filters.
	TotalMatched int `json:"total_matched" yaml:"total_matched"`

	// Page is the requested 1-based page number.
	Page int `json:"page" yaml:"page"`

	// PageSize is the requested page size.
	PageSize int `json:"page_size" yaml:"page_size"`

	// TotalPages is ceil(TotalMatched / PageSize), at least 1.
	TotalPages int `json:"total_pages" yaml:"total_pages"`
}

// HasPrev reports whether an earlier page exists.
func (p ResultPage) HasPrev() bool {
	return p.Page > 1
}

// HasNext reports whether a later page exists.
func (p ResultPage) HasNext() bool {
	return p.Page < p.TotalPages
}

// Offset returns the index of the first item within the full result.
func (p ResultPage) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

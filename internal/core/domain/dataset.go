package domain

import "sort"

// Dataset is the merged record collection, keyed by DocumentID.
// It is built once per session and never modified afterwards.
type Dataset struct {
	order []DocumentID
	byID  map[DocumentID]Record
}

// NewDataset folds records into a dataset. When an identifier repeats,
// the later record replaces the earlier one but keeps the earlier
// record's position, so iteration order depends only on input order.
// Records without an identifier cannot be addressed and are dropped;
// the number dropped is returned as skipped.
func NewDataset(records []Record) (ds *Dataset, skipped int) {
	ds = &Dataset{
		order: make([]DocumentID, 0, len(records)),
		byID:  make(map[DocumentID]Record, len(records)),
	}
	for i := range records {
		id := records[i].DocumentID
		if id == "" {
			skipped++
			continue
		}
		if _, seen := ds.byID[id]; !seen {
			ds.order = append(ds.order, id)
		}
		ds.byID[id] = records[i]
	}
	return ds, skipped
}

// Len returns the number of distinct records.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.order)
}

// Get returns the record with the given identifier.
func (d *Dataset) Get(id DocumentID) (Record, bool) {
	if d == nil {
		return Record{}, false
	}
	r, ok := d.byID[id]
	return r, ok
}

// Records returns all records in dataset order.
// The returned slice is a copy and may be modified by the caller.
func (d *Dataset) Records() []Record {
	if d == nil {
		return nil
	}
	out := make([]Record, len(d.order))
	for i, id := range d.order {
		out[i] = d.byID[id]
	}
	return out
}

// Types returns the distinct non-empty document types, sorted.
func (d *Dataset) Types() []string {
	return d.distinct(func(r Record) string { return r.DocumentType })
}

// Statuses returns the distinct non-empty status values, sorted.
func (d *Dataset) Statuses() []string {
	return d.distinct(func(r Record) string { return r.Status })
}

func (d *Dataset) distinct(field func(Record) string) []string {
	if d == nil {
		return nil
	}
	seen := make(map[string]struct{})
	for _, id := range d.order {
		if v := field(d.byID[id]); v != "" {
			seen[v] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

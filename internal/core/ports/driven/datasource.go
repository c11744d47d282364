package driven

import "context"

// DataSource fetches the published data files by name.
// Names are relative to the source location, e.g. "postliste_index.json".
type DataSource interface {
	// Fetch returns the raw bytes of the named file.
	// A missing file yields an error wrapping domain.ErrNotFound.
	Fetch(ctx context.Context, name string) ([]byte, error)

	// Location describes where files are read from, for diagnostics.
	Location() string
}

package domain

import "time"

// FieldChange is the before/after value of one changed field.
// Values keep their JSON types (string, number or null).
type FieldChange struct {
	Old any `json:"gammel" yaml:"gammel"`
	New any `json:"ny" yaml:"ny"`
}

// ChangeEvent is one entry of the change log.
type ChangeEvent struct {
	// Timestamp is the raw timestamp text, e.g. "2025-01-24 06:00:12".
	Timestamp string `json:"tidspunkt" yaml:"tidspunkt"`

	// At is the parsed Timestamp. It is zero when the text does not parse.
	At time.Time `json:"-" yaml:"-"`

	// Type describes the change, e.g. "ny" for new records.
	Type string `json:"type" yaml:"type"`

	// DocumentID is the record the change applies to.
	DocumentID DocumentID `json:"dokumentID" yaml:"dokumentID"`

	// Title is the record title at the time of the change.
	Title string `json:"tittel" yaml:"tittel"`

	// Changes maps field names to their old and new values.
	Changes map[string]FieldChange `json:"endringer,omitempty" yaml:"endringer,omitempty"`
}

package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Status labels used by the records log.
const (
	// PublishedStatus is the status value of records whose files are public.
	PublishedStatus = "Publisert"

	// UnknownType labels records without a document type.
	UnknownType = "Unknown"
)

// DocumentID identifies a record. The published files use both JSON
// strings and numbers for it; both decode to the same textual form.
type DocumentID string

// UnmarshalJSON accepts a string, a number or null.
func (id *DocumentID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = DocumentID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("document id: %w", err)
	}
	*id = DocumentID(n.String())
	return nil
}

// String returns the identifier text.
func (id DocumentID) String() string {
	return string(id)
}

// Attachment is a published file belonging to a record.
type Attachment struct {
	Text string `json:"tekst" yaml:"tekst"`
	URL  string `json:"url" yaml:"url"`
}

// Record is one disclosed document from the records log.
// Every field except DocumentID may be missing in the source data.
type Record struct {
	// DocumentID is the unique key of the record.
	DocumentID DocumentID `json:"dokumentID" yaml:"dokumentID"`

	// Date is the raw day-month-year date, e.g. "24.01.2025".
	// It may be malformed; use ParseDate.
	Date string `json:"dato" yaml:"dato"`

	// DateISO is the scraper's normalised date, when present.
	DateISO string `json:"dato_iso,omitempty" yaml:"dato_iso,omitempty"`

	// Title is the free-text document title.
	Title string `json:"tittel" yaml:"tittel"`

	// DocumentType is the category label, e.g. "Inngående brev".
	DocumentType string `json:"dokumenttype" yaml:"dokumenttype"`

	// Counterparty is the sender or receiver.
	Counterparty string `json:"avsender_mottaker" yaml:"avsender_mottaker"`

	// Status is "Publisert" or a label meaning access must be requested.
	Status string `json:"status" yaml:"status"`

	// JournalLink is the journal entry URL.
	JournalLink string `json:"journal_link,omitempty" yaml:"journal_link,omitempty"`

	// DetailLink is the legacy detail page URL.
	DetailLink string `json:"detalj_link,omitempty" yaml:"detalj_link,omitempty"`

	// Files lists the published attachments.
	Files []Attachment `json:"filer,omitempty" yaml:"filer,omitempty"`
}

// recordJSON mirrors Record with the alternative English field names.
type recordJSON struct {
	DocumentID   DocumentID   `json:"dokumentID"`
	Date         string       `json:"dato"`
	DateISO      string       `json:"dato_iso"`
	Title        string       `json:"tittel"`
	DocumentType string       `json:"dokumenttype"`
	Counterparty string       `json:"avsender_mottaker"`
	Status       string       `json:"status"`
	JournalLink  string       `json:"journal_link"`
	DetailLink   string       `json:"detalj_link"`
	Files        []Attachment `json:"filer"`

	AltDocumentID   DocumentID `json:"documentId"`
	AltDate         string     `json:"date"`
	AltTitle        string     `json:"title"`
	AltDocumentType string     `json:"documentType"`
	AltCounterparty string     `json:"counterparty"`
	AltJournalLink  string     `json:"journalLink"`
	AltDetailLink   string     `json:"detailLink"`
}

// UnmarshalJSON decodes a record, falling back to the English field
// names when the published names are absent.
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw recordJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = Record{
		DocumentID:   firstNonEmpty(raw.DocumentID, raw.AltDocumentID),
		Date:         firstNonEmpty(raw.Date, raw.AltDate),
		DateISO:      raw.DateISO,
		Title:        firstNonEmpty(raw.Title, raw.AltTitle),
		DocumentType: firstNonEmpty(raw.DocumentType, raw.AltDocumentType),
		Counterparty: firstNonEmpty(raw.Counterparty, raw.AltCounterparty),
		Status:       raw.Status,
		JournalLink:  firstNonEmpty(raw.JournalLink, raw.AltJournalLink),
		DetailLink:   firstNonEmpty(raw.DetailLink, raw.AltDetailLink),
		Files:        raw.Files,
	}
	return nil
}

func firstNonEmpty[T ~string](values ...T) T {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// TypeLabel returns the document type, or UnknownType when blank.
func (r Record) TypeLabel() string {
	if strings.TrimSpace(r.DocumentType) == "" {
		return UnknownType
	}
	return r.DocumentType
}

// Link returns the journal link, falling back to the detail link.
func (r Record) Link() string {
	if r.JournalLink != "" {
		return r.JournalLink
	}
	return r.DetailLink
}

// IsPublished reports whether the record's files are public.
func (r Record) IsPublished() bool {
	return r.Status == PublishedStatus
}

// ParsedDate returns the record date. The raw Date is preferred; the
// normalised DateISO is used when Date does not parse.
func (r Record) ParsedDate() (time.Time, bool) {
	if t, ok := ParseDate(r.Date); ok {
		return t, true
	}
	return ParseISODate(r.DateISO)
}

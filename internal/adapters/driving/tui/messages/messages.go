// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/postliste/internal/core/domain"
)

// DatasetLoaded carries the merged dataset, or the load failure.
type DatasetLoaded struct {
	Dataset *domain.Dataset
	Err     error
}

// RecordSelected is sent when a record is opened from the result list.
type RecordSelected struct {
	Record domain.Record
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewBrowse is the search box, filters and result list.
	ViewBrowse ViewType = iota
	// ViewRecord shows every field of one record.
	ViewRecord
	// ViewHelp is the keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewBrowse:
		return "browse"
	case ViewRecord:
		return "record"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

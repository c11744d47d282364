package domain

import "time"

// SavedView is a named query kept between sessions.
type SavedView struct {
	// ID is the unique identifier.
	ID string

	// Name is the user-chosen unique name.
	Name string

	// Query is the saved state. Page is stored as requested.
	Query QueryState

	// CreatedAt is when the view was saved.
	CreatedAt time.Time
}

// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Event is a marketplace event (exhibition, fair, pitch day) owned by exactly
// one organizer. Only the owning organizer may create, edit or delete it.
type Event struct {
	ID          uuid.UUID // The Global Unique Identifier for the event.
	Name        string    // Display name of the event.
	Category    string    // Event type, e.g., "Exhibition", "Workshop".
	Date        time.Time // When the event takes place.
	Description string    // Long-form description shown on the detail view.
	Location    string    // Venue or city.
	OrganizerID uuid.UUID // The organizer who owns this event.
	Eligibility string    // Industry-focus / eligibility text shown to applicants.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Upcoming reports whether the event date falls on or after the given day.
// Comparison is by UTC calendar date, not instant, so an event later today
// still counts as upcoming.
func (e *Event) Upcoming(now time.Time) bool {
	today := now.UTC().Truncate(24 * time.Hour)

	return !e.Date.UTC().Truncate(24 * time.Hour).Before(today)
}

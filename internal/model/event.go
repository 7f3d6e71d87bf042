// Package model defines the data structures used throughout the application.
// In Go, we use structs to represent our data — similar to classes in other languages,
// but without inheritance. Go favours composition over inheritance.
//
// Two shapes exist for the same event on purpose:
//   - RemoteEvent is the WIRE shape, owned by the backend. Its json tags must
//     match the backend's field names exactly (eventDate, maxCapacity).
//   - ViewEvent is the LOCAL shape the UI renders — the join of a RemoteEvent,
//     its live registration count, and the local membership cache. It is derived
//     on every load and never persisted.
package model

import "time"

// RemoteEvent is an event record as the backend sends and receives it.
// ID is a pointer because a draft submitted for creation has no id yet —
// identity is assigned exclusively by the server.
type RemoteEvent struct {
	ID          *int64 `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	EventDate   string `json:"eventDate"` // ISO-8601, e.g. "2026-09-12T18:30:00"
	Location    string `json:"location"`
	MaxCapacity int    `json:"maxCapacity"`
}

// EventDraft is a client-constructed event payload prior to server-assigned
// identity. It deliberately has no ID field.
type EventDraft struct {
	Title       string
	Description string
	EventDate   string
	Location    string
	MaxCapacity int
}

// ViewEvent is the merged, UI-ready representation of one event.
// CurrentAttendees reflects the remote registration count at assembly time and
// may be briefly stale after an optimistic local update; the next reload is
// authoritative. IsRegistered comes from the local membership cache, not from
// the backend.
type ViewEvent struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Date             string `json:"date"`
	Location         string `json:"location"`
	Description      string `json:"description"`
	MaxAttendees     int    `json:"maxAttendees"`
	CurrentAttendees int    `json:"currentAttendees"`
	IsRegistered     bool   `json:"isRegistered"`
}

// IsFull returns true when no seats remain.
func (e *ViewEvent) IsFull() bool {
	return e.CurrentAttendees >= e.MaxAttendees
}

// AvailableSpots returns the number of remaining seats, clamped at zero.
// Inconsistent remote data can make the raw difference negative; that is a
// display concern only and must never render below zero.
func (e *ViewEvent) AvailableSpots() int {
	spots := e.MaxAttendees - e.CurrentAttendees
	if spots < 0 {
		return 0
	}
	return spots
}

// IsPast reports whether the event date is before now. An unparseable date is
// treated as not past so a malformed record stays visible and registrable.
func (e *ViewEvent) IsPast(now time.Time) bool {
	eventTime, err := parseEventDate(e.Date)
	if err != nil {
		return false
	}
	return eventTime.Before(now)
}

// CanRegister reports registration eligibility: never when already registered,
// full, or past, regardless of the other two.
func (e *ViewEvent) CanRegister(now time.Time) bool {
	return !e.IsRegistered && !e.IsFull() && !e.IsPast(now)
}

// parseEventDate accepts the timestamp layouts the backend has been observed
// to emit: RFC 3339 with or without offset, and a bare date.
func parseEventDate(value string) (time.Time, error) {
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02",
	}
	var lastErr error
	for _, layout := range layouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

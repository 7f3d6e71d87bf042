// Package view builds the UI-ready event list out of its three sources: the
// remote event records, the live registration counts, and the local
// membership cache. The backend has no notion of "did this user register", so
// the join happens here and nowhere else.
package view

import (
	"context"
	"strconv"

	"github.com/sakif/eventhub-client/internal/model"
)

// CountFunc fetches the registration count for one event. It cannot fail —
// the API client degrades every count failure to zero.
type CountFunc func(ctx context.Context, eventID string) int

// Assemble merges remote events, per-event counts, and membership into
// ViewEvents. Order and length of the remote listing are preserved exactly;
// no client-side sorting or filtering happens here.
//
// An event without a server-assigned id is a degraded record (not expected in
// steady state): it gets an empty-string id and a zero count, and the count
// function is never called for it.
func Assemble(ctx context.Context, remote []model.RemoteEvent, count CountFunc, membership map[string]bool) []model.ViewEvent {
	events := make([]model.ViewEvent, 0, len(remote))
	for _, re := range remote {
		id := ""
		attendees := 0
		if re.ID != nil {
			id = strconv.FormatInt(*re.ID, 10)
			attendees = count(ctx, id)
		}

		events = append(events, model.ViewEvent{
			ID:               id,
			Title:            re.Title,
			Date:             re.EventDate,
			Location:         re.Location,
			Description:      re.Description,
			MaxAttendees:     re.MaxCapacity,
			CurrentAttendees: attendees,
			IsRegistered:     membership[id],
		})
	}
	return events
}

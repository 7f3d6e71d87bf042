package model

import (
	"testing"
	"time"
)

var testNow = time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

func TestIsFull(t *testing.T) {
	tests := []struct {
		name     string
		current  int
		max      int
		wantFull bool
	}{
		{name: "empty event", current: 0, max: 10, wantFull: false},
		{name: "one spot left", current: 9, max: 10, wantFull: false},
		{name: "exactly at capacity", current: 10, max: 10, wantFull: true},
		{name: "over capacity", current: 12, max: 10, wantFull: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &ViewEvent{CurrentAttendees: tt.current, MaxAttendees: tt.max}
			if got := e.IsFull(); got != tt.wantFull {
				t.Errorf("IsFull() with %d/%d = %v, want %v", tt.current, tt.max, got, tt.wantFull)
			}
		})
	}
}

func TestAvailableSpots(t *testing.T) {
	tests := []struct {
		name    string
		current int
		max     int
		want    int
	}{
		{name: "spots remaining", current: 3, max: 10, want: 7},
		{name: "no spots remaining", current: 10, max: 10, want: 0},
		{name: "inconsistent remote data clamps to zero", current: 12, max: 10, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &ViewEvent{CurrentAttendees: tt.current, MaxAttendees: tt.max}
			if got := e.AvailableSpots(); got != tt.want {
				t.Errorf("AvailableSpots() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIsPast(t *testing.T) {
	tests := []struct {
		name string
		date string
		want bool
	}{
		{name: "future event", date: "2026-12-01T18:00:00", want: false},
		{name: "past event", date: "2026-01-15T18:00:00", want: true},
		{name: "RFC3339 with offset", date: "2025-06-01T18:00:00Z", want: true},
		{name: "bare date in the past", date: "2026-08-28", want: true},
		{name: "unparseable date treated as not past", date: "next tuesday", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &ViewEvent{Date: tt.date}
			if got := e.IsPast(testNow); got != tt.want {
				t.Errorf("IsPast(%q) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}

func TestCanRegister(t *testing.T) {
	future := "2026-12-01T18:00:00"
	past := "2026-01-15T18:00:00"

	tests := []struct {
		name  string
		event ViewEvent
		want  bool
	}{
		{
			name:  "open future event",
			event: ViewEvent{Date: future, CurrentAttendees: 1, MaxAttendees: 5},
			want:  true,
		},
		{
			name:  "already registered blocks regardless of capacity",
			event: ViewEvent{Date: future, CurrentAttendees: 0, MaxAttendees: 5, IsRegistered: true},
			want:  false,
		},
		{
			name:  "full event blocks at the boundary",
			event: ViewEvent{Date: future, CurrentAttendees: 5, MaxAttendees: 5},
			want:  false,
		},
		{
			name:  "past event blocks even with spots",
			event: ViewEvent{Date: past, CurrentAttendees: 0, MaxAttendees: 5},
			want:  false,
		},
		{
			name:  "registered AND full AND past still just false",
			event: ViewEvent{Date: past, CurrentAttendees: 9, MaxAttendees: 5, IsRegistered: true},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.event.CanRegister(testNow); got != tt.want {
				t.Errorf("CanRegister() = %v, want %v", got, tt.want)
			}
		})
	}
}

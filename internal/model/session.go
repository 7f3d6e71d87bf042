// Package model defines the data structures used throughout the application.
package model

// Session is the current authenticated identity. It lives in process memory
// and is mirrored to the local store so a restart restores it without a
// network call. Absence of a session is a valid state (anonymous).
//
// WHY NO TOKEN?
// The backend contract has no token lifecycle — login returns the user's
// email and display name and nothing else. The session is exactly that pair.
type Session struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

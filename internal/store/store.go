// Package store defines the local persistence interfaces — the client-side
// stand-in for browser storage. Two concerns live here: the current session
// and the per-user registration membership cache.
package store

import (
	"context"

	"github.com/sakif/eventhub-client/internal/model"
)

// SessionStore persists the current authenticated identity. Exactly one
// session is active at a time; absence is a valid state.
type SessionStore interface {
	// Restore returns the persisted session, or nil if there is none.
	// Malformed stored data is treated as absent, never as an error.
	Restore(ctx context.Context) (*model.Session, error)
	// Establish persists the session, overwriting any prior one.
	Establish(ctx context.Context, s model.Session) error
	// Clear removes the persisted session. Dependent view state (events,
	// membership) is the controller's responsibility, not the store's.
	Clear(ctx context.Context) error
}

// MembershipStore persists the set of event ids each user has registered
// for. The set grows monotonically — there is no unregister operation, and
// membership deliberately survives logout so re-login restores it.
type MembershipStore interface {
	// Load returns the set of event ids registered under email. An absent
	// record yields an empty set.
	Load(ctx context.Context, email string) (map[string]bool, error)
	// RecordRegistration durably adds eventID to email's set before
	// returning. Recording an already-present id is a no-op.
	RecordRegistration(ctx context.Context, email, eventID string) error
}

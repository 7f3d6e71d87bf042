package sqlite

import (
	"context"
	"fmt"

	"github.com/sakif/eventhub-client/internal/store"
)

// Compile-time check that *DB implements store.MembershipStore.
var _ store.MembershipStore = (*DB)(nil)

// Load returns the set of event ids email has registered for. No rows means
// the empty set.
func (db *DB) Load(ctx context.Context, email string) (map[string]bool, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT event_id FROM registrations WHERE email = ?`, email)
	if err != nil {
		return nil, fmt.Errorf("loading membership for %s: %w", email, err)
	}
	defer rows.Close()

	membership := make(map[string]bool)
	for rows.Next() {
		var eventID string
		if err := rows.Scan(&eventID); err != nil {
			return nil, fmt.Errorf("scanning membership row: %w", err)
		}
		membership[eventID] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating membership rows: %w", err)
	}

	return membership, nil
}

// RecordRegistration durably records that email registered for eventID.
// INSERT OR IGNORE against the (email, event_id) primary key makes repeat
// recordings a no-op, and the write is synchronous: when this returns nil,
// the registration is on disk.
func (db *DB) RecordRegistration(ctx context.Context, email, eventID string) error {
	_, err := db.conn.ExecContext(ctx,
		`INSERT OR IGNORE INTO registrations (email, event_id) VALUES (?, ?)`,
		email, eventID)
	if err != nil {
		return fmt.Errorf("recording registration %s/%s: %w", email, eventID, err)
	}
	return nil
}

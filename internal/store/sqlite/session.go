package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/sakif/eventhub-client/internal/model"
	"github.com/sakif/eventhub-client/internal/store"
)

// Compile-time check that *DB implements store.SessionStore.
var _ store.SessionStore = (*DB)(nil)

// Restore reads the persisted session. A missing row means no session — that
// is the normal anonymous state, not an error. A row that has decayed into
// something unusable (blank email) is treated the same way, so a corrupt
// local database can never block startup.
func (db *DB) Restore(ctx context.Context) (*model.Session, error) {
	var s model.Session
	err := db.conn.QueryRowContext(ctx,
		`SELECT email, display_name FROM session WHERE id = 1`,
	).Scan(&s.Email, &s.DisplayName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("restoring session: %w", err)
	}

	if strings.TrimSpace(s.Email) == "" {
		return nil, nil
	}
	return &s, nil
}

// Establish persists the session, overwriting any prior one. Idempotent.
func (db *DB) Establish(ctx context.Context, s model.Session) error {
	_, err := db.conn.ExecContext(ctx, `
		INSERT INTO session (id, email, display_name, updated_at)
		VALUES (1, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			email        = excluded.email,
			display_name = excluded.display_name,
			updated_at   = CURRENT_TIMESTAMP
	`, s.Email, s.DisplayName)
	if err != nil {
		return fmt.Errorf("establishing session: %w", err)
	}
	return nil
}

// Clear removes the persisted session. Clearing when no session exists is
// not an error.
func (db *DB) Clear(ctx context.Context) error {
	_, err := db.conn.ExecContext(ctx, `DELETE FROM session WHERE id = 1`)
	if err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	return nil
}

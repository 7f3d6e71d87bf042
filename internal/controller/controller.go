// Package controller owns the application's view state and is the only
// component that mutates it.
//
// SINGLE-WRITER DISCIPLINE:
// The browser version of this app relied on UI interaction to serialize
// mutations — nothing enforced it. Here the discipline is structural: every
// mutating action (login, signup, reload, create, register, logout) runs
// under one mutex, and reads hand out copies. A second reload requested while
// one is in flight simply queues behind it; the last one to finish owns the
// view state.
//
// FAILURE CONTRACT:
// Every operation either completes and updates state, or fails and leaves
// state exactly as it was. Callers turn the returned error into a
// human-readable line with apperror.Message.
package controller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/sakif/eventhub-client/internal/api"
	"github.com/sakif/eventhub-client/internal/apperror"
	"github.com/sakif/eventhub-client/internal/model"
	"github.com/sakif/eventhub-client/internal/store"
	"github.com/sakif/eventhub-client/internal/view"
)

// State is the controller's lifecycle phase.
type State string

const (
	StateAnonymous State = "anonymous"
	StateLoading   State = "loading"
	StateReady     State = "ready"
)

// Filter narrows which events Events returns. It never changes server state.
type Filter string

const (
	FilterAll        Filter = "all"
	FilterRegistered Filter = "registered"
)

// Controller orchestrates the load-on-login, create, register, filter, and
// logout flows over the API client and the local stores.
type Controller struct {
	client     *api.Client
	sessions   store.SessionStore
	membership store.MembershipStore
	logger     *slog.Logger
	now        func() time.Time // injectable clock for eligibility checks

	mu      sync.Mutex
	state   State
	filter  Filter
	session *model.Session
	events  []model.ViewEvent
	member  map[string]bool
}

// New creates a Controller in the anonymous state.
func New(client *api.Client, sessions store.SessionStore, membership store.MembershipStore, logger *slog.Logger) *Controller {
	return &Controller{
		client:     client,
		sessions:   sessions,
		membership: membership,
		logger:     logger,
		now:        time.Now,
		state:      StateAnonymous,
		filter:     FilterAll,
	}
}

// RestoreSession re-establishes a persisted session at startup. Returns true
// when a session was restored. No session (or a malformed stored one) is the
// normal anonymous start, not an error.
func (c *Controller) RestoreSession(ctx context.Context) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, err := c.sessions.Restore(ctx)
	if err != nil {
		return false, err
	}
	if s == nil {
		return false, nil
	}

	if err := c.enterSessionLocked(ctx, *s); err != nil {
		return false, err
	}
	return true, nil
}

// Login authenticates against the backend, persists the session, loads the
// user's membership cache, and performs the initial event load.
//
// A failed event load does not undo the login: the session is established,
// the list stays empty, and the load error is logged — an explicit Reload
// recovers.
func (c *Controller) Login(ctx context.Context, email, password string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	auth, err := c.client.Login(ctx, email, password)
	if err != nil {
		return err
	}

	s := model.Session{Email: auth.Email, DisplayName: auth.UserName}
	if err := c.sessions.Establish(ctx, s); err != nil {
		return err
	}

	if err := c.enterSessionLocked(ctx, s); err != nil {
		return err
	}

	c.logger.Info("logged in", slog.String("email", s.Email))
	return nil
}

// Signup creates a new account and returns the server's confirmation
// message. It does not establish a session — the caller logs in next.
func (c *Controller) Signup(ctx context.Context, name, email, password string) (string, error) {
	return c.client.RegisterAccount(ctx, name, email, password)
}

// Reload re-runs the full assembler pipeline. The freshest completed reload
// owns the view state.
func (c *Controller) Reload(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session == nil {
		return apperror.ValidationFailed("You need to log in first")
	}
	return c.reloadLocked(ctx)
}

// Create submits a draft via the API and, on success, re-derives the whole
// list from the server rather than inserting locally — an id-less placeholder
// would be inconsistent with server state. Returns the server's confirmation
// message.
func (c *Controller) Create(ctx context.Context, draft model.EventDraft) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session == nil {
		return "", apperror.ValidationFailed("You need to log in first")
	}

	result, err := c.client.CreateEvent(ctx, draft)
	if err != nil {
		return "", err
	}

	// The create itself succeeded; a failed follow-up reload just leaves the
	// list one refresh behind.
	if err := c.reloadLocked(ctx); err != nil {
		c.logger.Warn("reload after create failed", slog.String("error", err.Error()))
	}

	return result.Message, nil
}

// Register registers the current user for eventID. On success the membership
// cache is persisted and the affected event is updated in place — attendee
// count incremented by one, IsRegistered flipped — without a re-fetch. The
// displayed count may therefore be briefly stale; the next reload is
// authoritative.
func (c *Controller) Register(ctx context.Context, eventID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session == nil {
		return apperror.ValidationFailed("You need to log in first")
	}

	idx := -1
	for i := range c.events {
		if c.events[i].ID == eventID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return apperror.ValidationFailed("Event not found")
	}

	// Convenience pre-checks only — the server enforces the real limit.
	ev := &c.events[idx]
	switch {
	case ev.IsRegistered:
		return apperror.ValidationFailed("You are already registered for this event")
	case ev.IsFull() || ev.AvailableSpots() <= 0:
		return apperror.ValidationFailed("This event is full")
	case ev.IsPast(c.now()):
		return apperror.ValidationFailed("This event has already taken place")
	}

	if _, err := c.client.RegisterUser(ctx, eventID, c.session.DisplayName); err != nil {
		return err
	}

	// The server accepted the registration; a failed cache write only costs
	// the IsRegistered annotation after the next login, so it must not roll
	// back the view update.
	if err := c.membership.RecordRegistration(ctx, c.session.Email, eventID); err != nil {
		c.logger.Error("persisting registration membership failed",
			slog.String("eventId", eventID),
			slog.String("error", err.Error()),
		)
	}
	c.member[eventID] = true

	ev.CurrentAttendees++
	ev.IsRegistered = true

	return nil
}

// Logout clears the persisted session and drops all in-memory view state.
// The membership cache stays on disk: logging back in with the same email
// restores prior registrations.
func (c *Controller) Logout(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.sessions.Clear(ctx); err != nil {
		return err
	}

	c.session = nil
	c.events = nil
	c.member = nil
	c.state = StateAnonymous
	c.filter = FilterAll

	c.logger.Info("logged out")
	return nil
}

// SetFilter changes which events Events returns. Display-only.
func (c *Controller) SetFilter(f Filter) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filter = f
}

// Events returns a copy of the current view slice, narrowed by the active
// filter.
func (c *Controller) Events() []model.ViewEvent {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]model.ViewEvent, 0, len(c.events))
	for _, ev := range c.events {
		if c.filter == FilterRegistered && !ev.IsRegistered {
			continue
		}
		out = append(out, ev)
	}
	return out
}

// State returns the current lifecycle phase.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Session returns a copy of the active session, or nil when anonymous.
func (c *Controller) Session() *model.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return nil
	}
	s := *c.session
	return &s
}

// enterSessionLocked installs a session in memory, loads its membership
// cache, and performs the initial event load. Callers hold c.mu.
func (c *Controller) enterSessionLocked(ctx context.Context, s model.Session) error {
	member, err := c.membership.Load(ctx, s.Email)
	if err != nil {
		return err
	}
	if member == nil {
		member = make(map[string]bool)
	}

	c.session = &s
	c.member = member
	c.state = StateReady

	if err := c.reloadLocked(ctx); err != nil {
		c.logger.Warn("initial event load failed",
			slog.String("email", s.Email),
			slog.String("error", err.Error()),
		)
	}
	return nil
}

// reloadLocked runs the assembler pipeline. On failure the previous events
// and state survive untouched. Callers hold c.mu.
func (c *Controller) reloadLocked(ctx context.Context) error {
	prev := c.state
	c.state = StateLoading

	remote, err := c.client.ListEvents(ctx)
	if err != nil {
		c.state = prev
		return err
	}

	c.events = view.Assemble(ctx, remote, c.client.CountRegistrations, c.member)
	c.state = StateReady

	c.logger.Debug("events reloaded", slog.Int("count", len(c.events)))
	return nil
}

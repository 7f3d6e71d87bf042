// Package api is the typed client for the remote EventHub HTTP API.
//
// The backend is an external collaborator with a fixed JSON contract; this
// package owns the translation between that contract and the local model
// types, and nothing else. No call here mutates local state, and no call
// retries: every operation is a single round trip whose failure is classified
// into the apperror taxonomy and propagated (with one deliberate exception,
// CountRegistrations, which degrades to zero — list availability is worth
// more than count accuracy).
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/rs/xid"

	"github.com/sakif/eventhub-client/internal/apperror"
	"github.com/sakif/eventhub-client/internal/model"
)

// Client talks to the remote event API.
//
// The zero-value http.Client carries no timeout on purpose — the contract
// assumes transport defaults, and a hung call is surfaced as a hung loading
// state rather than a synthesized error.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// New creates a Client for the API rooted at baseURL (e.g.
// "http://localhost:8080/api", no trailing slash).
func New(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{},
		logger:  logger,
	}
}

// CreateResult is the backend's response to a successful event creation.
type CreateResult struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// RegisterResult is the backend's response to a successful registration.
type RegisterResult struct {
	Message        string `json:"message"`
	RegistrationID int64  `json:"registrationId"`
}

// AuthResult is the backend's response to a successful login.
type AuthResult struct {
	ID       int64  `json:"id"`
	UserName string `json:"userName"`
	Email    string `json:"email"`
}

// errorBody is the backend's uniform failure envelope.
type errorBody struct {
	Error string `json:"error"`
}

// ListEvents fetches the full event collection.
//
// RESPONSE-SHAPE TOLERANCE:
// Different backend revisions have returned either a bare array or an object
// wrapping the array under "events". Both are accepted; anything else is a
// protocol error.
func (c *Client) ListEvents(ctx context.Context) ([]model.RemoteEvent, error) {
	const op = "list events"

	body, err := c.get(ctx, "/events")
	if err != nil {
		return nil, apperror.Transport(op, err)
	}

	var bare []model.RemoteEvent
	if err := json.Unmarshal(body, &bare); err == nil {
		return bare, nil
	}

	var wrapped struct {
		Events []model.RemoteEvent `json:"events"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil && wrapped.Events != nil {
		return wrapped.Events, nil
	}

	return nil, apperror.Protocol(op, "body is neither an event array nor an {events: [...]} object")
}

// CountRegistrations returns the number of registrations for an event.
//
// Any failure — network, status, or parse — yields 0 rather than an error:
// counts are best-effort enrichment, and one broken count must not take down
// the list.
func (c *Client) CountRegistrations(ctx context.Context, eventID string) int {
	body, err := c.get(ctx, "/events/"+eventID+"/registrations")
	if err != nil {
		c.logger.Warn("registration count unavailable, using 0",
			slog.String("eventId", eventID),
			slog.String("error", err.Error()),
		)
		return 0
	}

	var payload struct {
		Registrations []json.RawMessage `json:"registrations"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		c.logger.Warn("registration count unparseable, using 0",
			slog.String("eventId", eventID),
			slog.String("error", err.Error()),
		)
		return 0
	}

	return len(payload.Registrations)
}

// CreateEvent submits a draft for creation. Identity is server-owned: the
// draft carries no id, the result does.
func (c *Client) CreateEvent(ctx context.Context, draft model.EventDraft) (*CreateResult, error) {
	const op = "create event"

	payload := model.RemoteEvent{
		Title:       draft.Title,
		Description: draft.Description,
		EventDate:   draft.EventDate,
		Location:    draft.Location,
		MaxCapacity: draft.MaxCapacity,
	}

	var result CreateResult
	if err := c.postJSON(ctx, op, "/events", payload, &result); err != nil {
		return nil, err
	}

	c.logger.Info("event created",
		slog.Int64("id", result.ID),
		slog.String("title", draft.Title),
	)
	return &result, nil
}

// RegisterUser registers userName for the given event. Event ids are strings
// locally but numeric on the wire; an id that won't parse goes through as-is
// (degraded path — such an event never got a server id in the first place).
func (c *Client) RegisterUser(ctx context.Context, eventID, userName string) (*RegisterResult, error) {
	const op = "register for event"

	var wireID any = eventID
	if n, err := strconv.ParseInt(eventID, 10, 64); err == nil {
		wireID = n
	}
	payload := map[string]any{
		"eventId":  wireID,
		"userName": userName,
	}

	var result RegisterResult
	if err := c.postJSON(ctx, op, "/registrations", payload, &result); err != nil {
		return nil, err
	}

	c.logger.Info("registered for event",
		slog.String("eventId", eventID),
		slog.Int64("registrationId", result.RegistrationID),
	)
	return &result, nil
}

// Login exchanges credentials for the user's identity. The backend issues no
// token; the returned email/name pair IS the session.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	const op = "login"

	payload := map[string]string{
		"email":    email,
		"password": password,
	}

	var result AuthResult
	if err := c.postJSON(ctx, op, "/login", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// RegisterAccount creates a new account. It does not log the user in; the
// caller is expected to follow up with Login.
func (c *Client) RegisterAccount(ctx context.Context, userName, email, password string) (string, error) {
	const op = "register account"

	payload := map[string]string{
		"userName": userName,
		"email":    email,
		"password": password,
	}

	var result struct {
		Message string `json:"message"`
	}
	if err := c.postJSON(ctx, op, "/register", payload, &result); err != nil {
		return "", err
	}
	return result.Message, nil
}

// get performs a GET round trip and returns the body of a 2xx response.
// Non-2xx statuses and transport failures come back as plain errors for the
// caller to classify.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	c.logger.Debug("api call completed",
		slog.String("method", http.MethodGet),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return body, nil
}

// postJSON performs a POST round trip, decoding a 2xx body into out.
//
// FAILURE TAXONOMY:
// A non-2xx response with a parseable {"error": "..."} body is a server-side
// semantic rejection — the message is passed through verbatim as a validation
// error. Everything else (network failure, non-2xx without the envelope) is a
// transport error.
func (c *Client) postJSON(ctx context.Context, op, path string, payload, out any) error {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return apperror.Transport(op, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperror.Transport(op, err)
	}

	c.logger.Debug("api call completed",
		slog.String("method", http.MethodPost),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var failure errorBody
		if err := json.Unmarshal(body, &failure); err == nil && failure.Error != "" {
			return apperror.ValidationFailed(failure.Error)
		}
		return apperror.Transport(op, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return apperror.Protocol(op, "success body did not match the expected shape")
	}
	return nil
}

// setHeaders stamps the headers common to every outgoing request. The
// X-Request-ID is generated client-side (xid: 20 chars, URL-safe, sortable by
// creation time) so a request can be correlated with backend logs.
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", xid.New().String())
}

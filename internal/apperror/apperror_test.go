// GO TESTING BASICS:
// 1. Test files MUST end in _test.go — Go's tooling auto-discovers them
// 2. Test functions MUST start with "Test" and take *testing.T as the only param
// 3. Same package as the code being tested (so we can access unexported stuff)
// 4. Run with: go test ./internal/apperror/ -v  (-v = verbose, shows each test name)
package apperror

import (
	"errors"
	"fmt"
	"testing"
)

// TABLE-DRIVEN TESTS:
// Go's idiomatic pattern for testing multiple cases — a slice of cases and one
// loop, each case named so it shows up individually in test output.

func TestErrorsIs(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		target    error
		wantMatch bool
	}{
		{
			name:      "Transport wraps ErrTransport",
			err:       Transport("list events", errors.New("connection refused")),
			target:    ErrTransport,
			wantMatch: true,
		},
		{
			name:      "Protocol wraps ErrProtocol",
			err:       Protocol("list events", "body is neither array nor object"),
			target:    ErrProtocol,
			wantMatch: true,
		},
		{
			name:      "ValidationFailed wraps ErrValidation",
			err:       ValidationFailed("Capacity must be positive"),
			target:    ErrValidation,
			wantMatch: true,
		},
		{
			name:      "Transport does NOT match ErrValidation",
			err:       Transport("create event", errors.New("EOF")),
			target:    ErrValidation,
			wantMatch: false,
		},
		{
			name:      "ValidationFailed does NOT match ErrTransport",
			err:       ValidationFailed("Title is required"),
			target:    ErrTransport,
			wantMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := errors.Is(tt.err, tt.target)
			if got != tt.wantMatch {
				t.Errorf("errors.Is(%v, %v) = %v, want %v", tt.err, tt.target, got, tt.wantMatch)
			}
		})
	}
}

// errors.Is must keep matching after the error is wrapped with %w — the
// controller wraps API errors with operation context before surfacing them.
func TestErrorsIsThroughWrapping(t *testing.T) {
	inner := ValidationFailed("Capacity must be positive")
	wrapped := fmt.Errorf("creating event: %w", inner)

	if !errors.Is(wrapped, ErrValidation) {
		t.Errorf("wrapped validation error no longer matches ErrValidation")
	}

	var appErr *AppError
	if !errors.As(wrapped, &appErr) {
		t.Fatalf("errors.As failed to extract *AppError from wrapped error")
	}
	if appErr.Message != "Capacity must be positive" {
		t.Errorf("Message = %q, want %q", appErr.Message, "Capacity must be positive")
	}
}

func TestMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "validation message passes through verbatim",
			err:  ValidationFailed("Capacity must be positive"),
			want: "Capacity must be positive",
		},
		{
			name: "wrapped app error still yields its message",
			err:  fmt.Errorf("creating event: %w", ValidationFailed("Title is required")),
			want: "Title is required",
		},
		{
			name: "unknown error gets the generic line",
			err:  errors.New("dial tcp 127.0.0.1:8080: connection refused"),
			want: "Something went wrong, please try again",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Message(tt.err); got != tt.want {
				t.Errorf("Message() = %q, want %q", got, tt.want)
			}
		})
	}
}

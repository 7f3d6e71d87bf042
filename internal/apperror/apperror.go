package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrTransport  = errors.New("transport error")
	ErrProtocol   = errors.New("protocol error")
	ErrValidation = errors.New("validation error")
)

type AppError struct {
	Err     error  // sentinel classifying the failure
	Message string // Human-readable error message
	Op      string // Optional: the API operation that failed
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Transport wraps a network failure or a non-2xx status without a parseable
// error body. The cause stays in the chain for logs; the message shown to the
// user never includes it.
func Transport(op string, err error) *AppError {
	cause := ErrTransport
	if err != nil {
		cause = fmt.Errorf("%w: %w", ErrTransport, err)
	}
	return &AppError{
		Err:     cause,
		Message: fmt.Sprintf("%s: the event service could not be reached", op),
		Op:      op,
	}
}

// Protocol marks a response body that matches no accepted shape.
func Protocol(op, detail string) *AppError {
	return &AppError{
		Err:     ErrProtocol,
		Message: fmt.Sprintf("%s: unexpected response from the event service: %s", op, detail),
		Op:      op,
	}
}

// ValidationFailed carries a server-supplied rejection message verbatim.
func ValidationFailed(message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
	}
}

// Message extracts the human-readable text for an error surfaced to the user.
// Typed application errors already carry one; anything else falls back to a
// generic line so raw transport details never reach the screen.
func Message(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "Something went wrong, please try again"
}

package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidParameters indicates that one or more required fetch parameters are missing.
var ErrInvalidParameters = errors.New("invalid fetch parameters")

// ErrTransport indicates that the upstream fetch capability failed.
var ErrTransport = errors.New("transport failure")

// ErrStaleResponse marks a result that arrived for a superseded generation.
var ErrStaleResponse = errors.New("stale response")

// ErrMalformedRecord indicates a rate record value that could not be used.
var ErrMalformedRecord = errors.New("malformed rate record")

// FallbackFetchMessage is surfaced when a failure carries no readable message.
const FallbackFetchMessage = "Failed to fetch exchange rates"

// TransportError describes a failed call to a rate source.
// Message is the human-readable text returned by the remote side, if any.
type TransportError struct {
	Status  int
	Message string
	Err     error
}

func (e *TransportError) Error() string {
	var b strings.Builder
	b.WriteString(ErrTransport.Error())
	if e.Status != 0 {
		fmt.Fprintf(&b, " (status %d)", e.Status)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Is lets errors.Is(err, ErrTransport) match any TransportError.
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// UserMessage returns the message carried by a TransportError anywhere in the
// chain, or fallback when there is none.
func UserMessage(err error, fallback string) string {
	var te *TransportError
	if errors.As(err, &te) && strings.TrimSpace(te.Message) != "" {
		return te.Message
	}
	return fallback
}

// NewValidationError wraps ErrValidation with a message.
func NewValidationError(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

// ValidationMessage returns the message of a validation error without the
// sentinel prefix, for display to API callers.
func ValidationMessage(err error) string {
	return strings.TrimPrefix(err.Error(), ErrValidation.Error()+": ")
}

// NewNotFoundError wraps ErrNotFound with a message.
func NewNotFoundError(msg string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, msg)
}

// NewAppError wraps an underlying error with an operation message.
// Code is kept on the message for log correlation only.
func NewAppError(code int, msg string, err error) error {
	if err == nil {
		return fmt.Errorf("[%d] %s", code, msg)
	}
	return fmt.Errorf("[%d] %s: %w", code, msg, err)
}

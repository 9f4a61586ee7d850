package domain

import "errors"

var (
	// ErrSessionNotFound is returned when a quiz session has not been started.
	// Acting on a missing session is a wiring defect in the caller, so it is
	// surfaced loudly instead of defaulting.
	ErrSessionNotFound = errors.New("quiz session not found")
	// ErrBankNotFound indicates the question bank could not be loaded.
	ErrBankNotFound = errors.New("question bank not found")
	// ErrInvalidBank indicates a bank that violates the structural contract.
	ErrInvalidBank = errors.New("invalid question bank")
	// ErrNoActiveQuestion indicates an operation that needs a current question
	// while the index is out of range or the quiz is complete.
	ErrNoActiveQuestion = errors.New("no active question")
)

// ErrorKind is the small categorical signal consumed by the presentation
// layer when something unexpected occurs.
type ErrorKind string

const (
	KindTimer      ErrorKind = "timer"
	KindStorage    ErrorKind = "storage"
	KindValidation ErrorKind = "validation"
	KindState      ErrorKind = "state"
)

// KindOf classifies an error into one of the presentation-facing categories.
func KindOf(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrInvalidBank):
		return KindValidation
	case errors.Is(err, ErrBankNotFound):
		return KindStorage
	default:
		return KindState
	}
}

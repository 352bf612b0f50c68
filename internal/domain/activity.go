package domain

import "errors"

var (
	// ErrActivityNotFound is returned when an activity name is not a registry key.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadyRegistered is returned when a signup repeats an enrolled email.
	ErrAlreadyRegistered = errors.New("student is already signed up")
	// ErrNotRegistered is returned when unregistering an email that is not enrolled.
	ErrNotRegistered = errors.New("student is not registered for this activity")
)

// Activity is one extracurricular offering. The activity name is the
// registry key and is matched exactly, case-sensitively. Participants
// are kept in signup order and hold at most one entry per email.
// MaxParticipants is advisory only and never enforced.
type Activity struct {
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []string
}

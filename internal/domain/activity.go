package domain

import "errors"

var (
	// ErrActivityNotFound is returned when an activity name is not in the catalog.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadyRegistered indicates the email is already on the activity roster.
	ErrAlreadyRegistered = errors.New("student is already signed up")
	// ErrNotRegistered indicates the email is not on the activity roster.
	ErrNotRegistered = errors.New("student is not registered for this activity")
	// ErrActivityFull indicates the roster has reached max participants.
	ErrActivityFull = errors.New("activity is full")
)

// Activity is an extracurricular offering with a capacity-bounded roster.
// The activity name is the registry key and is not repeated in the record.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

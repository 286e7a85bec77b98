// Package domain defines the business logic for the school activities service.
package domain

import (
	"context"
	"slices"
	"sync"
)

// Registry holds the in-memory activity catalog. All state lives for the
// process lifetime only; signup and unregister serialize on a single write
// lock so the capacity invariant holds under concurrent requests.
type Registry struct {
	mu         sync.RWMutex
	activities map[string]Activity
}

// NewRegistry constructs a registry populated with the school's catalog.
func NewRegistry() *Registry {
	r := &Registry{activities: make(map[string]Activity)}
	r.seed()
	return r
}

func (r *Registry) seed() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.activities["Chess Club"] = Activity{
		Description:     "Learn strategies and compete in chess tournaments",
		Schedule:        "Fridays, 3:30 PM - 5:00 PM",
		MaxParticipants: 12,
		Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
	}
	r.activities["Programming Class"] = Activity{
		Description:     "Learn programming fundamentals and build software projects",
		Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
		MaxParticipants: 20,
		Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
	}
	r.activities["Gym Class"] = Activity{
		Description:     "Physical education and sports activities",
		Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
		MaxParticipants: 30,
		Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
	}
	r.activities["Soccer Club"] = Activity{
		Description:     "Join the school soccer team and compete in matches",
		Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
		MaxParticipants: 18,
		Participants:    []string{"liam@mergington.edu", "noah@mergington.edu"},
	}
	r.activities["Basketball Team"] = Activity{
		Description:     "Practice and play basketball with the school team",
		Schedule:        "Wednesdays and Fridays, 3:30 PM - 5:00 PM",
		MaxParticipants: 15,
		Participants:    []string{"ava@mergington.edu", "mia@mergington.edu"},
	}
	r.activities["Art Club"] = Activity{
		Description:     "Explore your creativity through painting and drawing",
		Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
		MaxParticipants: 15,
		Participants:    []string{"amelia@mergington.edu", "harper@mergington.edu"},
	}
	r.activities["Drama Club"] = Activity{
		Description:     "Act, direct, and produce plays and performances",
		Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
		MaxParticipants: 20,
		Participants:    []string{"ella@mergington.edu", "scarlett@mergington.edu"},
	}
	r.activities["Math Club"] = Activity{
		Description:     "Solve challenging problems and prepare for math competitions",
		Schedule:        "Tuesdays, 3:30 PM - 4:30 PM",
		MaxParticipants: 10,
		Participants:    []string{"james@mergington.edu", "benjamin@mergington.edu"},
	}
	r.activities["Debate Team"] = Activity{
		Description:     "Develop public speaking and argumentation skills",
		Schedule:        "Fridays, 4:00 PM - 5:30 PM",
		MaxParticipants: 12,
		Participants:    []string{"charlotte@mergington.edu", "henry@mergington.edu"},
	}
}

// List returns a snapshot of the catalog. Participant slices are copied so
// callers cannot mutate the registry through the returned map.
func (r *Registry) List(ctx context.Context) map[string]Activity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]Activity, len(r.activities))
	for name, activity := range r.activities {
		activity.Participants = slices.Clone(activity.Participants)
		out[name] = activity
	}
	return out
}

// Signup adds email to the activity roster. The check-then-append sequence
// runs under the write lock so concurrent signups cannot overshoot capacity.
func (r *Registry) Signup(ctx context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return ErrActivityNotFound
	}
	if slices.Contains(activity.Participants, email) {
		return ErrAlreadyRegistered
	}
	if len(activity.Participants) >= activity.MaxParticipants {
		return ErrActivityFull
	}

	activity.Participants = append(slices.Clone(activity.Participants), email)
	r.activities[name] = activity
	return nil
}

// Unregister removes email from the activity roster.
func (r *Registry) Unregister(ctx context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return ErrActivityNotFound
	}
	idx := slices.Index(activity.Participants, email)
	if idx < 0 {
		return ErrNotRegistered
	}

	activity.Participants = slices.Delete(slices.Clone(activity.Participants), idx, idx+1)
	r.activities[name] = activity
	return nil
}

// RosterSize reports the current roster length for an activity, or -1 when
// the activity does not exist. Used by the observability gauges.
func (r *Registry) RosterSize(ctx context.Context, name string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	activity, ok := r.activities[name]
	if !ok {
		return -1
	}
	return len(activity.Participants)
}

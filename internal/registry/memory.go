// Package registry provides the in-memory activity store.
package registry

import (
	"context"
	"sync"

	"example.com/extracurricular/internal/domain"
)

// Memory holds every activity in a single mutex-guarded map. The write
// lock covers both the membership check and the mutation, so concurrent
// signups for the same email cannot race past the duplicate check.
type Memory struct {
	mu         sync.RWMutex
	activities map[string]*domain.Activity
}

// NewMemory builds a store holding a deep copy of seed. Activity names
// are exact-match keys; no normalization is applied.
func NewMemory(seed map[string]domain.Activity) *Memory {
	activities := make(map[string]*domain.Activity, len(seed))
	for name, activity := range seed {
		copied := activity
		copied.Participants = append([]string(nil), activity.Participants...)
		activities[name] = &copied
	}
	return &Memory{activities: activities}
}

// Snapshot returns a copy of every activity keyed by name. Mutating the
// result does not affect the store.
func (m *Memory) Snapshot(_ context.Context) map[string]domain.Activity {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string]domain.Activity, len(m.activities))
	for name, activity := range m.activities {
		copied := *activity
		copied.Participants = append([]string(nil), activity.Participants...)
		out[name] = copied
	}
	return out
}

// Signup appends email to the activity's participant list, preserving
// signup order. It fails with domain.ErrActivityNotFound for an unknown
// activity and domain.ErrAlreadyRegistered for a duplicate email.
func (m *Memory) Signup(_ context.Context, activity, email string) (domain.Activity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok := m.activities[activity]
	if !ok {
		return domain.Activity{}, domain.ErrActivityNotFound
	}
	for _, participant := range current.Participants {
		if participant == email {
			return domain.Activity{}, domain.ErrAlreadyRegistered
		}
	}
	current.Participants = append(current.Participants, email)
	return copyActivity(current), nil
}

// Unregister removes exactly one occurrence of email from the
// activity's participant list, keeping the remaining entries in their
// original relative order. It fails with domain.ErrActivityNotFound for
// an unknown activity and domain.ErrNotRegistered when the email is not
// enrolled.
func (m *Memory) Unregister(_ context.Context, activity, email string) (domain.Activity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok := m.activities[activity]
	if !ok {
		return domain.Activity{}, domain.ErrActivityNotFound
	}
	for i, participant := range current.Participants {
		if participant == email {
			current.Participants = append(current.Participants[:i], current.Participants[i+1:]...)
			return copyActivity(current), nil
		}
	}
	return domain.Activity{}, domain.ErrNotRegistered
}

func copyActivity(activity *domain.Activity) domain.Activity {
	copied := *activity
	copied.Participants = append([]string(nil), activity.Participants...)
	return copied
}

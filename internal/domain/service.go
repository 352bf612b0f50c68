// Package domain defines the business logic for the enrollment service.
package domain

import (
	"context"
	"errors"
	"fmt"

	"example.com/extracurricular/internal/observability"
)

// ActivityStore captures registry operations. Implementations must make
// the membership check and the mutation atomic with respect to each
// other, so two concurrent signups for the same email cannot both pass
// the duplicate check.
type ActivityStore interface {
	Snapshot(ctx context.Context) map[string]Activity
	Signup(ctx context.Context, activity, email string) (Activity, error)
	Unregister(ctx context.Context, activity, email string) (Activity, error)
}

// Service orchestrates enrollment workflows.
type Service struct {
	store ActivityStore
}

// NewService constructs a Service.
func NewService(store ActivityStore) *Service {
	return &Service{store: store}
}

// ListActivities returns every activity keyed by name.
func (s *Service) ListActivities(ctx context.Context) map[string]Activity {
	return s.store.Snapshot(ctx)
}

// Signup enrolls email in the named activity and returns the
// confirmation message. The email is an opaque string; format
// validation is deliberately absent at this layer.
func (s *Service) Signup(ctx context.Context, activity, email string) (string, error) {
	updated, err := s.store.Signup(ctx, activity, email)
	if err != nil {
		observability.RecordRejection(rejectionReason(err))
		return "", err
	}
	observability.RecordSignup(activity, len(updated.Participants))
	return fmt.Sprintf("Signed up %s for %s", email, activity), nil
}

// Unregister removes email from the named activity and returns the
// confirmation message.
func (s *Service) Unregister(ctx context.Context, activity, email string) (string, error) {
	updated, err := s.store.Unregister(ctx, activity, email)
	if err != nil {
		observability.RecordRejection(rejectionReason(err))
		return "", err
	}
	observability.RecordUnregistration(activity, len(updated.Participants))
	return fmt.Sprintf("Unregistered %s from %s", email, activity), nil
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, ErrActivityNotFound):
		return "activity_not_found"
	case errors.Is(err, ErrAlreadyRegistered):
		return "already_registered"
	case errors.Is(err, ErrNotRegistered):
		return "not_registered"
	default:
		return "unknown"
	}
}

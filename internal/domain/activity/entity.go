package activity

import (
	"fmt"

	"reservation-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrActivityNotFound    = errs.Mark(errs.New("activity not found"), errs.ErrNotFound)
	ErrActivityUnavailable = errs.Mark(errs.New("activity is not accepting participants"), errs.ErrUnavailable)
	ErrActivityFull        = errs.Mark(errs.New("activity is full"), errs.ErrFull)
	ErrAlreadyRegistered   = errs.Mark(errs.New("user is already registered for the activity"), errs.ErrAlreadyRegistered)
)

// FullError names the activity whose headcount limit was reached.
type FullError struct {
	ActivityID uuid.UUID
	Capacity   int
}

func (e *FullError) Error() string {
	return fmt.Sprintf("activity %s is full (capacity %d)", e.ActivityID, e.Capacity)
}

func (e *FullError) Unwrap() error {
	return ErrActivityFull
}

// Activity is a capacity resource: a headcount limit instead of a stock counter.
// The registered count is derived from participations, never stored.
type Activity struct {
	id              uuid.UUID
	name            string
	maxParticipants *int
	status          Status
}

func ReconstructActivity(id uuid.UUID, name string, maxParticipants *int, status Status) *Activity {
	return &Activity{
		id:              id,
		name:            name,
		maxParticipants: maxParticipants,
		status:          status,
	}
}

// CheckCapacity must be evaluated while the activity row is locked, otherwise
// two callers can both observe a free slot.
func (a *Activity) CheckCapacity(registered int) error {
	if a.status != StatusActive {
		return ErrActivityUnavailable
	}
	if a.maxParticipants != nil && registered >= *a.maxParticipants {
		return &FullError{ActivityID: a.id, Capacity: *a.maxParticipants}
	}
	return nil
}

// Remaining is nil for unlimited activities.
func (a *Activity) Remaining(registered int) *int {
	if a.maxParticipants == nil {
		return nil
	}
	left := max(*a.maxParticipants-registered, 0)
	return &left
}

func (a *Activity) ID() uuid.UUID         { return a.id }
func (a *Activity) Name() string          { return a.name }
func (a *Activity) MaxParticipants() *int { return a.maxParticipants }
func (a *Activity) Status() Status        { return a.status }

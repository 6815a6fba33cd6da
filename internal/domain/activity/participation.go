package activity

import (
	"time"

	"reservation-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

const entityName = "participation"

var (
	ErrParticipationNotFound = errs.Mark(errs.New("participation not found"), errs.ErrNotFound)
	ErrAlreadyCancelled      = errs.Mark(errs.New("participation is already cancelled"), errs.ErrAlreadyCancelled)
	ErrInvalidTransition     = errs.Mark(errs.New("participation cannot move to the requested status"), errs.ErrInvalidStateTransition)
)

type Participation struct {
	id           uuid.UUID
	activityID   uuid.UUID
	userID       uuid.UUID
	activityName string
	status       ParticipationStatus
	createdAt    time.Time
	updatedAt    time.Time
}

func NewParticipation(a *Activity, userID uuid.UUID, now time.Time) *Participation {
	return &Participation{
		id:           uuid.New(),
		activityID:   a.id,
		userID:       userID,
		activityName: a.name,
		status:       ParticipationRegistered,
		createdAt:    now,
		updatedAt:    now,
	}
}

func ReconstructParticipation(
	id, activityID, userID uuid.UUID,
	activityName string,
	status ParticipationStatus,
	createdAt, updatedAt time.Time,
) *Participation {
	return &Participation{
		id:           id,
		activityID:   activityID,
		userID:       userID,
		activityName: activityName,
		status:       status,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (p *Participation) Cancel(now time.Time) error {
	switch p.status {
	case ParticipationRegistered:
		p.status = ParticipationCancelled
		p.updatedAt = now
		return nil
	case ParticipationCancelled:
		return errs.NewStateError(entityName, p.status.String(), ErrAlreadyCancelled)
	default:
		return errs.NewStateError(entityName, p.status.String(), ErrInvalidTransition)
	}
}

func (p *Participation) Complete(now time.Time) error {
	if p.status != ParticipationRegistered {
		return errs.NewStateError(entityName, p.status.String(), ErrInvalidTransition)
	}
	p.status = ParticipationCompleted
	p.updatedAt = now
	return nil
}

func (p *Participation) IsOwnedBy(userID uuid.UUID) bool {
	return p.userID == userID
}

func (p *Participation) ID() uuid.UUID               { return p.id }
func (p *Participation) ActivityID() uuid.UUID       { return p.activityID }
func (p *Participation) UserID() uuid.UUID           { return p.userID }
func (p *Participation) ActivityName() string        { return p.activityName }
func (p *Participation) Status() ParticipationStatus { return p.status }
func (p *Participation) CreatedAt() time.Time        { return p.createdAt }
func (p *Participation) UpdatedAt() time.Time        { return p.updatedAt }

package repository

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/repository/$GOFILE -package=repositorymock

import (
	"context"
	"time"

	"reservation-engine/internal/domain/activity"
	"reservation-engine/internal/infra"
	"reservation-engine/internal/infra/repository/converter"
	sqlc "reservation-engine/internal/infra/sqlc/generated"
	"reservation-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ParticipationQueries interface {
	GetActivityForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Activities, error)
	CountOccupyingParticipations(ctx context.Context, db sqlc.DBTX, activityID uuid.UUID) (int32, error)
	ExistsLiveParticipation(ctx context.Context, db sqlc.DBTX, arg sqlc.ExistsLiveParticipationParams) (bool, error)
	CreateParticipation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateParticipationParams) error
	GetParticipationForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Participations, error)
	UpdateParticipationStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateParticipationStatusParams) (int64, error)
}

// ParticipationRepository guards activity capacity. The activity row lock
// serializes registrations so the count and the insert act as one step.
type ParticipationRepository struct {
	queries ParticipationQueries
	db      sqlc.DBTX
}

func NewParticipationRepository(queries ParticipationQueries, db sqlc.DBTX) *ParticipationRepository {
	return &ParticipationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ParticipationRepository) TryRegister(ctx context.Context, activityID, userID uuid.UUID, now time.Time) (*activity.Participation, error) {
	row, err := r.queries.GetActivityForUpdate(ctx, r.db, activityID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, activity.ErrActivityNotFound
		}
		return nil, infra.WrapRepoErr("failed to lock activity", err)
	}
	act := converter.ActivityFromRow(row)

	registered, err := r.queries.ExistsLiveParticipation(ctx, r.db, sqlc.ExistsLiveParticipationParams{
		ActivityID: activityID,
		UserID:     userID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to check existing participation", err)
	}
	if registered {
		return nil, activity.ErrAlreadyRegistered
	}

	count, err := r.queries.CountOccupyingParticipations(ctx, r.db, activityID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count participations", err)
	}
	if err := act.CheckCapacity(int(count)); err != nil {
		return nil, err
	}

	p := activity.NewParticipation(act, userID, now)
	if err := r.queries.CreateParticipation(ctx, r.db, converter.ParticipationToCreateParams(p)); err != nil {
		wrapped := infra.WrapRepoErr("failed to create participation", err)
		if infra.IsKind(wrapped, infra.KindDuplicateKey) {
			return nil, activity.ErrAlreadyRegistered
		}
		return nil, wrapped
	}
	return p, nil
}

func (r *ParticipationRepository) GetForUpdate(ctx context.Context, participationID uuid.UUID) (*activity.Participation, error) {
	row, err := r.queries.GetParticipationForUpdate(ctx, r.db, participationID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, activity.ErrParticipationNotFound
		}
		return nil, infra.WrapRepoErr("failed to lock participation", err)
	}
	return converter.ParticipationFromRow(row), nil
}

// Unregister frees the slot by cancelling; the registered count is derived, so
// there is no counter to restore.
func (r *ParticipationRepository) Unregister(ctx context.Context, p *activity.Participation, now time.Time) error {
	if err := p.Cancel(now); err != nil {
		return err
	}
	return r.updateStatus(ctx, p)
}

func (r *ParticipationRepository) Complete(ctx context.Context, p *activity.Participation, now time.Time) error {
	if err := p.Complete(now); err != nil {
		return err
	}
	return r.updateStatus(ctx, p)
}

func (r *ParticipationRepository) updateStatus(ctx context.Context, p *activity.Participation) error {
	affected, err := r.queries.UpdateParticipationStatus(ctx, r.db, sqlc.UpdateParticipationStatusParams{
		ID:        p.ID(),
		Status:    p.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(p.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update participation status", err)
	}
	if affected == 0 {
		return activity.ErrParticipationNotFound
	}
	return nil
}

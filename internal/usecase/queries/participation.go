package queries

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/$GOFILE -package=queriesmock

import (
	"context"
	"time"

	"reservation-engine/internal/domain/activity"
	"reservation-engine/internal/domain/user"
	"reservation-engine/internal/infra"

	"github.com/google/uuid"
)

type ParticipationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ParticipationView, error)
	FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*ParticipationView, error)
	FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ParticipationView, error)
}

type ParticipationQueries interface {
	GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*ParticipationView, error)
	ListByUser(ctx context.Context, actor user.Actor, cursor *Cursor, limit int) ([]*ParticipationView, *Cursor, error)
}

type participationQueriesImpl struct {
	store ParticipationReadStore
}

func NewParticipationQueries(store ParticipationReadStore) ParticipationQueries {
	return &participationQueriesImpl{store: store}
}

func (q *participationQueriesImpl) GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*ParticipationView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, activity.ErrParticipationNotFound
		}
		return nil, err
	}
	if view.UserID != actor.ID && !actor.IsStaff() {
		return nil, activity.ErrParticipationNotFound
	}
	return view, nil
}

func (q *participationQueriesImpl) ListByUser(ctx context.Context, actor user.Actor, cursor *Cursor, limit int) ([]*ParticipationView, *Cursor, error) {
	return paginate(cursor, limit,
		func(limit int32) ([]*ParticipationView, error) {
			return q.store.FindByUserFirstPage(ctx, actor.ID, limit)
		},
		func(lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ParticipationView, error) {
			return q.store.FindByUserKeyset(ctx, actor.ID, lastCreatedAt, lastID, limit)
		},
	)
}

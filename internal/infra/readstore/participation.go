package readstore

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/readstore/$GOFILE -package=readstoremock

import (
	"context"
	"time"

	"reservation-engine/internal/infra"
	sqlc "reservation-engine/internal/infra/sqlc/generated"
	"reservation-engine/internal/pkg/pgconv"
	"reservation-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type ParticipationViewQueries interface {
	GetParticipationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Participations, error)
	ListParticipationsByUserFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListParticipationsByUserFirstPageParams) ([]sqlc.Participations, error)
	ListParticipationsByUserKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListParticipationsByUserKeysetParams) ([]sqlc.Participations, error)
}

type ParticipationReadStore struct {
	queries ParticipationViewQueries
	db      sqlc.DBTX
}

func NewParticipationReadStore(queries ParticipationViewQueries, db sqlc.DBTX) *ParticipationReadStore {
	return &ParticipationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ParticipationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ParticipationView, error) {
	row, err := r.queries.GetParticipationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("participation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get participation by id", err)
	}
	return participationView(row), nil
}

func (r *ParticipationReadStore) FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.ParticipationView, error) {
	params := sqlc.ListParticipationsByUserFirstPageParams{UserID: userID, Limit: limit}
	rows, err := r.queries.ListParticipationsByUserFirstPage(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get participations first page by user", err)
	}
	return mapParticipationRows(rows), nil
}

func (r *ParticipationReadStore) FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ParticipationView, error) {
	params := sqlc.ListParticipationsByUserKeysetParams{
		UserID:        userID,
		LastCreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		LastID:        lastID,
		PageLimit:     limit,
	}
	rows, err := r.queries.ListParticipationsByUserKeyset(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get participations keyset by user", err)
	}
	return mapParticipationRows(rows), nil
}

func mapParticipationRows(rows []sqlc.Participations) []*queries.ParticipationView {
	result := make([]*queries.ParticipationView, len(rows))
	for i, row := range rows {
		result[i] = participationView(row)
	}
	return result
}

func participationView(row sqlc.Participations) *queries.ParticipationView {
	return &queries.ParticipationView{
		ID:           row.ID,
		ActivityID:   row.ActivityID,
		ActivityName: row.ActivityName,
		UserID:       row.UserID,
		Status:       row.Status,
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

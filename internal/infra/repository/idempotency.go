package repository

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/repository/$GOFILE -package=repositorymock

import (
	"context"
	"time"

	"reservation-engine/internal/infra"
	sqlc "reservation-engine/internal/infra/sqlc/generated"
	"reservation-engine/internal/pkg/errs"
	"reservation-engine/internal/pkg/pgconv"
	"reservation-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

var ErrIdempotencyKeyNotFound = errs.Mark(errs.New("idempotency key not found"), errs.ErrNotFound)

type IdempotencyWriteQueries interface {
	TryInsertIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.TryInsertIdempotencyKeyParams) (int64, error)
	ReclaimExpiredIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.ReclaimExpiredIdempotencyKeyParams) (int64, error)
	GetIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.GetIdempotencyKeyParams) (sqlc.IdempotencyKeys, error)
	CompleteIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.CompleteIdempotencyKeyParams) (int64, error)
	DeleteExpiredIdempotencyKeys(ctx context.Context, db sqlc.DBTX, expiresAt pgtype.Timestamptz) (int64, error)
}

type IdempotencyRepository struct {
	queries IdempotencyWriteQueries
	db      sqlc.DBTX
}

func NewIdempotencyRepository(queries IdempotencyWriteQueries, db sqlc.DBTX) *IdempotencyRepository {
	return &IdempotencyRepository{
		queries: queries,
		db:      db,
	}
}

func (r *IdempotencyRepository) TryInsert(ctx context.Context, key shared.IdempotencyKey, expiresAt time.Time) (bool, error) {
	inserted, err := r.queries.TryInsertIdempotencyKey(ctx, r.db, sqlc.TryInsertIdempotencyKeyParams{
		UserID:      key.UserID,
		Key:         key.Key,
		Endpoint:    key.Endpoint,
		RequestHash: key.RequestHash,
		ExpiresAt:   pgconv.TimeToPgtype(expiresAt),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to try insert idempotency key", err)
	}
	return inserted == 1, nil
}

// ReclaimExpired takes over a key whose previous use has expired but was not purged yet.
func (r *IdempotencyRepository) ReclaimExpired(ctx context.Context, key shared.IdempotencyKey, now, expiresAt time.Time) (bool, error) {
	reclaimed, err := r.queries.ReclaimExpiredIdempotencyKey(ctx, r.db, sqlc.ReclaimExpiredIdempotencyKeyParams{
		Endpoint:    key.Endpoint,
		RequestHash: key.RequestHash,
		ExpiresAt:   pgconv.TimeToPgtype(expiresAt),
		UserID:      key.UserID,
		Key:         key.Key,
		Now:         pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to reclaim idempotency key", err)
	}
	return reclaimed == 1, nil
}

func (r *IdempotencyRepository) Get(ctx context.Context, userID, key uuid.UUID) (*shared.IdempotencyRecord, error) {
	row, err := r.queries.GetIdempotencyKey(ctx, r.db, sqlc.GetIdempotencyKeyParams{
		UserID: userID,
		Key:    key,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, ErrIdempotencyKeyNotFound
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}

	return &shared.IdempotencyRecord{
		IdempotencyKey: shared.IdempotencyKey{
			UserID:      row.UserID,
			Key:         row.Key,
			Endpoint:    row.Endpoint,
			RequestHash: row.RequestHash,
		},
		Status:    row.Status,
		ResultID:  pgconv.UUIDPtrFromPgtype(row.ResultID),
		ExpiresAt: pgconv.TimeFromPgtype(row.ExpiresAt),
	}, nil
}

func (r *IdempotencyRepository) UpdateStatusCompleted(ctx context.Context, userID, key, resultID uuid.UUID) error {
	affected, err := r.queries.CompleteIdempotencyKey(ctx, r.db, sqlc.CompleteIdempotencyKeyParams{
		UserID:   userID,
		Key:      key,
		ResultID: pgconv.UUIDToPgtype(resultID),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update idempotency key status", err)
	}
	if affected == 0 {
		return ErrIdempotencyKeyNotFound
	}
	return nil
}

func (r *IdempotencyRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	count, err := r.queries.DeleteExpiredIdempotencyKeys(ctx, r.db, pgconv.TimeToPgtype(now))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired idempotency keys", err)
	}
	return count, nil
}

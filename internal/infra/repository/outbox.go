package repository

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/repository/$GOFILE -package=repositorymock

import (
	"context"
	"encoding/json"

	"reservation-engine/internal/infra"
	sqlc "reservation-engine/internal/infra/sqlc/generated"
	"reservation-engine/internal/pkg/errs"
	"reservation-engine/internal/pkg/pgconv"
	"reservation-engine/internal/usecase/shared"
)

type OutboxWriteQueries interface {
	CreateOutboxEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOutboxEventParams) error
}

// OutboxRepository appends events in the same transaction as the state change they describe.
type OutboxRepository struct {
	queries     OutboxWriteQueries
	db          sqlc.DBTX
	topicPrefix string
}

func NewOutboxRepository(queries OutboxWriteQueries, db sqlc.DBTX, topicPrefix string) *OutboxRepository {
	return &OutboxRepository{
		queries:     queries,
		db:          db,
		topicPrefix: topicPrefix,
	}
}

func (r *OutboxRepository) Append(ctx context.Context, event shared.OutboxEvent) error {
	payload, err := json.Marshal(event.Payload)
	if err != nil {
		return errs.Wrap(err, "failed to marshal outbox payload")
	}

	params := sqlc.CreateOutboxEventParams{
		AggregateType: event.AggregateType,
		AggregateID:   event.AggregateID,
		EventType:     event.EventType,
		Topic:         TopicFor(r.topicPrefix, event.AggregateType),
		Payload:       payload,
	}
	if err := r.queries.CreateOutboxEvent(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to append outbox event", err)
	}
	return nil
}

// TopicFor returns "<prefix>.<aggregate>", or the bare aggregate when no prefix is set.
func TopicFor(prefix, aggregateType string) string {
	if prefix == "" {
		return aggregateType
	}
	return prefix + "." + aggregateType
}

type OutboxRelayQueries interface {
	ClaimUnpublishedOutboxEvents(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimUnpublishedOutboxEventsParams) ([]sqlc.OutboxEvents, error)
	MarkOutboxEventPublished(ctx context.Context, db sqlc.DBTX, id int64) error
	MarkOutboxEventFailed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkOutboxEventFailedParams) error
}

// OutboxRelayStore is used by the relay worker with the worker's own transaction.
type OutboxRelayStore struct {
	queries OutboxRelayQueries
}

func NewOutboxRelayStore(queries OutboxRelayQueries) *OutboxRelayStore {
	return &OutboxRelayStore{queries: queries}
}

// Claim locks up to batchSize undelivered events, skipping rows another relay holds.
func (s *OutboxRelayStore) Claim(ctx context.Context, tx sqlc.DBTX, batchSize, maxAttempts int) ([]shared.PendingEvent, error) {
	rows, err := s.queries.ClaimUnpublishedOutboxEvents(ctx, tx, sqlc.ClaimUnpublishedOutboxEventsParams{
		MaxAttempts: pgconv.IntToInt32(maxAttempts),
		BatchSize:   pgconv.IntToInt32(batchSize),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim outbox events", err)
	}

	events := make([]shared.PendingEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, shared.PendingEvent{
			ID:        row.ID,
			Topic:     row.Topic,
			Key:       row.AggregateID.String(),
			EventType: row.EventType,
			Payload:   row.Payload,
			Attempts:  int(row.Attempts),
		})
	}
	return events, nil
}

func (s *OutboxRelayStore) MarkPublished(ctx context.Context, tx sqlc.DBTX, id int64) error {
	if err := s.queries.MarkOutboxEventPublished(ctx, tx, id); err != nil {
		return infra.WrapRepoErr("failed to mark outbox event published", err)
	}
	return nil
}

func (s *OutboxRelayStore) MarkFailed(ctx context.Context, tx sqlc.DBTX, id int64, reason string) error {
	params := sqlc.MarkOutboxEventFailedParams{
		ID:        id,
		LastError: pgconv.StringToPgtype(reason),
	}
	if err := s.queries.MarkOutboxEventFailed(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to mark outbox event failed", err)
	}
	return nil
}

package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/$GOFILE -package=commandsmock

import (
	"context"

	"reservation-engine/internal/domain/activity"
	"reservation-engine/internal/domain/user"
	"reservation-engine/internal/pkg/clock"
	"reservation-engine/internal/pkg/metrics"
	"reservation-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type ParticipationCommands interface {
	JoinActivity(ctx context.Context, userID, activityID uuid.UUID) (*activity.Participation, error)
	CancelParticipation(ctx context.Context, actor user.Actor, participationID uuid.UUID) (*activity.Participation, error)
	// CompleteParticipation is an admin transition. The participant keeps the slot.
	CompleteParticipation(ctx context.Context, participationID uuid.UUID) (*activity.Participation, error)
}

type participationUseCaseImpl struct {
	uow         shared.UnitOfWork
	invalidator shared.AvailabilityInvalidator
	clock       clock.Clock
	metrics     *metrics.Metrics
}

func NewParticipationUseCase(
	uow shared.UnitOfWork,
	invalidator shared.AvailabilityInvalidator,
	clk clock.Clock,
	m *metrics.Metrics,
) ParticipationCommands {
	return &participationUseCaseImpl{
		uow:         uow,
		invalidator: invalidator,
		clock:       clk,
		metrics:     m,
	}
}

func (uc *participationUseCaseImpl) JoinActivity(ctx context.Context, userID, activityID uuid.UUID) (*activity.Participation, error) {
	var joined *activity.Participation
	err := observe(ctx, uc.metrics, "join_activity", func(ctx context.Context) error {
		return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			now := uc.clock.Now()
			p, err := tx.Capacity().TryRegister(ctx, activityID, userID, now)
			if err != nil {
				return err
			}
			if err := tx.Outbox().Append(ctx, participationEvent(EventParticipationRegistered, p, now)); err != nil {
				return err
			}

			tx.AfterCommit(func(ctx context.Context) {
				uc.invalidator.InvalidateActivity(ctx, activityID)
			})
			joined = p
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return joined, nil
}

func (uc *participationUseCaseImpl) CancelParticipation(ctx context.Context, actor user.Actor, participationID uuid.UUID) (*activity.Participation, error) {
	var cancelled *activity.Participation
	err := observe(ctx, uc.metrics, "cancel_participation", func(ctx context.Context) error {
		return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			p, err := tx.Capacity().GetForUpdate(ctx, participationID)
			if err != nil {
				return err
			}
			if !p.IsOwnedBy(actor.ID) && !actor.IsStaff() {
				return activity.ErrParticipationNotFound
			}

			now := uc.clock.Now()
			if err := tx.Capacity().Unregister(ctx, p, now); err != nil {
				return err
			}
			if err := tx.Outbox().Append(ctx, participationEvent(EventParticipationCancelled, p, now)); err != nil {
				return err
			}

			activityID := p.ActivityID()
			tx.AfterCommit(func(ctx context.Context) {
				uc.invalidator.InvalidateActivity(ctx, activityID)
			})
			cancelled = p
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return cancelled, nil
}

func (uc *participationUseCaseImpl) CompleteParticipation(ctx context.Context, participationID uuid.UUID) (*activity.Participation, error) {
	var completed *activity.Participation
	err := observe(ctx, uc.metrics, "complete_participation", func(ctx context.Context) error {
		return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			p, err := tx.Capacity().GetForUpdate(ctx, participationID)
			if err != nil {
				return err
			}

			now := uc.clock.Now()
			if err := tx.Capacity().Complete(ctx, p, now); err != nil {
				return err
			}
			if err := tx.Outbox().Append(ctx, participationEvent(EventParticipationCompleted, p, now)); err != nil {
				return err
			}
			completed = p
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return completed, nil
}

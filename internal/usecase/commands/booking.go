package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/$GOFILE -package=commandsmock

import (
	"context"
	"time"

	"reservation-engine/internal/domain/booking"
	"reservation-engine/internal/domain/inventory"
	"reservation-engine/internal/domain/user"
	"reservation-engine/internal/pkg/clock"
	"reservation-engine/internal/pkg/config"
	"reservation-engine/internal/pkg/metrics"
	"reservation-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookRoomRequest struct {
	ItemID   uuid.UUID
	Rooms    int
	CheckIn  time.Time
	CheckOut time.Time
	Guests   int
}

type BookingCommands interface {
	// BookRoom replays the booking of an earlier request with the same non-nil idempotency key.
	BookRoom(ctx context.Context, userID uuid.UUID, req BookRoomRequest, idempotencyKey uuid.UUID) (*booking.Booking, error)
	// ConfirmBooking is an operator transition and skips the ownership check.
	ConfirmBooking(ctx context.Context, bookingID uuid.UUID) (*booking.Booking, error)
	CancelBooking(ctx context.Context, actor user.Actor, bookingID uuid.UUID) (*booking.Booking, error)
	CompleteBooking(ctx context.Context, bookingID uuid.UUID) (*booking.Booking, error)
}

type bookingUseCaseImpl struct {
	uow         shared.UnitOfWork
	invalidator shared.AvailabilityInvalidator
	clock       clock.Clock
	metrics     *metrics.Metrics
	maxRooms    int
	keyTTL      time.Duration
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	invalidator shared.AvailabilityInvalidator,
	clk clock.Clock,
	cfg config.ReservationConfig,
	m *metrics.Metrics,
) BookingCommands {
	return &bookingUseCaseImpl{
		uow:         uow,
		invalidator: invalidator,
		clock:       clk,
		metrics:     m,
		maxRooms:    cfg.MaxLineQuantity,
		keyTTL:      cfg.IdempotencyKeyTTL,
	}
}

func (uc *bookingUseCaseImpl) BookRoom(ctx context.Context, userID uuid.UUID, req BookRoomRequest, idempotencyKey uuid.UUID) (*booking.Booking, error) {
	var created *booking.Booking
	err := observe(ctx, uc.metrics, "book_room", func(ctx context.Context) error {
		now := uc.clock.Now()
		stay, err := booking.NewStay(req.CheckIn, req.CheckOut, now)
		if err != nil {
			return err
		}
		if err := inventory.ValidateQuantity(req.Rooms, uc.maxRooms); err != nil {
			return err
		}
		if req.Guests <= 0 {
			return booking.ErrInvalidGuests
		}
		idem := newIdempotentRequest(userID, idempotencyKey, EndpointBookRoom, req, uc.keyTTL)

		return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			bookingID, err := idem.claim(ctx, tx, now)
			if err != nil {
				return err
			}
			if bookingID != uuid.Nil {
				created, err = tx.Bookings().GetForUpdate(ctx, bookingID)
				return err
			}

			item, err := tx.Inventory().Get(ctx, req.ItemID)
			if err != nil {
				return err
			}
			if item.Kind() != inventory.KindRoom {
				return booking.ErrNotARoom
			}

			room, err := tx.Inventory().TryReserve(ctx, req.ItemID, req.Rooms)
			if err != nil {
				return err
			}
			b, err := booking.NewBooking(userID, room, req.Rooms, stay, req.Guests, now)
			if err != nil {
				return err
			}
			if err := tx.Bookings().Create(ctx, b); err != nil {
				return err
			}
			if err := tx.Outbox().Append(ctx, bookingEvent(EventBookingCreated, b, now)); err != nil {
				return err
			}
			if err := idem.complete(ctx, tx, b.ID()); err != nil {
				return err
			}

			tx.AfterCommit(func(ctx context.Context) {
				uc.invalidator.InvalidateItems(ctx, req.ItemID)
			})
			created = b
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (uc *bookingUseCaseImpl) ConfirmBooking(ctx context.Context, bookingID uuid.UUID) (*booking.Booking, error) {
	return uc.transition(ctx, "confirm_booking", bookingID, EventBookingConfirmed, func(ctx context.Context, tx shared.Tx, b *booking.Booking) error {
		return b.Confirm(uc.clock.Now())
	})
}

// CancelBooking returns the booked number of rooms to stock.
func (uc *bookingUseCaseImpl) CancelBooking(ctx context.Context, actor user.Actor, bookingID uuid.UUID) (*booking.Booking, error) {
	return uc.transition(ctx, "cancel_booking", bookingID, EventBookingCancelled, func(ctx context.Context, tx shared.Tx, b *booking.Booking) error {
		if !b.IsOwnedBy(actor.ID) && !actor.IsStaff() {
			return booking.ErrBookingNotFound
		}
		rooms, err := b.Cancel(uc.clock.Now())
		if err != nil {
			return err
		}
		itemID := b.Room().ItemID
		if err := tx.Inventory().Release(ctx, itemID, rooms); err != nil {
			return err
		}
		tx.AfterCommit(func(ctx context.Context) {
			uc.invalidator.InvalidateItems(ctx, itemID)
		})
		return nil
	})
}

func (uc *bookingUseCaseImpl) CompleteBooking(ctx context.Context, bookingID uuid.UUID) (*booking.Booking, error) {
	return uc.transition(ctx, "complete_booking", bookingID, EventBookingCompleted, func(ctx context.Context, tx shared.Tx, b *booking.Booking) error {
		return b.Complete(uc.clock.Now())
	})
}

func (uc *bookingUseCaseImpl) transition(
	ctx context.Context,
	operation string,
	bookingID uuid.UUID,
	eventType string,
	apply func(ctx context.Context, tx shared.Tx, b *booking.Booking) error,
) (*booking.Booking, error) {
	var result *booking.Booking
	err := observe(ctx, uc.metrics, operation, func(ctx context.Context) error {
		return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			b, err := tx.Bookings().GetForUpdate(ctx, bookingID)
			if err != nil {
				return err
			}
			if err := apply(ctx, tx, b); err != nil {
				return err
			}
			if err := tx.Bookings().UpdateStatus(ctx, b); err != nil {
				return err
			}
			if err := tx.Outbox().Append(ctx, bookingEvent(eventType, b, b.UpdatedAt())); err != nil {
				return err
			}
			result = b
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

package booking

import (
	"time"

	"reservation-engine/internal/domain/inventory"
	"reservation-engine/internal/domain/money"
	"reservation-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

const entityName = "booking"

var (
	ErrBookingNotFound   = errs.Mark(errs.New("booking not found"), errs.ErrNotFound)
	ErrNotARoom          = errs.Mark(errs.New("only room items can be booked"), errs.ErrDomainValidation)
	ErrAlreadyCancelled  = errs.Mark(errs.New("booking is already cancelled"), errs.ErrAlreadyCancelled)
	ErrInvalidTransition = errs.Mark(errs.New("booking cannot move to the requested status"), errs.ErrInvalidStateTransition)
)

type Booking struct {
	id        uuid.UUID
	userID    uuid.UUID
	room      inventory.Snapshot
	rooms     int
	stay      Stay
	guests    int
	total     money.Money
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

// NewBooking expects the room snapshot returned by a successful reservation of `rooms` units.
func NewBooking(userID uuid.UUID, room inventory.Snapshot, rooms int, stay Stay, guests int, now time.Time) (*Booking, error) {
	if room.Kind != inventory.KindRoom {
		return nil, ErrNotARoom
	}
	if rooms <= 0 {
		return nil, inventory.ErrInvalidQuantity
	}
	if guests <= 0 {
		return nil, ErrInvalidGuests
	}

	return &Booking{
		id:        uuid.New(),
		userID:    userID,
		room:      room,
		rooms:     rooms,
		stay:      stay,
		guests:    guests,
		total:     room.UnitPrice.Times(rooms).Times(stay.Nights()),
		status:    StatusPending,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructBooking(
	id, userID uuid.UUID,
	room inventory.Snapshot,
	rooms int,
	stay Stay,
	guests int,
	total money.Money,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		userID:    userID,
		room:      room,
		rooms:     rooms,
		stay:      stay,
		guests:    guests,
		total:     total,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (b *Booking) Confirm(now time.Time) error {
	if b.status != StatusPending {
		return b.rejected()
	}
	b.status = StatusConfirmed
	b.updatedAt = now
	return nil
}

// Cancel returns how many rooms go back to stock.
func (b *Booking) Cancel(now time.Time) (int, error) {
	switch b.status {
	case StatusPending, StatusConfirmed:
		b.status = StatusCancelled
		b.updatedAt = now
		return b.rooms, nil
	default:
		return 0, b.rejected()
	}
}

func (b *Booking) Complete(now time.Time) error {
	if b.status != StatusConfirmed {
		return b.rejected()
	}
	b.status = StatusCompleted
	b.updatedAt = now
	return nil
}

func (b *Booking) rejected() error {
	if b.status == StatusCancelled {
		return errs.NewStateError(entityName, b.status.String(), ErrAlreadyCancelled)
	}
	return errs.NewStateError(entityName, b.status.String(), ErrInvalidTransition)
}

func (b *Booking) IsOwnedBy(userID uuid.UUID) bool {
	return b.userID == userID
}

func (b *Booking) ID() uuid.UUID            { return b.id }
func (b *Booking) UserID() uuid.UUID        { return b.userID }
func (b *Booking) Room() inventory.Snapshot { return b.room }
func (b *Booking) Rooms() int               { return b.rooms }
func (b *Booking) Stay() Stay               { return b.stay }
func (b *Booking) Guests() int              { return b.guests }
func (b *Booking) Total() money.Money       { return b.total }
func (b *Booking) Status() Status           { return b.status }
func (b *Booking) CreatedAt() time.Time     { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time     { return b.updatedAt }

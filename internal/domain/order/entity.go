package order

import (
	"time"

	"reservation-engine/internal/domain/money"
	"reservation-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

const entityName = "order"

var (
	ErrOrderNotFound     = errs.Mark(errs.New("order not found"), errs.ErrNotFound)
	ErrEmptyOrder        = errs.Mark(errs.New("order has no lines"), errs.ErrDomainValidation)
	ErrAlreadyPaid       = errs.Mark(errs.New("order is already paid"), errs.ErrAlreadyPaid)
	ErrAlreadyCancelled  = errs.Mark(errs.New("order is already cancelled"), errs.ErrAlreadyCancelled)
	ErrInvalidTransition = errs.Mark(errs.New("order cannot move to the requested status"), errs.ErrInvalidStateTransition)
	ErrPaidNotCancelable = errs.Mark(errs.New("paid orders cannot be cancelled"), errs.ErrInvalidStateTransition)
)

type Order struct {
	id          uuid.UUID
	userID      uuid.UUID
	status      Status
	lines       []LineSnapshot
	total       money.Money
	createdAt   time.Time
	updatedAt   time.Time
	paidAt      *time.Time
	cancelledAt *time.Time
	completedAt *time.Time
}

func NewOrder(userID uuid.UUID, lines []LineSnapshot, now time.Time) (*Order, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}

	owned := make([]LineSnapshot, len(lines))
	copy(owned, lines)
	sortLines(owned)

	total := money.Zero()
	for _, l := range owned {
		total = total.Add(l.Subtotal())
	}

	return &Order{
		id:        uuid.New(),
		userID:    userID,
		status:    StatusPending,
		lines:     owned,
		total:     total,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructOrder(
	id, userID uuid.UUID,
	status Status,
	lines []LineSnapshot,
	total money.Money,
	createdAt, updatedAt time.Time,
	paidAt, cancelledAt, completedAt *time.Time,
) *Order {
	return &Order{
		id:          id,
		userID:      userID,
		status:      status,
		lines:       lines,
		total:       total,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		paidAt:      paidAt,
		cancelledAt: cancelledAt,
		completedAt: completedAt,
	}
}

// Pay has no inventory effect: stock was already taken at checkout.
func (o *Order) Pay(now time.Time) error {
	switch o.status {
	case StatusPending:
		o.status = StatusPaid
		o.paidAt = &now
		o.updatedAt = now
		return nil
	case StatusPaid:
		return errs.NewStateError(entityName, o.status.String(), ErrAlreadyPaid)
	default:
		return errs.NewStateError(entityName, o.status.String(), ErrInvalidTransition)
	}
}

// Cancel returns the lines whose quantities must go back to stock.
func (o *Order) Cancel(now time.Time, policy Policy) ([]LineSnapshot, error) {
	switch o.status {
	case StatusPending:
	case StatusPaid:
		if !policy.AllowPaidCancellation {
			return nil, errs.NewStateError(entityName, o.status.String(), ErrPaidNotCancelable)
		}
	case StatusCancelled:
		return nil, errs.NewStateError(entityName, o.status.String(), ErrAlreadyCancelled)
	default:
		return nil, errs.NewStateError(entityName, o.status.String(), ErrInvalidTransition)
	}

	o.status = StatusCancelled
	o.cancelledAt = &now
	o.updatedAt = now
	return o.Lines(), nil
}

func (o *Order) Complete(now time.Time) error {
	if o.status != StatusPaid {
		return errs.NewStateError(entityName, o.status.String(), ErrInvalidTransition)
	}
	o.status = StatusCompleted
	o.completedAt = &now
	o.updatedAt = now
	return nil
}

func (o *Order) IsOwnedBy(userID uuid.UUID) bool {
	return o.userID == userID
}

func (o *Order) ID() uuid.UUID           { return o.id }
func (o *Order) UserID() uuid.UUID       { return o.userID }
func (o *Order) Status() Status          { return o.status }
func (o *Order) Total() money.Money      { return o.total }
func (o *Order) CreatedAt() time.Time    { return o.createdAt }
func (o *Order) UpdatedAt() time.Time    { return o.updatedAt }
func (o *Order) PaidAt() *time.Time      { return o.paidAt }
func (o *Order) CancelledAt() *time.Time { return o.cancelledAt }
func (o *Order) CompletedAt() *time.Time { return o.completedAt }

// Lines returns a sorted copy; the snapshots themselves are immutable.
func (o *Order) Lines() []LineSnapshot {
	out := make([]LineSnapshot, len(o.lines))
	copy(out, o.lines)
	sortLines(out)
	return out
}

package commands

import (
	"time"

	"reservation-engine/internal/domain/activity"
	"reservation-engine/internal/domain/booking"
	"reservation-engine/internal/domain/order"
	"reservation-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	EventOrderPlaced    = "order.placed"
	EventOrderPaid      = "order.paid"
	EventOrderCancelled = "order.cancelled"
	EventOrderCompleted = "order.completed"

	EventBookingCreated   = "booking.created"
	EventBookingConfirmed = "booking.confirmed"
	EventBookingCancelled = "booking.cancelled"
	EventBookingCompleted = "booking.completed"

	EventParticipationRegistered = "participation.registered"
	EventParticipationCancelled  = "participation.cancelled"
	EventParticipationCompleted  = "participation.completed"
)

type OrderEventItem struct {
	ItemID         uuid.UUID `json:"item_id"`
	ItemName       string    `json:"item_name"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	Quantity       int       `json:"quantity"`
}

type OrderEvent struct {
	OrderID    uuid.UUID        `json:"order_id"`
	UserID     uuid.UUID        `json:"user_id"`
	Status     string           `json:"status"`
	TotalCents int64            `json:"total_cents"`
	Items      []OrderEventItem `json:"items"`
	OccurredAt time.Time        `json:"occurred_at"`
}

type BookingEvent struct {
	BookingID  uuid.UUID `json:"booking_id"`
	UserID     uuid.UUID `json:"user_id"`
	ItemID     uuid.UUID `json:"item_id"`
	Rooms      int       `json:"rooms"`
	CheckIn    string    `json:"check_in"`
	CheckOut   string    `json:"check_out"`
	Status     string    `json:"status"`
	TotalCents int64     `json:"total_cents"`
	OccurredAt time.Time `json:"occurred_at"`
}

type ParticipationEvent struct {
	ParticipationID uuid.UUID `json:"participation_id"`
	ActivityID      uuid.UUID `json:"activity_id"`
	UserID          uuid.UUID `json:"user_id"`
	Status          string    `json:"status"`
	OccurredAt      time.Time `json:"occurred_at"`
}

func orderEvent(eventType string, o *order.Order, now time.Time) shared.OutboxEvent {
	lines := o.Lines()
	items := make([]OrderEventItem, len(lines))
	for i, l := range lines {
		items[i] = OrderEventItem{
			ItemID:         l.ItemID,
			ItemName:       l.Name,
			UnitPriceCents: l.UnitPrice.Cents(),
			Quantity:       l.Quantity,
		}
	}
	return shared.OutboxEvent{
		AggregateType: shared.AggregateOrder,
		AggregateID:   o.ID(),
		EventType:     eventType,
		Payload: OrderEvent{
			OrderID:    o.ID(),
			UserID:     o.UserID(),
			Status:     o.Status().String(),
			TotalCents: o.Total().Cents(),
			Items:      items,
			OccurredAt: now,
		},
	}
}

func bookingEvent(eventType string, b *booking.Booking, now time.Time) shared.OutboxEvent {
	return shared.OutboxEvent{
		AggregateType: shared.AggregateBooking,
		AggregateID:   b.ID(),
		EventType:     eventType,
		Payload: BookingEvent{
			BookingID:  b.ID(),
			UserID:     b.UserID(),
			ItemID:     b.Room().ItemID,
			Rooms:      b.Rooms(),
			CheckIn:    b.Stay().CheckIn().Format(time.DateOnly),
			CheckOut:   b.Stay().CheckOut().Format(time.DateOnly),
			Status:     b.Status().String(),
			TotalCents: b.Total().Cents(),
			OccurredAt: now,
		},
	}
}

func participationEvent(eventType string, p *activity.Participation, now time.Time) shared.OutboxEvent {
	return shared.OutboxEvent{
		AggregateType: shared.AggregateParticipation,
		AggregateID:   p.ID(),
		EventType:     eventType,
		Payload: ParticipationEvent{
			ParticipationID: p.ID(),
			ActivityID:      p.ActivityID(),
			UserID:          p.UserID(),
			Status:          p.Status().String(),
			OccurredAt:      now,
		},
	}
}

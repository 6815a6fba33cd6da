package queries

import (
	"time"

	"github.com/google/uuid"
)

// CartLineView joins a cart line with the current catalog values. Prices here are
// informational; checkout snapshots whatever the locked row holds at that moment.
type CartLineView struct {
	ItemID         uuid.UUID `json:"item_id"`
	ItemName       string    `json:"item_name"`
	Kind           string    `json:"kind"`
	ItemStatus     string    `json:"item_status"`
	Stock          int       `json:"stock"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	Quantity       int       `json:"quantity"`
	SubtotalCents  int64     `json:"subtotal_cents"`
	Available      bool      `json:"available"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type CartView struct {
	UserID     uuid.UUID       `json:"user_id"`
	Lines      []*CartLineView `json:"lines"`
	TotalCents int64           `json:"total_cents"`
	// false when at least one line would fail at checkout as of now
	Available bool `json:"available"`
}

type OrderItemView struct {
	ItemID         uuid.UUID `json:"item_id"`
	ItemName       string    `json:"item_name"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	Quantity       int       `json:"quantity"`
	SubtotalCents  int64     `json:"subtotal_cents"`
}

type OrderView struct {
	ID          uuid.UUID        `json:"id"`
	UserID      uuid.UUID        `json:"user_id"`
	Status      string           `json:"status"`
	TotalCents  int64            `json:"total_cents"`
	Items       []*OrderItemView `json:"items"`
	PaidAt      *time.Time       `json:"paid_at,omitempty"`
	CancelledAt *time.Time       `json:"cancelled_at,omitempty"`
	CompletedAt *time.Time       `json:"completed_at,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

type OrderListItem struct {
	ID         uuid.UUID `json:"id"`
	Status     string    `json:"status"`
	TotalCents int64     `json:"total_cents"`
	CreatedAt  time.Time `json:"created_at"`
}

func (o *OrderListItem) cursorKey() (time.Time, uuid.UUID) { return o.CreatedAt, o.ID }

type BookingView struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	ItemID         uuid.UUID `json:"item_id"`
	ItemName       string    `json:"item_name"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	Rooms          int       `json:"rooms"`
	CheckIn        time.Time `json:"check_in"`
	CheckOut       time.Time `json:"check_out"`
	Nights         int       `json:"nights"`
	Guests         int       `json:"guests"`
	TotalCents     int64     `json:"total_cents"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (b *BookingView) cursorKey() (time.Time, uuid.UUID) { return b.CreatedAt, b.ID }

type ParticipationView struct {
	ID           uuid.UUID `json:"id"`
	ActivityID   uuid.UUID `json:"activity_id"`
	ActivityName string    `json:"activity_name"`
	UserID       uuid.UUID `json:"user_id"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (p *ParticipationView) cursorKey() (time.Time, uuid.UUID) { return p.CreatedAt, p.ID }

// ItemAvailability is for display only and may be stale by up to the cache TTL.
type ItemAvailability struct {
	ItemID         uuid.UUID `json:"item_id"`
	Name           string    `json:"name"`
	Kind           string    `json:"kind"`
	Status         string    `json:"status"`
	Stock          int       `json:"stock"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	Available      bool      `json:"available"`
}

type ActivityAvailability struct {
	ActivityID      uuid.UUID `json:"activity_id"`
	Name            string    `json:"name"`
	Status          string    `json:"status"`
	MaxParticipants *int      `json:"max_participants,omitempty"`
	Registered      int       `json:"registered"`
	Remaining       *int      `json:"remaining,omitempty"`
	Available       bool      `json:"available"`
}

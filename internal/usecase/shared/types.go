package shared

import (
	"time"

	"github.com/google/uuid"
)

// Aggregate types recorded on outbox events; each maps to one Kafka topic.
const (
	AggregateOrder         = "order"
	AggregateBooking       = "booking"
	AggregateParticipation = "participation"
)

type OutboxEvent struct {
	AggregateType string
	AggregateID   uuid.UUID
	EventType     string
	Payload       any
}

// PendingEvent is an outbox row claimed for delivery.
type PendingEvent struct {
	ID        int64
	Topic     string
	Key       string
	EventType string
	Payload   []byte
	Attempts  int
}

const (
	IdempotencyProcessing = "processing"
	IdempotencyCompleted  = "completed"
)

// IdempotencyKey is the identity of one client request that may be retried.
type IdempotencyKey struct {
	UserID      uuid.UUID
	Key         uuid.UUID
	Endpoint    string
	RequestHash string
}

type IdempotencyRecord struct {
	IdempotencyKey
	Status    string
	ResultID  *uuid.UUID
	ExpiresAt time.Time
}

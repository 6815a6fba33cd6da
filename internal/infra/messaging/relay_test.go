//go:build unit

package messaging_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"reservation-engine/internal/infra/messaging"
	sqlc "reservation-engine/internal/infra/sqlc/generated"
	"reservation-engine/internal/pkg/config"
	"reservation-engine/internal/usecase/shared"
	messagingmock "reservation-engine/tests/mock/messaging"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var relayCfg = config.KafkaConfig{PollInterval: time.Second, BatchSize: 10, MaxAttempts: 5}

// inlineTx runs fn with a nil transaction and reports whether fn failed.
type inlineTx struct {
	calls    int
	fnFailed bool
}

func (r *inlineTx) run(ctx context.Context, fn func(tx sqlc.DBTX) error) error {
	r.calls++
	err := fn(nil)
	r.fnFailed = err != nil
	return err
}

func pending(id int64, eventType string) shared.PendingEvent {
	return shared.PendingEvent{
		ID:        id,
		Topic:     "reservations.order",
		Key:       "3f1c9b6a-3a34-4c1e-9c61-5c8b0b0c2f10",
		EventType: eventType,
		Payload:   []byte(`{"status":"pending"}`),
	}
}

// =============================================================================
// KafkaPublisher
// =============================================================================

func TestKafkaPublisher_Publish(t *testing.T) {
	ctx := context.Background()

	t.Run("message is keyed by aggregate and tagged with the event type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		writer := messagingmock.NewMockMessageWriter(ctrl)
		event := pending(1, "order.placed")

		writer.EXPECT().WriteMessages(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			require.Len(t, msgs, 1)
			assert.Equal(t, "reservations.order", msgs[0].Topic)
			assert.Equal(t, []byte(event.Key), msgs[0].Key)
			assert.JSONEq(t, `{"status":"pending"}`, string(msgs[0].Value))
			require.Len(t, msgs[0].Headers, 1)
			assert.Equal(t, "event_type", msgs[0].Headers[0].Key)
			assert.Equal(t, "order.placed", string(msgs[0].Headers[0].Value))
			return nil
		})

		assert.NoError(t, messaging.NewKafkaPublisher(writer).Publish(ctx, event))
	})

	t.Run("writer failure is wrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		writer := messagingmock.NewMockMessageWriter(ctrl)
		brokerDown := errors.New("broker unreachable")
		writer.EXPECT().WriteMessages(ctx, gomock.Any()).Return(brokerDown)

		err := messaging.NewKafkaPublisher(writer).Publish(ctx, pending(1, "order.placed"))

		require.Error(t, err)
		assert.ErrorIs(t, err, brokerDown)
		assert.Contains(t, err.Error(), "order.placed")
	})
}

// =============================================================================
// OutboxRelay
// =============================================================================

func TestOutboxRelay_ProcessBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("every claimed event is published and marked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := messagingmock.NewMockRelayStore(ctrl)
		publisher := messagingmock.NewMockEventPublisher(ctrl)
		tx := &inlineTx{}

		events := []shared.PendingEvent{pending(1, "order.placed"), pending(2, "order.paid")}
		gomock.InOrder(
			store.EXPECT().Claim(gomock.Any(), gomock.Any(), 10, 5).Return(events, nil),
			publisher.EXPECT().Publish(gomock.Any(), events[0]).Return(nil),
			store.EXPECT().MarkPublished(gomock.Any(), gomock.Any(), int64(1)).Return(nil),
			publisher.EXPECT().Publish(gomock.Any(), events[1]).Return(nil),
			store.EXPECT().MarkPublished(gomock.Any(), gomock.Any(), int64(2)).Return(nil),
		)

		n, err := messaging.NewOutboxRelay(tx.run, store, publisher, relayCfg, nil).ProcessBatch(ctx)

		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.Equal(t, 1, tx.calls)
	})

	t.Run("a failed publish is recorded and the batch continues", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := messagingmock.NewMockRelayStore(ctrl)
		publisher := messagingmock.NewMockEventPublisher(ctrl)
		tx := &inlineTx{}

		events := []shared.PendingEvent{pending(1, "order.placed"), pending(2, "order.cancelled")}
		store.EXPECT().Claim(gomock.Any(), gomock.Any(), 10, 5).Return(events, nil)
		publisher.EXPECT().Publish(gomock.Any(), events[0]).Return(errors.New("leader not available"))
		store.EXPECT().MarkFailed(gomock.Any(), gomock.Any(), int64(1), "leader not available").Return(nil)
		publisher.EXPECT().Publish(gomock.Any(), events[1]).Return(nil)
		store.EXPECT().MarkPublished(gomock.Any(), gomock.Any(), int64(2)).Return(nil)

		n, err := messaging.NewOutboxRelay(tx.run, store, publisher, relayCfg, nil).ProcessBatch(ctx)

		require.NoError(t, err)
		assert.Equal(t, 1, n)
		assert.False(t, tx.fnFailed)
	})

	t.Run("a bookkeeping failure rolls back the batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := messagingmock.NewMockRelayStore(ctrl)
		publisher := messagingmock.NewMockEventPublisher(ctrl)
		tx := &inlineTx{}

		event := pending(1, "order.placed")
		store.EXPECT().Claim(gomock.Any(), gomock.Any(), 10, 5).Return([]shared.PendingEvent{event}, nil)
		publisher.EXPECT().Publish(gomock.Any(), event).Return(nil)
		store.EXPECT().MarkPublished(gomock.Any(), gomock.Any(), int64(1)).Return(errors.New("connection reset"))

		n, err := messaging.NewOutboxRelay(tx.run, store, publisher, relayCfg, nil).ProcessBatch(ctx)

		require.Error(t, err)
		assert.Zero(t, n)
		assert.True(t, tx.fnFailed)
	})

	t.Run("empty outbox publishes nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := messagingmock.NewMockRelayStore(ctrl)
		publisher := messagingmock.NewMockEventPublisher(ctrl)
		store.EXPECT().Claim(gomock.Any(), gomock.Any(), 10, 5).Return(nil, nil)

		n, err := messaging.NewOutboxRelay((&inlineTx{}).run, store, publisher, relayCfg, nil).ProcessBatch(ctx)

		require.NoError(t, err)
		assert.Zero(t, n)
	})
}

func TestOutboxRelay_RunStopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := messagingmock.NewMockRelayStore(ctrl)
	publisher := messagingmock.NewMockEventPublisher(ctrl)
	store.EXPECT().Claim(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	cfg := relayCfg
	cfg.PollInterval = 5 * time.Millisecond
	relay := messaging.NewOutboxRelay((&inlineTx{}).run, store, publisher, cfg, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- relay.Run(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("relay did not stop after cancellation")
	}
}

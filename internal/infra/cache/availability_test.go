//go:build unit

package cache_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"reservation-engine/internal/infra/cache"
	"reservation-engine/internal/pkg/metrics"
	"reservation-engine/internal/usecase/queries"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ttl = 30 * time.Second

type stubStore struct {
	item     *queries.ItemAvailability
	activity *queries.ActivityAvailability
	err      error
	calls    int
	onLoad   func()
}

func (s *stubStore) ItemAvailability(context.Context, uuid.UUID) (*queries.ItemAvailability, error) {
	s.calls++
	if s.onLoad != nil {
		s.onLoad()
	}
	return s.item, s.err
}

func (s *stubStore) ActivityAvailability(context.Context, uuid.UUID) (*queries.ActivityAvailability, error) {
	s.calls++
	if s.onLoad != nil {
		s.onLoad()
	}
	return s.activity, s.err
}

func TestAvailabilityCache_ItemAvailability(t *testing.T) {
	ctx := context.Background()
	itemID := uuid.New()
	view := &queries.ItemAvailability{ItemID: itemID, Name: "Castle ticket", Kind: "ticket", Status: "active", Stock: 4, UnitPriceCents: 1500, Available: true}
	data, err := json.Marshal(view)
	require.NoError(t, err)
	key := cache.ItemKey(itemID)

	testCases := []struct {
		name      string
		setup     func(mock redismock.ClientMock)
		wantCalls int
	}{
		{
			name: "miss loads from store and fills the cache",
			setup: func(mock redismock.ClientMock) {
				mock.ExpectGet(cache.GenerationKey(key)).RedisNil()
				mock.ExpectGet(cache.EntryKey(key, 0)).RedisNil()
				mock.ExpectSet(cache.EntryKey(key, 0), data, ttl).SetVal("OK")
			},
			wantCalls: 1,
		},
		{
			name: "hit skips the store",
			setup: func(mock redismock.ClientMock) {
				mock.ExpectGet(cache.GenerationKey(key)).SetVal("2")
				mock.ExpectGet(cache.EntryKey(key, 2)).SetVal(string(data))
			},
			wantCalls: 0,
		},
		{
			name: "entry read failure falls back to the store",
			setup: func(mock redismock.ClientMock) {
				mock.ExpectGet(cache.GenerationKey(key)).SetVal("1")
				mock.ExpectGet(cache.EntryKey(key, 1)).SetErr(errors.New("connection refused"))
				mock.ExpectSet(cache.EntryKey(key, 1), data, ttl).SetErr(errors.New("connection refused"))
			},
			wantCalls: 1,
		},
		{
			name: "unreadable generation skips the cache entirely",
			setup: func(mock redismock.ClientMock) {
				mock.ExpectGet(cache.GenerationKey(key)).SetErr(errors.New("connection refused"))
			},
			wantCalls: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client, mock := redismock.NewClientMock()
			tc.setup(mock)
			store := &stubStore{item: view}
			c := cache.NewAvailabilityCache(store, client, ttl, metrics.New())

			got, err := c.ItemAvailability(ctx, itemID)

			require.NoError(t, err)
			assert.Equal(t, view, got)
			assert.Equal(t, tc.wantCalls, store.calls)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAvailabilityCache_StoreErrorIsNotCached(t *testing.T) {
	ctx := context.Background()
	activityID := uuid.New()
	client, mock := redismock.NewClientMock()
	mock.ExpectGet(cache.GenerationKey(cache.ActivityKey(activityID))).RedisNil()
	mock.ExpectGet(cache.EntryKey(cache.ActivityKey(activityID), 0)).RedisNil()

	storeErr := errors.New("db down")
	c := cache.NewAvailabilityCache(&stubStore{err: storeErr}, client, ttl, nil)

	got, err := c.ActivityAvailability(ctx, activityID)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, storeErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAvailabilityCache_Invalidate(t *testing.T) {
	ctx := context.Background()
	a, b := uuid.New(), uuid.New()
	activityID := uuid.New()

	client, mock := redismock.NewClientMock()
	mock.ExpectIncr(cache.GenerationKey(cache.ItemKey(a))).SetVal(1)
	mock.ExpectIncr(cache.GenerationKey(cache.ItemKey(b))).SetVal(4)
	mock.ExpectIncr(cache.GenerationKey(cache.ActivityKey(activityID))).SetErr(errors.New("timeout"))

	c := cache.NewAvailabilityCache(&stubStore{}, client, ttl, nil)
	c.InvalidateItems(ctx, a, b)
	c.InvalidateItems(ctx)
	c.InvalidateActivity(ctx, activityID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAvailabilityCache_DisabledPassesThrough(t *testing.T) {
	ctx := context.Background()
	view := &queries.ActivityAvailability{ActivityID: uuid.New(), Registered: 3}
	store := &stubStore{activity: view}
	c := cache.NewAvailabilityCache(store, nil, ttl, nil)

	got, err := c.ActivityAvailability(ctx, view.ActivityID)
	require.NoError(t, err)
	assert.Same(t, view, got)

	c.InvalidateActivity(ctx, view.ActivityID)
	c.InvalidateItems(ctx, uuid.New())
	assert.Equal(t, 1, store.calls)
}

func TestAvailabilityCache_FillRacingAnInvalidationIsNeverServed(t *testing.T) {
	ctx := context.Background()
	itemID := uuid.New()
	key := cache.ItemKey(itemID)
	before := &queries.ItemAvailability{ItemID: itemID, Name: "Castle ticket", Stock: 4, Available: true}
	after := &queries.ItemAvailability{ItemID: itemID, Name: "Castle ticket", Stock: 1, Available: true}
	staleData, err := json.Marshal(before)
	require.NoError(t, err)
	freshData, err := json.Marshal(after)
	require.NoError(t, err)

	client, mock := redismock.NewClientMock()
	mock.ExpectGet(cache.GenerationKey(key)).RedisNil()
	mock.ExpectGet(cache.EntryKey(key, 0)).RedisNil()
	mock.ExpectIncr(cache.GenerationKey(key)).SetVal(1)
	mock.ExpectSet(cache.EntryKey(key, 0), staleData, ttl).SetVal("OK")
	mock.ExpectGet(cache.GenerationKey(key)).SetVal("1")
	mock.ExpectGet(cache.EntryKey(key, 1)).RedisNil()
	mock.ExpectSet(cache.EntryKey(key, 1), freshData, ttl).SetVal("OK")

	store := &stubStore{item: before}
	c := cache.NewAvailabilityCache(store, client, ttl, nil)
	// a checkout commits while the first reader is still loading
	store.onLoad = func() {
		store.onLoad = nil
		c.InvalidateItems(ctx, itemID)
	}

	got, err := c.ItemAvailability(ctx, itemID)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Stock)

	store.item = after
	got, err = c.ItemAvailability(ctx, itemID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Stock)
	assert.Equal(t, 2, store.calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

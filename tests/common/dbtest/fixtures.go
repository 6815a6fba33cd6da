//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// CreateTicket inserts an active ticket type under a fresh spot.
func CreateTicket(t *testing.T, db DBLike, name string, priceCents int64, stock int) uuid.UUID {
	t.Helper()
	return createItem(t, db, "spot", "ticket", name, priceCents, stock, "active")
}

// CreateRoom inserts an active room type under a fresh hotel.
func CreateRoom(t *testing.T, db DBLike, name string, priceCents int64, stock int) uuid.UUID {
	t.Helper()
	return createItem(t, db, "hotel", "room", name, priceCents, stock, "active")
}

func createItem(t *testing.T, db DBLike, parentKind, kind, name string, priceCents int64, stock int, status string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO sellable_items (id, parent_id, parent_kind, kind, name, unit_price_cents, stock, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		id, uuid.New(), parentKind, kind, name, priceCents, stock, status)
	require.NoError(t, err)
	return id
}

func DeactivateItem(t *testing.T, db DBLike, id uuid.UUID) {
	t.Helper()
	_, err := db.Exec(context.Background(), "UPDATE sellable_items SET status = 'inactive' WHERE id = $1", id)
	require.NoError(t, err)
}

func SetItemPrice(t *testing.T, db DBLike, id uuid.UUID, priceCents int64) {
	t.Helper()
	_, err := db.Exec(context.Background(), "UPDATE sellable_items SET unit_price_cents = $2 WHERE id = $1", id, priceCents)
	require.NoError(t, err)
}

func ItemStock(t *testing.T, db DBLike, id uuid.UUID) int {
	t.Helper()
	var stock int
	err := db.QueryRow(context.Background(), "SELECT stock FROM sellable_items WHERE id = $1", id).Scan(&stock)
	require.NoError(t, err)
	return stock
}

// CreateActivity inserts an active activity; nil maxParticipants means unlimited.
func CreateActivity(t *testing.T, db DBLike, name string, maxParticipants *int) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO activities (id, name, max_participants, status) VALUES ($1, $2, $3, 'active')",
		id, name, maxParticipants)
	require.NoError(t, err)
	return id
}

func LiveParticipations(t *testing.T, db DBLike, activityID uuid.UUID) int {
	t.Helper()
	var n int
	err := db.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM participations WHERE activity_id = $1 AND status <> 'cancelled'", activityID).Scan(&n)
	require.NoError(t, err)
	return n
}

func CountOrders(t *testing.T, db DBLike, userID uuid.UUID) int {
	t.Helper()
	var n int
	err := db.QueryRow(context.Background(), "SELECT COUNT(*) FROM orders WHERE user_id = $1", userID).Scan(&n)
	require.NoError(t, err)
	return n
}

func CountCartLines(t *testing.T, db DBLike, userID uuid.UUID) int {
	t.Helper()
	var n int
	err := db.QueryRow(context.Background(), "SELECT COUNT(*) FROM cart_lines WHERE user_id = $1", userID).Scan(&n)
	require.NoError(t, err)
	return n
}

func CountOutboxEvents(t *testing.T, db DBLike, aggregateID uuid.UUID, eventType string) int {
	t.Helper()
	var n int
	err := db.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM outbox_events WHERE aggregate_id = $1 AND event_type = $2", aggregateID, eventType).Scan(&n)
	require.NoError(t, err)
	return n
}

func Limit(n int) *int { return &n }

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables except the migration ledger
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
